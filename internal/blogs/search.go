package blogs

import (
	"context"
	"sort"
	"strings"

	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

// Relevance weights. A title hit counts double a summary hit; entries
// matching neither are discarded outright.
const (
	titleMatchScore   = 2
	summaryMatchScore = 1
)

// Search scores feed entries against the query and returns at most limit
// results, highest relevance first. A known category key restricts the
// search to that feed; anything else fans out across the first maxFanout
// categories, skipping feeds that fail. Total failure yields an empty
// list, never an error: search is advisory.
func (s *Service) Search(ctx context.Context, query, categoryKey string, limit int) []SearchResult {
	var results []SearchResult

	if cat, ok := Lookup(categoryKey); ok {
		results = s.searchFeed(ctx, cat, query, limit)
	} else {
		cats := s.fanoutCategories()
		perCategory := limit/len(cats) + 1
		for _, cat := range cats {
			results = append(results, s.searchFeed(ctx, cat, query, perCategory)...)
		}
	}

	// Stable sort keeps feed order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results
}

// searchFeed scans up to limit*2 entries of one feed — scoring discards
// non-matches, so the first limit entries by recency rarely suffice — and
// returns at most limit positive-score results in feed order. A fetch or
// parse failure is logged and surfaces as no results.
func (s *Service) searchFeed(ctx context.Context, cat Category, query string, limit int) []SearchResult {
	body, err := s.fetcher.Fetch(ctx, s.feedURL(cat))
	if err != nil {
		s.logger.Warn("skipping category after fetch failure",
			logger.String("category", cat.Key),
			logger.Err(err),
		)
		return nil
	}

	feed, err := s.parser.ParseString(body)
	if err != nil {
		s.logger.Warn("skipping category after parse failure",
			logger.String("category", cat.Key),
			logger.Err(err),
		)
		return nil
	}

	queryLower := strings.ToLower(query)

	items := feed.Items
	if len(items) > limit*2 {
		items = items[:limit*2]
	}

	var results []SearchResult
	for _, item := range items {
		score := 0
		if strings.Contains(strings.ToLower(item.Title), queryLower) {
			score += titleMatchScore
		}
		if strings.Contains(strings.ToLower(item.Description), queryLower) {
			score += summaryMatchScore
		}
		if score == 0 {
			continue
		}

		result := SearchResult{
			Title:     item.Title,
			URL:       item.Link,
			Summary:   item.Description,
			Category:  cat.Name,
			Relevance: score,
		}
		if item.PublishedParsed != nil {
			t := *item.PublishedParsed
			result.PublishedAt = &t
		}
		results = append(results, result)
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
