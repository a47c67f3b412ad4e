// Package blogs implements the content acquisition and search engine for
// AWS blog posts: a static category registry, RSS-backed listing and
// search, and the fetch/extract/convert/paginate pipeline for reading a
// single post.
package blogs

import (
	"context"
	"fmt"
	"sort"

	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/mcp-aws-blogs/internal/fetch"
	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

// Service orchestrates feed retrieval, search and post reading.
type Service struct {
	fetcher   *fetch.Client
	parser    *gofeed.Parser
	logger    logger.Logger
	maxFanout int

	// baseURL is the blogs root every fetched URL must live under.
	// Overridable in tests; always BlogBaseURL in production.
	baseURL string
}

// NewService creates a blog service. maxFanout caps how many category
// feeds a single uncategorized request fans out to.
func NewService(fetcher *fetch.Client, log logger.Logger, maxFanout int) *Service {
	if maxFanout <= 0 {
		maxFanout = 5
	}
	return &Service{
		fetcher:   fetcher,
		parser:    gofeed.NewParser(),
		logger:    log,
		maxFanout: maxFanout,
		baseURL:   BlogBaseURL,
	}
}

// feedURL resolves a category's feed location under the service's blogs
// root. Identical to cat.FeedURL in production.
func (s *Service) feedURL(cat Category) string {
	return s.baseURL + cat.Key + feedPathSuffix
}

// GetFeed returns up to limit posts from one category's RSS feed in the
// feed's own order. An unknown category is the caller's error; a feed
// that fails to fetch or parse yields an empty list, never an error.
func (s *Service) GetFeed(ctx context.Context, categoryKey string, limit int) ([]Post, error) {
	cat, ok := Lookup(categoryKey)
	if !ok {
		return nil, fmt.Errorf("unknown category: %s", categoryKey)
	}

	posts, err := s.postsFromFeed(ctx, cat, limit)
	if err != nil {
		s.logger.Warn("feed fetch failed",
			logger.String("category", cat.Key),
			logger.Err(err),
		)
		return []Post{}, nil
	}
	return posts, nil
}

// RecentPosts returns the most recent posts, newest first. With a known
// category key it reads that single feed; otherwise it fans out across
// the first maxFanout categories, skipping any that fail.
func (s *Service) RecentPosts(ctx context.Context, categoryKey string, limit int) []Post {
	var posts []Post

	if cat, ok := Lookup(categoryKey); ok {
		fetched, err := s.postsFromFeed(ctx, cat, limit)
		if err != nil {
			s.logger.Warn("feed fetch failed",
				logger.String("category", cat.Key),
				logger.Err(err),
			)
		}
		posts = fetched
	} else {
		cats := s.fanoutCategories()
		// Rounding up the per-category share over-fetches slightly
		// rather than under-filling the merged result.
		perCategory := limit/len(cats) + 1
		for _, cat := range cats {
			fetched, err := s.postsFromFeed(ctx, cat, perCategory)
			if err != nil {
				s.logger.Warn("skipping category after fetch failure",
					logger.String("category", cat.Key),
					logger.Err(err),
				)
				continue
			}
			posts = append(posts, fetched...)
		}
	}

	// Posts without a published date sort after everything dated.
	sort.SliceStable(posts, func(i, j int) bool {
		pi, pj := posts[i].PublishedAt, posts[j].PublishedAt
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return pi.After(*pj)
		}
	})

	if len(posts) > limit {
		posts = posts[:limit]
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts
}

// postsFromFeed retrieves and parses one category feed and maps the first
// limit entries to Posts. Feed-native ordering is preserved.
func (s *Service) postsFromFeed(ctx context.Context, cat Category, limit int) ([]Post, error) {
	body, err := s.fetcher.Fetch(ctx, s.feedURL(cat))
	if err != nil {
		return nil, err
	}

	feed, err := s.parser.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", s.feedURL(cat), err)
	}

	items := feed.Items
	if len(items) > limit {
		items = items[:limit]
	}

	posts := make([]Post, 0, len(items))
	for _, item := range items {
		posts = append(posts, itemToPost(item, cat))
	}
	return posts, nil
}

// itemToPost maps a feed entry onto a Post. Absent fields stay empty; the
// feed's structured timestamps take precedence over any text re-parsing.
func itemToPost(item *gofeed.Item, cat Category) Post {
	post := Post{
		Title:    item.Title,
		URL:      item.Link,
		Summary:  item.Description,
		Category: cat.Name,
		Tags:     item.Categories,
	}
	if item.Author != nil {
		post.Author = item.Author.Name
	}
	if item.PublishedParsed != nil {
		t := *item.PublishedParsed
		post.PublishedAt = &t
	} else if item.UpdatedParsed != nil {
		t := *item.UpdatedParsed
		post.PublishedAt = &t
	}
	return post
}

// fanoutCategories returns the registry prefix used for uncategorized
// fan-out operations.
func (s *Service) fanoutCategories() []Category {
	cats := All()
	if len(cats) > s.maxFanout {
		cats = cats[:s.maxFanout]
	}
	return cats
}
