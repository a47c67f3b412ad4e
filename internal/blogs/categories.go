package blogs

// BlogBaseURL is the required prefix for every AWS blog URL this server
// will touch. Listing and feed URLs of all categories live under it.
const BlogBaseURL = "https://aws.amazon.com/blogs/"

// feedPathSuffix terminates every category feed URL.
const feedPathSuffix = "/feed/"

// Category describes one AWS blog category: its short key, display name,
// listing page and RSS feed.
type Category struct {
	Key     string `json:"slug"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	FeedURL string `json:"rss_url"`
}

// categories is the static registry. Order is the iteration order of All
// and the fan-out order of multi-category operations; do not reorder.
var categories = []Category{
	{Key: "aws", Name: "AWS News Blog"},
	{Key: "architecture", Name: "AWS Architecture Blog"},
	{Key: "compute", Name: "AWS Compute Blog"},
	{Key: "containers", Name: "Containers"},
	{Key: "database", Name: "Database"},
	{Key: "developer", Name: "AWS Developer Tools Blog"},
	{Key: "devops", Name: "AWS DevOps Blog"},
	{Key: "machine-learning", Name: "AWS Machine Learning Blog"},
	{Key: "networking-and-content-delivery", Name: "Networking & Content Delivery"},
	{Key: "security", Name: "AWS Security Blog"},
	{Key: "storage", Name: "AWS Storage Blog"},
}

var categoryIndex = make(map[string]int, len(categories))

func init() {
	for i := range categories {
		categories[i].URL = BlogBaseURL + categories[i].Key + "/"
		categories[i].FeedURL = BlogBaseURL + categories[i].Key + feedPathSuffix
		categoryIndex[categories[i].Key] = i
	}
}

// Lookup returns the category for a key. The second return value is false
// for unknown keys; callers treat that as user input, not a fault.
func Lookup(key string) (Category, bool) {
	i, ok := categoryIndex[key]
	if !ok {
		return Category{}, false
	}
	return categories[i], true
}

// All returns every category in declaration order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
