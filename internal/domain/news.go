package domain

type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"url_to_image,omitempty"`
	PublishedAt string        `json:"published_at"`
	Content     string        `json:"content,omitempty"`
	Source      ArticleSource `json:"source"`
}

type NewsResult struct {
	Articles     []Article `json:"articles"`
	TotalResults int       `json:"total_results"`
	Count        int       `json:"count"`
}

// SearchOptions tunes an article search. Zero values fall back to the
// provider defaults (english, newest first, five results).
type SearchOptions struct {
	Language string
	SortBy   string
	PageSize int
}

// NewsCategories returns the categories accepted by the headlines endpoint.
func NewsCategories() []string {
	return []string{
		"business",
		"entertainment",
		"general",
		"health",
		"science",
		"sports",
		"technology",
	}
}
