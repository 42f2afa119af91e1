package model

// SearchRequest is the web-search endpoint payload. PreviousQueries are
// prepended to the query as conversational context.
type SearchRequest struct {
	Query           string   `json:"query"`
	PreviousQueries []string `json:"previousQueries,omitempty"`
}

// SearchResult is a single document returned by the search provider.
type SearchResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Author        string `json:"author,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
	Text          string `json:"text"`
}

// SearchResponse is the web-search endpoint response.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
