package model

// Attachment is a file uploaded alongside an article.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Article is a published journal entry. The full article list is persisted
// as one JSON array blob in object storage.
type Article struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	AuthorImage string       `json:"authorImage,omitempty"`
	Publication string       `json:"publication,omitempty"`
	Date        string       `json:"date"`
	ReadTime    string       `json:"readTime,omitempty"`
	Likes       int          `json:"likes"`
	Comments    int          `json:"comments"`
	Tags        []string     `json:"tags,omitempty"`
	CoverImage  string       `json:"coverImage,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// PublishArticleRequest is the article publish payload.
type PublishArticleRequest struct {
	Title       string       `json:"title" binding:"required"`
	Content     string       `json:"content" binding:"required"`
	Author      string       `json:"author"`
	Tags        []string     `json:"tags"`
	CoverImage  string       `json:"coverImage"`
	Attachments []Attachment `json:"attachments"`
}
