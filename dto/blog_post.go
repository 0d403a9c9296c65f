package dto

// CreateBlogPostRequest is the POST /api/blog body. Excerpt is optional and
// derived from content when absent.
type CreateBlogPostRequest struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Excerpt string   `json:"excerpt"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// UpdateBlogPostRequest is the PUT /api/blog/:id body. Empty fields are left
// untouched; supplying content also recomputes the excerpt.
type UpdateBlogPostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Pagination is the metadata block attached to list responses.
type Pagination struct {
	Current      int   `json:"current"`
	Total        int   `json:"total"`
	Results      int   `json:"results"`
	TotalResults int64 `json:"totalResults"`
}

// BlogPostListOptions carries the parsed query parameters for listing posts.
type BlogPostListOptions struct {
	Search string
	Tag    string
	Author string
	Sort   string
	Page   int
	Limit  int
}
