package responses

// PostResponse is a normalized blog feed entry
type PostResponse struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	PubDate     string   `json:"pubDate"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	GUID        string   `json:"guid"`
	Categories  []string `json:"categories"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// PostsResponse is the body of GET /posts
type PostsResponse struct {
	Status string         `json:"status" enum:"ok,empty,failed,unconfigured" doc:"Outcome of the feed fetch"`
	Source string         `json:"source,omitempty" doc:"Feed proxy that produced the posts"`
	Error  string         `json:"error,omitempty" doc:"Last upstream error when status is failed"`
	Posts  []PostResponse `json:"posts"`
}
