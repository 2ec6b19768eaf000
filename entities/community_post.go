package entities

// CommunityPost is append-only: new posts are prepended to the feed and
// existing ones are never edited or deleted.
type CommunityPost struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Likes    int      `json:"likes"`
	Comments int      `json:"comments"`
	Tags     []string `json:"tags"`
	IsHot    bool     `json:"is_hot"`
	Time     string   `json:"time"`
}
