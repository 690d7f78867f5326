package storage

// UserRecord is a persisted account.
type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Password holds the bcrypt digest, never the plaintext.
	Password string `json:"password"`
}

// ContentRecord is a saved link owned by a single user.
type ContentRecord struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Type   string   `json:"type"`
	Link   string   `json:"link"`
	Tags   []string `json:"tags"`
	UserID string   `json:"user_id"`
}

// TagRecord is a named tag shared between all content items.
type TagRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShareLinkRecord maps a public hash to the user whose content it exposes.
type ShareLinkRecord struct {
	ID     string `json:"id"`
	Hash   string `json:"hash"`
	UserID string `json:"user_id"`
}

// Stats holds aggregate counters for the internal stats endpoint.
type Stats struct {
	Users      int `json:"users"`
	Contents   int `json:"contents"`
	ShareLinks int `json:"share_links"`
}

func (c ContentRecord) clone() ContentRecord {
	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)
	c.Tags = tags
	return c
}
