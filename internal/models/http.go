// Package models defines the request and response bodies exchanged with
// clients of the HTTP and gRPC APIs.
package models

// Content types accepted by the API.
const (
	ContentTypeImage   = "image"
	ContentTypeVideo   = "video"
	ContentTypeArticle = "article"
	ContentTypeAudio   = "audio"
)

// Credentials is the body of both signup and signin.
type Credentials struct {
	// Username must be an email address.
	Username string `json:"username" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// ContentRequest describes a new content item.
type ContentRequest struct {
	Link  string `json:"link" validate:"required,url"`
	Type  string `json:"type" validate:"required,oneof=image video article audio"`
	Title string `json:"title" validate:"required,max=512"`
	// Tags are tag names; the array itself must be present.
	Tags []string `json:"tags" validate:"required,dive,required,max=255"`
}

// ShareRequest toggles the public share link.
type ShareRequest struct {
	Share *bool `json:"share" validate:"required"`
}

// User is the public view of an account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Content is a content item as returned to clients, with tag names resolved.
type Content struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Type   string   `json:"type"`
	Link   string   `json:"link"`
	Tags   []string `json:"tags"`
	UserID string   `json:"userId"`
}

// SharedBrain is everything an anonymous visitor sees through a share link.
type SharedBrain struct {
	Username string    `json:"username"`
	Contents []Content `json:"contents"`
}

// Response is the common envelope of every JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
}

// SigninResponse carries the session token.
type SigninResponse struct {
	Response
	Token string `json:"token"`
}

// ContentsResponse lists the caller's content.
type ContentsResponse struct {
	Response
	Contents []Content `json:"contents"`
}

// ShareResponse is returned by the share toggle. Token is set when sharing is
// enabled, Disabled when it was turned off.
type ShareResponse struct {
	Response
	Token    string `json:"token,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// SharedBrainResponse is the public view of a shared brain.
type SharedBrainResponse struct {
	Response
	SharedBrain
}
