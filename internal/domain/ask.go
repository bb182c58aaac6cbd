package domain

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the success body of POST /api/ask.
type AskResponse struct {
	Response string `json:"response"`
}

// Answer carries a reply and where it came from.
type Answer struct {
	Text   string
	Source string
}
