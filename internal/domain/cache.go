package domain

import "time"

// CachedAnswer is a model answer stored under a normalized-question key.
type CachedAnswer struct {
	Key       string    `json:"key"`
	Question  string    `json:"question"`
	Answer    Answer    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
