package models

import "time"

type Consent struct {
	Necessary bool      `json:"necessary"`
	Analytics bool      `json:"analytics"`
	Marketing bool      `json:"marketing"`
	Timestamp time.Time `json:"timestamp"`
}

type ConsentRequest struct {
	Analytics bool `json:"analytics"`
	Marketing bool `json:"marketing"`
}
