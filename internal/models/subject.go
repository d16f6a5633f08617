package models

import "time"

// Subject represents a study topic (matéria) owned by a user
type Subject struct {
	ID          int64       `json:"_id"`
	UserID      int64       `json:"userId"`
	Name        string      `json:"nome"`
	Weight      float64     `json:"peso"`
	Cycles      int         `json:"ciclos"`
	ReviewDates []time.Time `json:"revisoes"`
}

// SubjectRequest is the body of subject create and update requests.
// On update a nil field keeps the stored value.
type SubjectRequest struct {
	Name   *string  `json:"nome"`
	Weight *float64 `json:"peso"`
}
