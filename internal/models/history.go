package models

import "time"

// HistoryEntry represents one logged study session.
// SubjectName references a Subject by name, not by id.
type HistoryEntry struct {
	ID           int64     `json:"_id"`
	UserID       int64     `json:"userId"`
	SubjectName  string    `json:"materia"`
	Message      string    `json:"mensagem"`
	Difficulty   float64   `json:"dificuldade"`
	CorrectCount float64   `json:"acertos"`
	CreatedAt    time.Time `json:"data"`
}

// HistoryRequest is the body of a history append request
type HistoryRequest struct {
	SubjectName  string  `json:"materia"`
	Message      string  `json:"mensagem"`
	Difficulty   float64 `json:"dificuldade"`
	CorrectCount float64 `json:"acertos"`
}
