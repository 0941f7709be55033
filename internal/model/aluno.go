package model

// Aluno is a student record exposed by the API.
// ID is assigned by the database on insert and never reused.
type Aluno struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}
