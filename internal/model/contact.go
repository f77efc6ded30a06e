package model

import "time"

// ContactRequest is a single Get in Touch submission. The id is assigned at
// insert time; rows are never mutated or deleted by this service.
type ContactRequest struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}
