package repository

import "github.com/google/uuid"

// Page carries the optional pagination window for listing queries.
// Limit and offset are applied only when both are present; a count always
// reflects the filtered total regardless of the window.
type Page struct {
	Limit  *int
	Offset *int
}

// Bounded reports whether both limit and offset were supplied.
func (p Page) Bounded() bool {
	return p.Limit != nil && p.Offset != nil
}

// UserFilter is the predicate set for user listings. ID matches by equality;
// FirstName and CreatedAt match by case-insensitive substring.
type UserFilter struct {
	Page

	ID        *uuid.UUID
	FirstName string
	CreatedAt string
}

// CityFilter is the predicate set for city listings.
type CityFilter struct {
	Page

	ID   *int64
	Name string
}

// VoteFilter is the predicate set for vote listings.
type VoteFilter struct {
	Page

	UserID *uuid.UUID
}
