// Package models defines the core data structures for users and items.
package models

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user, assigned by the database.
	ID int
	// Username is the login name chosen by the user. Unique across all users.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string
}

// Item is a named record in the in-memory item collection.
type Item struct {
	// ID uniquely identifies the item within the collection.
	ID int `json:"id"`
	// Name is the display name of the item. May be empty.
	Name string `json:"name"`
}

// SeedItems returns the items the collection starts with on process startup.
func SeedItems() []Item {
	return []Item{
		{ID: 1, Name: "Item 1"},
		{ID: 2, Name: "Item 2"},
		{ID: 3, Name: "Item 3"},
		{ID: 4, Name: "Item 4"},
	}
}
