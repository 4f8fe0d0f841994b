// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the identity record of the authenticated person.
// It is replaced wholesale whenever the server returns an updated profile.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	Phone     string   `json:"phone,omitempty"`
	Document  string   `json:"document,omitempty"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// Address is the postal address attached to a user profile.
type Address struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	ZipCode string `json:"zipCode"`
}
