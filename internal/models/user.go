package models

// User pairs a name with a status. It is constructed once with both fields
// supplied and not mutated afterwards.
type User struct {
	Name   string
	Status Status
}

// NewUser builds a User. The name is not validated; status must be one of
// the Status variants.
func NewUser(name string, status Status) User {
	return User{Name: name, Status: status}
}
