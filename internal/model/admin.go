package model

// Admin is the single owner identity allowed to manage the villa.  Only
// the bcrypt hash of the password is ever held.
type Admin struct {
	Username     string
	PasswordHash string
}
