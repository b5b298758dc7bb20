package models

// User is a registered account. The password is persisted only as a bcrypt
// hash; the plaintext never leaves the signup/login request scope.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}
