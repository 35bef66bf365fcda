package domain

import "time"

// User is an artist account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // argon2id PHC string, or bcrypt for accounts created before the Go server
	Name         string
	ArtistName   string
	Avatar       string // optional image URL, "" when unset
	CreatedAt    time.Time
}

// Public returns a copy of the user with the password hash cleared.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// ProfileUpdate carries the editable profile fields. All three are written
// on every update.
type ProfileUpdate struct {
	Name       string
	ArtistName string
	Avatar     string
}
