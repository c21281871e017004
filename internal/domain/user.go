package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Gravatar  string    `json:"gravatar"`
	Status    string    `json:"status"`
	SchoolID  uint      `json:"school_id"`
	School    School    `json:"school"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Public strips fields that must not leave the account owner.
func (u User) Public() User {
	u.Email = ""
	u.Password = ""
	return u
}

// GravatarHash is the md5 of the trimmed, lower-cased email.
func GravatarHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
