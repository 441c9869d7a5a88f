package models

import "time"

type User struct {
	UserID    string    `json:"userid" bson:"userid"`
	Email     string    `json:"email" bson:"email"`
	WhatsApp  string    `json:"whatsapp" bson:"whatsapp"`
	FullName  string    `json:"full_name" bson:"full_name"`
	Password  string    `json:"-" bson:"password"`
	Role      []string  `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	LastLogin time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	for _, r := range u.Role {
		if r == "admin" {
			return true
		}
	}
	return false
}

// UserResponse is the public view of a user, without credentials.
type UserResponse struct {
	UserID   string `json:"userid" bson:"userid"`
	Email    string `json:"email" bson:"email"`
	WhatsApp string `json:"whatsapp" bson:"whatsapp"`
	FullName string `json:"full_name" bson:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}
