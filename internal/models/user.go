package models

import "time"

// User represents a registered customer of the shop.
type User struct {
	ID           string    `json:"id" bson:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string    `json:"email" bson:"email" gorm:"uniqueIndex;type:varchar(255)"`
	FullName     string    `json:"full_name" bson:"full_name" gorm:"type:varchar(255)"`
	PasswordHash string    `json:"-" bson:"hashed_password" gorm:"type:varchar(255)"` // never serialized to clients
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// UserPublic is the client-facing projection of a User.
type UserPublic struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips credential material from the user.
func (u *User) Public() UserPublic {
	return UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

// Token is the response of a successful login.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
