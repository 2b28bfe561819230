package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`

	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // bcrypt hash, never returned in JSON

	Phone              string   `bson:"phone,omitempty" json:"phone,omitempty"`
	City               string   `bson:"city,omitempty" json:"city,omitempty"`
	DietaryPreferences []string `bson:"dietaryPreferences,omitempty" json:"dietaryPreferences,omitempty"`
}

// PublicUser is the projection returned by the auth endpoints.
type PublicUser struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	City               string   `json:"city,omitempty"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty"`
}

// Public returns the user without the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                 u.ID.Hex(),
		Name:               u.Name,
		Email:              u.Email,
		Phone:              u.Phone,
		City:               u.City,
		DietaryPreferences: u.DietaryPreferences,
	}
}
