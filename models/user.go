package models

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null;default:''"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Games []Game `json:"games,omitempty" gorm:"foreignKey:OwnerID"`
}

// UserProfile is the public view of a user.
type UserProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
