package models

import "time"

type Game struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Subject     string    `json:"subject" gorm:"not null;default:''"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	Code        string    `json:"code" gorm:"type:char(8);uniqueIndex;not null"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Owner     User       `json:"-" gorm:"foreignKey:OwnerID"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:GameID"`
}

// GameSummary is one row of a game search.
type GameSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Code        string `json:"code"`
	OwnerID     uint   `json:"owner_id"`
}

// GameDetail is a game joined with its owner's display name.
type GameDetail struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Code        string    `json:"code"`
	OwnerID     uint      `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	CreatedAt   time.Time `json:"created_at"`
}
