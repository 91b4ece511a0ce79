package models

import "time"

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

type Question struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	GameID       uint      `json:"game_id" gorm:"not null;index"`
	Text         string    `json:"text" gorm:"not null"`
	Option1      string    `json:"option1" gorm:"not null"`
	Option2      string    `json:"option2" gorm:"not null"`
	Option3      string    `json:"option3" gorm:"not null"`
	Option4      string    `json:"option4" gorm:"not null"`
	CorrectIndex int       `json:"correct_index" gorm:"not null"` // 0..3
	CreatedAt    time.Time `json:"created_at"`
}

// Options returns the answer options in order.
func (q Question) Options() [OptionCount]string {
	return [OptionCount]string{q.Option1, q.Option2, q.Option3, q.Option4}
}
