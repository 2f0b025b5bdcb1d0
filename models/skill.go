package models

import "time"

// Skill represents a single skill with a 0-100 proficiency score.
type Skill struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" db:"name" gorm:"type:varchar(50);not null"`
	Category    string    `json:"category" db:"category" gorm:"type:varchar(50);not null"`
	Proficiency int       `json:"proficiency" db:"proficiency" gorm:"default:0"`
	CreatedDate time.Time `json:"created_date" db:"created_date" gorm:"autoCreateTime"`
}
