package models

import "time"

// Contact represents a message submitted through the contact form.
// Rows are immutable once created; the application never updates or
// deletes them.
type Contact struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" db:"email" gorm:"type:varchar(120);not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:varchar(200);not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" db:"timestamp" gorm:"autoCreateTime"`
}
