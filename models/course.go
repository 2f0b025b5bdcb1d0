package models

import "time"

// Course represents an academic course. Status is free text; no
// enumeration is enforced.
type Course struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Category    string    `json:"category" db:"category" gorm:"type:varchar(50);not null"`
	Status      string    `json:"status" db:"status" gorm:"type:varchar(50);default:'Current Course'"`
	Institution string    `json:"institution" db:"institution" gorm:"type:varchar(100);default:'IIT Madras'"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	CreatedDate time.Time `json:"created_date" db:"created_date" gorm:"autoCreateTime"`
}
