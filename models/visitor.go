package models

import "time"

// Visitor is one row of the append-only visit log. Repeat visits from
// the same address create new rows; there is no uniqueness constraint.
type Visitor struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	IPAddress   string    `json:"ip_address" db:"ip_address" gorm:"type:varchar(45);not null"`
	UserAgent   string    `json:"user_agent" db:"user_agent" gorm:"type:varchar(200)"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp" gorm:"autoCreateTime"`
	PageVisited string    `json:"page_visited" db:"page_visited" gorm:"type:varchar(100);default:'home'"`
}
