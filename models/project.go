package models

import (
	"strings"
	"time"
)

// Project represents a portfolio project. Technologies is stored as a
// comma-joined tag string and only split into a list at read time.
type Project struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	Technologies string    `json:"technologies" db:"technologies" gorm:"type:varchar(200);not null"`
	GithubURL    string    `json:"github_url" db:"github_url" gorm:"type:varchar(200)"`
	LiveURL      string    `json:"live_url" db:"live_url" gorm:"type:varchar(200)"`
	ImageURL     string    `json:"image_url" db:"image_url" gorm:"type:varchar(200)"`
	Featured     bool      `json:"featured" db:"featured" gorm:"default:false"`
	CreatedDate  time.Time `json:"created_date" db:"created_date" gorm:"autoCreateTime"`
}

// TechnologyList splits the comma-joined technologies string into
// trimmed tags.
func (p Project) TechnologyList() []string {
	parts := strings.Split(p.Technologies, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.TrimSpace(part))
	}
	return tags
}
