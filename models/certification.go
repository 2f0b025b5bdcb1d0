package models

import "time"

// Certification represents an earned certification. DateEarned is a
// free-text string, not a date column; listings sort it
// lexicographically, which is only chronological while all values share
// the same "YYYY" shape.
type Certification struct {
	ID             uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title          string    `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Issuer         string    `json:"issuer" db:"issuer" gorm:"type:varchar(100);not null"`
	DateEarned     string    `json:"date_earned" db:"date_earned" gorm:"type:varchar(50);not null"`
	CredentialID   string    `json:"credential_id" db:"credential_id" gorm:"type:varchar(100)"`
	Description    string    `json:"description" db:"description" gorm:"type:text"`
	CertificateURL string    `json:"certificate_url" db:"certificate_url" gorm:"type:varchar(200)"`
	CreatedDate    time.Time `json:"created_date" db:"created_date" gorm:"autoCreateTime"`
}
