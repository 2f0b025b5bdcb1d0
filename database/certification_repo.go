package database

import (
	"github.com/sandeeph2706/portfolio-backend/models"
	"gorm.io/gorm"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// FindAllByDateEarnedDesc returns all certifications ordered by the
// date_earned column descending. The column is free text so this is a
// string sort, which matches chronological order only while every value
// shares the "YYYY" shape.
func (r *CertificationRepo) FindAllByDateEarnedDesc() ([]*models.Certification, error) {
	var certs []*models.Certification
	err := r.db.Order("date_earned DESC").Find(&certs).Error
	return certs, err
}

// Count returns the total number of certifications
func (r *CertificationRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Certification{}).Count(&count).Error
	return count, err
}
