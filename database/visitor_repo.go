package database

import (
	"github.com/sandeeph2706/portfolio-backend/models"
	"gorm.io/gorm"
)

type VisitorRepo struct {
	db *gorm.DB
}

func NewVisitorRepo(db *gorm.DB) *VisitorRepo {
	return &VisitorRepo{db}
}

// Add appends a new row to the visit log
func (r *VisitorRepo) Add(visitor *models.Visitor) error {
	return r.db.Create(visitor).Error
}

// FindRecent returns the most recently timestamped visitors, newest first
func (r *VisitorRepo) FindRecent(limit int) ([]*models.Visitor, error) {
	var visitors []*models.Visitor
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&visitors).Error
	return visitors, err
}

// Count returns the total number of recorded visits
func (r *VisitorRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Visitor{}).Count(&count).Error
	return count, err
}
