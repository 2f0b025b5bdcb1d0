package database

import (
	"github.com/sandeeph2706/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact message into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindAllNewestFirst returns all contact messages ordered newest first
func (r *ContactRepo) FindAllNewestFirst() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("timestamp DESC").Find(&contacts).Error
	return contacts, err
}

// Count returns the total number of contact messages
func (r *ContactRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Count(&count).Error
	return count, err
}
