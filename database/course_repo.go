package database

import (
	"github.com/sandeeph2706/portfolio-backend/models"
	"gorm.io/gorm"
)

type CourseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) *CourseRepo {
	return &CourseRepo{db}
}

// FindAll returns all courses with no particular ordering
func (r *CourseRepo) FindAll() ([]*models.Course, error) {
	var courses []*models.Course
	err := r.db.Find(&courses).Error
	return courses, err
}

// Count returns the total number of courses
func (r *CourseRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Course{}).Count(&count).Error
	return count, err
}
