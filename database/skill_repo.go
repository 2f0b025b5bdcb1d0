package database

import (
	"github.com/sandeeph2706/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAllOrdered returns all skills ordered by category, then by
// proficiency descending within each category
func (r *SkillRepo) FindAllOrdered() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("category, proficiency DESC").Find(&skills).Error
	return skills, err
}

// Count returns the total number of skills
func (r *SkillRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Count(&count).Error
	return count, err
}
