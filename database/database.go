package database

import (
	"gorm.io/gorm"
)

type Database struct {
	contactRepo       *ContactRepo
	visitorRepo       *VisitorRepo
	projectRepo       *ProjectRepo
	courseRepo        *CourseRepo
	certificationRepo *CertificationRepo
	skillRepo         *SkillRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		contactRepo:       NewContactRepo(db),
		visitorRepo:       NewVisitorRepo(db),
		projectRepo:       NewProjectRepo(db),
		courseRepo:        NewCourseRepo(db),
		certificationRepo: NewCertificationRepo(db),
		skillRepo:         NewSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) VisitorRepo() *VisitorRepo {
	return d.visitorRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CourseRepo() *CourseRepo {
	return d.courseRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}
