// Package seed populates empty portfolio tables with fixed reference
// data at startup. Each table is seeded only when its row count is
// zero; populated tables are left untouched, with no diffing against
// the fixture lists.
package seed

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sandeeph2706/portfolio-backend/models"
)

// Advisory lock key taken for the seeding transaction on postgres.
// Multi-worker startups serialize on it, so a second worker sees the
// committed rows and skips every table instead of double-seeding.
const seedLockID = 7706_2024

// Run seeds projects, skills, certifications and courses inside one
// transaction. Any failure rolls the whole pass back; the caller logs
// it and keeps serving against whatever state the database is in.
func Run(db *gorm.DB, fixtures Fixtures, logger zerolog.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", seedLockID).Error; err != nil {
				return err
			}
		}

		var count int64

		if err := tx.Model(&models.Project{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			projects := fixtures.projects()
			if len(projects) > 0 {
				if err := tx.Create(&projects).Error; err != nil {
					return err
				}
			}
			logger.Info().Int("count", len(projects)).Msg("seeded projects")
		} else {
			logger.Debug().Int64("existing", count).Msg("projects already present, skipping")
		}

		if err := tx.Model(&models.Skill{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			skills := fixtures.skills()
			if len(skills) > 0 {
				if err := tx.Create(&skills).Error; err != nil {
					return err
				}
			}
			logger.Info().Int("count", len(skills)).Msg("seeded skills")
		} else {
			logger.Debug().Int64("existing", count).Msg("skills already present, skipping")
		}

		if err := tx.Model(&models.Certification{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			certs := fixtures.certifications()
			if len(certs) > 0 {
				if err := tx.Create(&certs).Error; err != nil {
					return err
				}
			}
			logger.Info().Int("count", len(certs)).Msg("seeded certifications")
		} else {
			logger.Debug().Int64("existing", count).Msg("certifications already present, skipping")
		}

		if err := tx.Model(&models.Course{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			courses := fixtures.courses()
			if len(courses) > 0 {
				if err := tx.Create(&courses).Error; err != nil {
					return err
				}
			}
			logger.Info().Int("count", len(courses)).Msg("seeded courses")
		} else {
			logger.Debug().Int64("existing", count).Msg("courses already present, skipping")
		}

		return nil
	})
}
