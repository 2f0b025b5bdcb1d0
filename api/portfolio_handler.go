package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandeeph2706/portfolio-backend/database"
)

type portfolioHandler struct {
	responder         Responder
	logger            zerolog.Logger
	projectRepo       *database.ProjectRepo
	courseRepo        *database.CourseRepo
	certificationRepo *database.CertificationRepo
	skillRepo         *database.SkillRepo
}

func newPortfolioHandler(
	projectRepo *database.ProjectRepo,
	courseRepo *database.CourseRepo,
	certificationRepo *database.CertificationRepo,
	skillRepo *database.SkillRepo,
) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		projectRepo:       projectRepo,
		courseRepo:        courseRepo,
		certificationRepo: certificationRepo,
		skillRepo:         skillRepo,
	}
}

// getProjects returns featured projects only, in insertion order
func (h portfolioHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "projects", err))
			return
		}

		response := ProjectListResponse{Projects: make([]ProjectResponse, 0, len(projects))}
		for _, project := range projects {
			response.Projects = append(response.Projects, ProjectResponse{
				ID:           project.ID,
				Title:        project.Title,
				Description:  project.Description,
				Technologies: project.TechnologyList(),
				GithubURL:    project.GithubURL,
				LiveURL:      project.LiveURL,
				ImageURL:     project.ImageURL,
			})
		}

		h.responder.WriteJSON(w, response)
	}
}

// getCourses returns every course with no particular ordering
func (h portfolioHandler) getCourses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := h.courseRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "courses", err))
			return
		}

		response := make([]CourseResponse, 0, len(courses))
		for _, course := range courses {
			response = append(response, CourseResponse{
				ID:          course.ID,
				Title:       course.Title,
				Category:    course.Category,
				Status:      course.Status,
				Institution: course.Institution,
				Description: course.Description,
			})
		}

		h.responder.WriteJSON(w, response)
	}
}

// getCertifications returns all certifications ordered by date_earned
// descending (string comparison)
func (h portfolioHandler) getCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certs, err := h.certificationRepo.FindAllByDateEarnedDesc()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certifications", err))
			return
		}

		response := make([]CertificationResponse, 0, len(certs))
		for _, cert := range certs {
			response = append(response, CertificationResponse{
				ID:             cert.ID,
				Title:          cert.Title,
				Issuer:         cert.Issuer,
				DateEarned:     cert.DateEarned,
				CredentialID:   cert.CredentialID,
				Description:    cert.Description,
				CertificateURL: cert.CertificateURL,
			})
		}

		h.responder.WriteJSON(w, response)
	}
}

// getSkills returns skills grouped by category, proficiency descending
// within each category, categories in first-encounter order
func (h portfolioHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAllOrdered()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		grouped := NewSkillsByCategory()
		for _, skill := range skills {
			grouped.Add(skill.Category, SkillEntry{
				Name:        skill.Name,
				Proficiency: skill.Proficiency,
			})
		}

		h.responder.WriteJSON(w, grouped)
	}
}
