package api

import (
	"github.com/sandeeph2706/portfolio-backend/database"
	"github.com/sandeeph2706/portfolio-backend/tracker"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, visitTracker *tracker.Tracker) *routeHandlers {
	return &routeHandlers{
		pagesHandler:     newPagesHandler(database.ContactRepo(), database.VisitorRepo(), visitTracker),
		portfolioHandler: newPortfolioHandler(database.ProjectRepo(), database.CourseRepo(), database.CertificationRepo(), database.SkillRepo()),
		contactHandler:   newContactHandler(database.ContactRepo()),
		statsHandler:     newStatsHandler(database.VisitorRepo(), database.ContactRepo()),
	}
}
