package api

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sandeeph2706/portfolio-backend/web"
)

// setupRoutes wires the page, API and operational endpoints
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Pages
		r.Get("/", handlers.pagesHandler.home())
		r.Get("/admin", handlers.pagesHandler.admin())
		r.Get("/test.html", handlers.pagesHandler.staticPage("test.html"))
		r.Get("/simple-test.html", handlers.pagesHandler.staticPage("simple-test.html"))
		r.Get("/quick-test.html", handlers.pagesHandler.staticPage("quick-test.html"))

		// JSON API
		r.Get("/api/projects", handlers.portfolioHandler.getProjects())
		r.Get("/api/courses", handlers.portfolioHandler.getCourses())
		r.Get("/api/certifications", handlers.portfolioHandler.getCertifications())
		r.Get("/api/skills", handlers.portfolioHandler.getSkills())
		r.Get("/api/stats", handlers.statsHandler.getStats())
		r.Post("/api/contact", handlers.contactHandler.createContact())
	})

	// Frontend assets
	staticFiles, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		// Unreachable unless the embedded tree changes shape
		panic(fmt.Sprintf("static assets unavailable: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFiles))))

	// Operational endpoints, no request logging
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
}
