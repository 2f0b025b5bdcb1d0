package api

import (
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandeeph2706/portfolio-backend/database"
	"github.com/sandeeph2706/portfolio-backend/errs"
	"github.com/sandeeph2706/portfolio-backend/models"
	"github.com/sandeeph2706/portfolio-backend/tracker"
	"github.com/sandeeph2706/portfolio-backend/web"
)

type pagesHandler struct {
	responder    Responder
	logger       zerolog.Logger
	contactRepo  *database.ContactRepo
	visitorRepo  *database.VisitorRepo
	visitTracker *tracker.Tracker
}

func newPagesHandler(contactRepo *database.ContactRepo, visitorRepo *database.VisitorRepo, visitTracker *tracker.Tracker) pagesHandler {
	logger := log.With().Str("handlerName", "pagesHandler").Logger()

	return pagesHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		contactRepo:  contactRepo,
		visitorRepo:  visitorRepo,
		visitTracker: visitTracker,
	}
}

// home renders the portfolio page and tracks the visit. Tracking is
// fire and forget: the page renders regardless of the visit log.
func (h pagesHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.visitTracker != nil {
			h.visitTracker.Track(models.Visitor{
				IPAddress:   remoteIP(r),
				UserAgent:   r.Header.Get("User-Agent"),
				PageVisited: "home",
			})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := web.Templates.ExecuteTemplate(w, "index.html", nil); err != nil {
			h.logger.Error().Err(err).Msg("Failed to render home page")
		}
	}
}

type adminPageData struct {
	Contacts      []*models.Contact
	VisitorsCount int64
	MessagesCount int64
}

// admin renders all contact messages newest first plus visit and
// message totals. There is no authentication in front of it.
func (h pagesHandler) admin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAllNewestFirst()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		visitorsCount, err := h.visitorRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "visitors", err))
			return
		}

		messagesCount, err := h.contactRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contacts", err))
			return
		}

		data := adminPageData{
			Contacts:      contacts,
			VisitorsCount: visitorsCount,
			MessagesCount: messagesCount,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := web.Templates.ExecuteTemplate(w, "admin.html", data); err != nil {
			h.logger.Error().Err(err).Msg("Failed to render admin page")
		}
	}
}

// staticPage serves one of the fixed embedded test pages by name
func (h pagesHandler) staticPage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := web.StaticFS.ReadFile("static/" + name)
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError(name+" not found"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	}
}

// remoteIP extracts the client address, preferring X-Forwarded-For set
// by the fronting proxy.
func remoteIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First entry is the original client
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
