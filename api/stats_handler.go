package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandeeph2706/portfolio-backend/database"
)

const recentVisitorLimit = 10

type statsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	visitorRepo *database.VisitorRepo
	contactRepo *database.ContactRepo
}

func newStatsHandler(visitorRepo *database.VisitorRepo, contactRepo *database.ContactRepo) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()

	return statsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		visitorRepo: visitorRepo,
		contactRepo: contactRepo,
	}
}

// getStats returns visit and message totals plus the ten most recent
// visitors, newest first
func (h statsHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totalVisitors, err := h.visitorRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "visitors", err))
			return
		}

		totalMessages, err := h.contactRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contacts", err))
			return
		}

		recent, err := h.visitorRepo.FindRecent(recentVisitorLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find recent", "visitors", err))
			return
		}

		response := StatsResponse{
			TotalVisitors:  totalVisitors,
			TotalMessages:  totalMessages,
			RecentVisitors: make([]RecentVisitor, 0, len(recent)),
		}
		for _, visitor := range recent {
			response.RecentVisitors = append(response.RecentVisitors, RecentVisitor{
				IP:        visitor.IPAddress,
				Timestamp: visitor.Timestamp.Format(time.RFC3339),
				Page:      visitor.PageVisited,
			})
		}

		h.responder.WriteJSON(w, response)
	}
}
