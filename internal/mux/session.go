package mux

import (
	"net/http"

	"modernblackjack-server/pkg/room"
)

type sessionResponse struct {
	ID      string `json:"id"`
	Clients int    `json:"clients"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := m.pitBoss.CreateSession()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{ID: session.ID})
	}
}

func (m *Mux) getSessionID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := r.Context().Value(ctxSessionKey).(*room.Session)

		writeJSON(w, http.StatusOK, sessionResponse{
			ID:      session.ID,
			Clients: len(session.Clients()),
		})
	}
}
