package mux

import (
	"context"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"modernblackjack-server/internal/config"
	"modernblackjack-server/pkg/blackjack"
	"modernblackjack-server/pkg/commentary"
	"modernblackjack-server/pkg/room"
)

type ctxKey int

const ctxSessionKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	generator := commentary.NewGeminiClient(logrus.StandardLogger(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	pitBoss := room.NewPitBoss(logrus.StandardLogger(), blackjack.Options{
		InitialChips:       cfg.Game.InitialChips,
		MinimumBet:         cfg.Game.MinimumBet,
		DefaultBet:         cfg.Game.DefaultBet,
		DeckCount:          cfg.Game.DeckCount,
		DealerStandScore:   cfg.Game.DealerStandScore,
		BlackjackPayout:    cfg.Game.BlackjackPayout,
		ReshuffleThreshold: cfg.Game.ReshuffleThreshold,
	}, generator, time.Second*time.Duration(cfg.SessionIdleTimeout))

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())

	sr := r.PathPrefix("/session/{id:[0-9a-v]{20}}").Subrouter()
	sr.Use(this.sessionMiddleware)

	sr.Methods(http.MethodGet).Path("").Handler(this.getSessionID())
	sr.Methods(http.MethodGet).Path("/ws").Handler(this.getSessionIDWS())

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.pitBoss.GetSession(gmux.Vars(r)["id"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, session)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
