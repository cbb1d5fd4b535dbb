package server

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"
)

// cronAuth gates the cron endpoints with the shared bearer secret. An empty
// configured secret disables the endpoints entirely.
func (s *Server) cronAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.CronSecret == "" {
			renderError(w, r, fmt.Errorf("cron endpoints disabled"), http.StatusUnauthorized)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.CronSecret)) != 1 {
			renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// processFeedsHandler polls every due feed and reports per-feed results
func (s *Server) processFeedsHandler(w http.ResponseWriter, r *http.Request) {
	results, err := s.cron.PollFeeds(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] cron feed poll: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"processed": len(results), "feeds": results})
}

// sendDigestsHandler schedules due digests and reports per-user results
func (s *Server) sendDigestsHandler(w http.ResponseWriter, r *http.Request) {
	results, err := s.cron.ScheduleDigests(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] cron digest sweep: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"users": len(results), "results": results})
}
