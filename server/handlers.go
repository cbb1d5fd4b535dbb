package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/pensive-app/pensive/pkg/digest"
	"github.com/pensive-app/pensive/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.cfg.Version,
		"time":    time.Now().UTC(),
	}
	if counts, err := s.store.CountJobs(r.Context()); err == nil {
		status["jobs"] = counts
	}
	renderJSON(w, r, http.StatusOK, status)
}

// analyzeHandler ingests a submitted URL through the full pipeline
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL    string `json:"url"`
		Source string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}

	source := domain.Source(req.Source)
	if req.Source != "" && !source.Valid() {
		renderError(w, r, fmt.Errorf("invalid source %q", req.Source), http.StatusBadRequest)
		return
	}

	result, err := s.pipeline.Submit(r.Context(), userID(r), req.URL, source)
	if err != nil {
		lgr.Printf("[ERROR] analyze %s: %v", req.URL, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"contentId": result.ContentID,
		"analysis":  result.Analysis,
		"isNew":     result.IsNew,
		"cached":    result.Cached,
	})
}

// listContentHandler returns a paginated slice of the user's content
func (s *Server) listContentHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ContentFilter{
		Page:      intQuery(r, "page", 1),
		Limit:     intQuery(r, "limit", 20),
		Source:    domain.Source(r.URL.Query().Get("source")),
		Priority:  domain.Priority(r.URL.Query().Get("priority")),
		Timeframe: r.URL.Query().Get("timeframe"),
	}

	page, err := s.store.GetUserContent(r.Context(), userID(r), filter)
	if err != nil {
		lgr.Printf("[ERROR] list content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// searchHandler runs a keyword match over the user's content
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		renderError(w, r, fmt.Errorf("q is required"), http.StatusBadRequest)
		return
	}

	items, err := s.store.SearchContent(r.Context(), userID(r), query, intQuery(r, "limit", 50))
	if err != nil {
		lgr.Printf("[ERROR] search %q: %v", query, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"items": items, "count": len(items)})
}

// conceptMapHandler renders the user's concept graph at an abstraction level
func (s *Server) conceptMapHandler(w http.ResponseWriter, r *http.Request) {
	level := 50
	if levelStr := r.URL.Query().Get("abstractionLevel"); levelStr != "" {
		parsed, err := strconv.Atoi(levelStr)
		if err != nil || parsed < 0 || parsed > 100 {
			renderError(w, r, fmt.Errorf("abstractionLevel must be 0..100"), http.StatusBadRequest)
			return
		}
		level = parsed
	}

	conceptMap, err := s.graphs.Build(r.Context(), userID(r), level, r.URL.Query().Get("search"))
	if err != nil {
		lgr.Printf("[ERROR] build concept map: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, conceptMap)
}

// listDigestsHandler returns the user's recent digests
func (s *Server) listDigestsHandler(w http.ResponseWriter, r *http.Request) {
	digests, err := s.store.GetUserDigests(r.Context(), userID(r), intQuery(r, "limit", 20))
	if err != nil {
		lgr.Printf("[ERROR] list digests: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"digests": digests})
}

// generateDigestHandler builds and persists a digest for the timeframe
func (s *Server) generateDigestHandler(w http.ResponseWriter, r *http.Request) {
	timeframe := domain.Timeframe(r.PathValue("timeframe"))
	if !timeframe.Valid() {
		renderError(w, r, fmt.Errorf("invalid timeframe %q", timeframe), http.StatusBadRequest)
		return
	}

	d, err := s.digests.Generate(r.Context(), userID(r), timeframe)
	if err != nil {
		if errors.Is(err, digest.ErrNoContent) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] generate %s digest: %v", timeframe, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, d)
}

// renderDigestHandler renders caller-supplied items to digest HTML without
// persisting anything
func (s *Server) renderDigestHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Timeframe string              `json:"timeframe"`
		Content   []digest.RenderItem `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	timeframe := domain.Timeframe(req.Timeframe)
	if !timeframe.Valid() {
		renderError(w, r, fmt.Errorf("invalid timeframe %q", req.Timeframe), http.StatusBadRequest)
		return
	}

	html, err := s.digests.Render(timeframe, req.Content)
	if err != nil {
		if errors.Is(err, digest.ErrNoContent) {
			renderError(w, r, fmt.Errorf("content is required"), http.StatusBadRequest)
			return
		}
		lgr.Printf("[ERROR] render digest: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":   true,
		"content":   html,
		"itemCount": len(req.Content),
	})
}

// createFeedHandler subscribes the user to a feed
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL      string `json:"url"`
		Title    string `json:"title"`
		Interval int    `json:"interval"` // seconds between fetches
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}

	feed := &domain.Feed{
		UserID:        userID(r),
		URL:           req.URL,
		Title:         req.Title,
		Active:        true,
		FetchInterval: req.Interval,
	}
	if err := s.store.CreateFeed(r.Context(), feed); err != nil {
		lgr.Printf("[ERROR] create feed %s: %v", req.URL, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, feed)
}

// listFeedsHandler returns the user's feed subscriptions
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.store.GetUserFeeds(r.Context(), userID(r))
	if err != nil {
		lgr.Printf("[ERROR] list feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"feeds": feeds})
}

// intQuery parses an integer query parameter with a fallback default
func intQuery(r *http.Request, name string, def int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 1 {
		return def
	}
	return parsed
}

// renderJSON sends data as a JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends an error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
