package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/Manzo48/profileMockAPI/internal/config"
	"go.uber.org/zap"
)

var (
	classifierPattern = regexp.MustCompile(`^/profile-instagram-user/([^/]+)$`)
	enrichmentPattern = regexp.MustCompile(`^/enrich-profile/([^/]+)$`)
)

var _ http.Handler = (*Handler)(nil)

// classifierResponse is a SampleRecord with the requested username merged in.
type classifierResponse struct {
	Labels   []string   `json:"labels"`
	Data     SampleData `json:"data"`
	Username string     `json:"username"`
}

type enrichmentResponse struct {
	Username string `json:"username"`
	RawText  string `json:"raw_text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the two mock endpoints:
//
//	GET /profile-instagram-user/<username>  classifier-style labels + text
//	GET /enrich-profile/<username>          {"username", "raw_text"}
//
// Every other request gets a JSON 404. Each request independently draws a
// canned payload and an artificial delay from the handler's random source.
type Handler struct {
	logger *zap.SugaredLogger

	classifierDelay config.LatencyRange
	enrichmentDelay config.LatencyRange

	mu  sync.Mutex // guards rnd: handlers run concurrently under net/http
	rnd *rand.Rand

	sleep func(time.Duration)
}

func New(cfg *config.Config, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		logger:          logger,
		classifierDelay: cfg.Latency.Classifier,
		enrichmentDelay: cfg.Latency.Enrichment,
		rnd:             rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:           time.Sleep,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method == http.MethodGet {
		if m := classifierPattern.FindStringSubmatch(r.URL.Path); m != nil {
			h.handleClassifier(w, m[1])
			return
		}
		if m := enrichmentPattern.FindStringSubmatch(r.URL.Path); m != nil {
			h.handleEnrichment(w, m[1])
			return
		}
	}

	h.logger.Debugw("unrecognized path", "method", r.Method, "path", r.URL.Path)
	h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not Found"})
}

func (h *Handler) handleClassifier(w http.ResponseWriter, username string) {
	delay, pick := h.draw(h.classifierDelay, len(sampleRecords))
	h.sleep(delay) // simulate upstream latency

	record := sampleRecords[pick]
	h.logger.Infow("classifier response", "username", username, "delay", delay)
	h.writeJSON(w, http.StatusOK, classifierResponse{
		Labels:   record.Labels,
		Data:     record.Data,
		Username: username,
	})
}

func (h *Handler) handleEnrichment(w http.ResponseWriter, username string) {
	delay, pick := h.draw(h.enrichmentDelay, len(enrichmentSamples))
	h.sleep(delay)

	h.logger.Infow("enrichment response", "username", username, "delay", delay)
	h.writeJSON(w, http.StatusOK, enrichmentResponse{
		Username: username,
		RawText:  enrichmentSamples[pick],
	})
}

// draw picks the artificial delay and the sample index for one request under
// a single lock acquisition.
func (h *Handler) draw(r config.LatencyRange, samples int) (time.Duration, int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delay := time.Duration(r.MinMs) * time.Millisecond
	if spread := time.Duration(r.MaxMs-r.MinMs) * time.Millisecond; spread > 0 {
		delay += time.Duration(h.rnd.Int63n(int64(spread)))
	}
	return delay, h.rnd.Intn(samples)
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}
