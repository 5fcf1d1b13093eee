package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/Manzo48/profileMockAPI/internal/config"
	"go.uber.org/zap"
)

// newTestHandler returns a handler with a fixed random seed and a stubbed
// sleep that records requested delays instead of blocking.
func newTestHandler(t *testing.T) (*Handler, *[]time.Duration) {
	t.Helper()

	h := New(config.Default(), zap.NewNop().Sugar())
	h.rnd = rand.New(rand.NewSource(1))

	var slept []time.Duration
	h.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}
	return h, &slept
}

func doRequest(t *testing.T, h *Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestClassifierEndpoint(t *testing.T) {
	h, slept := newTestHandler(t)

	rr := doRequest(t, h, http.MethodGet, "/profile-instagram-user/daniel")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want %q", got, "application/json")
	}

	var body classifierResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Username != "daniel" {
		t.Errorf("username = %q, want %q", body.Username, "daniel")
	}

	matched := false
	for _, record := range sampleRecords {
		if reflect.DeepEqual(body.Labels, record.Labels) && body.Data == record.Data {
			matched = true
			break
		}
	}
	if !matched {
		t.Errorf("body %+v does not match any sample record", body)
	}

	if len(*slept) != 1 {
		t.Fatalf("sleep called %d times, want 1", len(*slept))
	}
	if d := (*slept)[0]; d < 1500*time.Millisecond || d >= 2500*time.Millisecond {
		t.Errorf("delay %v outside [1.5s, 2.5s)", d)
	}
}

func TestEnrichmentEndpoint(t *testing.T) {
	h, slept := newTestHandler(t)

	rr := doRequest(t, h, http.MethodGet, "/enrich-profile/daniel")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}

	var body enrichmentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Username != "daniel" {
		t.Errorf("username = %q, want %q", body.Username, "daniel")
	}

	matched := false
	for _, sample := range enrichmentSamples {
		if body.RawText == sample {
			matched = true
			break
		}
	}
	if !matched {
		t.Errorf("raw_text %q is not one of the enrichment samples", body.RawText)
	}

	if len(*slept) != 1 {
		t.Fatalf("sleep called %d times, want 1", len(*slept))
	}
	if d := (*slept)[0]; d < 400*time.Millisecond || d >= 900*time.Millisecond {
		t.Errorf("delay %v outside [0.4s, 0.9s)", d)
	}
}

func TestEnrichmentVariety(t *testing.T) {
	h, _ := newTestHandler(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rr := doRequest(t, h, http.MethodGet, "/enrich-profile/daniel")

		var body enrichmentResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		seen[body.RawText] = true
	}

	if len(seen) < 2 {
		t.Errorf("50 requests produced %d distinct samples, want at least 2", len(seen))
	}
}

func TestNotFound(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"root", http.MethodGet, "/"},
		{"unknown path", http.MethodGet, "/unknown-path"},
		{"extra segment", http.MethodGet, "/profile-instagram-user/a/b"},
		{"empty username", http.MethodGet, "/enrich-profile/"},
		{"prefix only", http.MethodGet, "/profile-instagram-user"},
		{"wrong method", http.MethodPost, "/enrich-profile/daniel"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, slept := newTestHandler(t)

			rr := doRequest(t, h, tc.method, tc.path)

			if rr.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
			}

			var body errorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Error != "Not Found" {
				t.Errorf("error = %q, want %q", body.Error, "Not Found")
			}

			// 404s respond immediately
			if len(*slept) != 0 {
				t.Errorf("sleep called %d times, want 0", len(*slept))
			}
		})
	}
}

func TestDrawBounds(t *testing.T) {
	h, _ := newTestHandler(t)
	r := config.LatencyRange{MinMs: 400, MaxMs: 900}

	for i := 0; i < 1000; i++ {
		delay, pick := h.draw(r, len(enrichmentSamples))
		if delay < 400*time.Millisecond || delay >= 900*time.Millisecond {
			t.Fatalf("delay %v outside [400ms, 900ms)", delay)
		}
		if pick < 0 || pick >= len(enrichmentSamples) {
			t.Fatalf("pick %d out of range", pick)
		}
	}
}
