package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"cityboard/internal/citiesapi"
	"cityboard/internal/domain"
)

type memoryStore struct {
	mu         sync.RWMutex
	listing    domain.CitiesResponse
	failStatus int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{listing: domain.CitiesResponse{Cities: []domain.City{}}}
}

// loadFile replaces the listing with the fixture at path. JSON fixtures
// parse as YAML.
func (s *memoryStore) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var l domain.CitiesResponse
	if err := yaml.Unmarshal(b, &l); err != nil {
		return fmt.Errorf("fixture %s: %w", path, err)
	}
	s.replace(l)
	return nil
}

func (s *memoryStore) replace(l domain.CitiesResponse) {
	if l.Cities == nil {
		l.Cities = []domain.City{}
	}
	s.mu.Lock()
	s.listing = l
	s.mu.Unlock()
}

func (s *memoryStore) snapshot() domain.CitiesResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CitiesResponse{Cities: append([]domain.City(nil), s.listing.Cities...)}
}

func newMux(s *memoryStore) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+citiesapi.DefaultPath, func(w http.ResponseWriter, r *http.Request) {
		if s.failStatus != 0 {
			http.Error(w, http.StatusText(s.failStatus), s.failStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s.snapshot())
	})

	mux.HandleFunc("PUT "+citiesapi.DefaultPath, func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var l domain.CitiesResponse
		if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.replace(l)
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// withAccessLog records method, path, remote, status, bytes and duration.
func withAccessLog(l zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		l.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", rec.status).
			Int("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
