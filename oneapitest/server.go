// Package oneapitest provides an in-process One API for tests.
//
// The server answers only the routes that have a fixture registered; every
// other GET gets the API's generic 404 body.
package oneapitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Recorded is one request the server received.
type Recorded struct {
	Path          string
	RawQuery      string
	Authorization string
}

type response struct {
	status int
	body   string
}

// Server is a fixture-backed One API.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]response
	requests  []Recorded
}

// NewServer starts a server loaded with the default fixtures.
func NewServer() *Server {
	s := &Server{responses: make(map[string]response)}

	s.Set("/movie", "budgetInMillions<100", MoviesBudgetUnder100)
	s.Set("/movie", "name=/el/i", MoviesNameEl)
	s.Set("/movie/"+ReturnOfTheKingID, "", MovieReturnOfTheKing)
	s.Set("/movie/"+ReturnOfTheKingID+"/quote", "limit=2", MovieQuotesLimit2)
	s.Set("/quote", "limit=10", QuotesLimit10)
	s.Set("/quote/"+DeagolQuoteID, "", QuoteDeagol)

	r := chi.NewRouter()
	r.Route("/v2", func(r chi.Router) {
		r.Get("/{endpoint}", s.serve)
		r.Get("/{endpoint}/{id}", s.serve)
		r.Get("/{endpoint}/{id}/{query}", s.serve)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		write(w, response{status: http.StatusNotFound, body: NotFound})
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the value to hand to oneapi.WithBaseURL.
func (s *Server) BaseURL() string {
	return s.Server.URL + "/v2"
}

// Set registers a 200 JSON body for path (relative to /v2) and raw query.
func (s *Server) Set(path, rawQuery, body string) {
	s.SetStatus(path, rawQuery, http.StatusOK, body)
}

// SetStatus registers an arbitrary status and body, JSON or not.
func (s *Server) SetStatus(path, rawQuery string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[key(path, rawQuery)] = response{status: status, body: body}
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		write(w, response{status: http.StatusUnauthorized, body: Unauthorized})
		return
	}

	s.mu.Lock()
	resp, found := s.responses[key(strings.TrimPrefix(r.URL.Path, "/v2"), r.URL.RawQuery)]
	s.mu.Unlock()

	if !found {
		resp = response{status: http.StatusNotFound, body: NotFound}
	}
	write(w, resp)
}

func (s *Server) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Recorded{
		Path:          r.URL.Path,
		RawQuery:      r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
	})
}

func key(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

func write(w http.ResponseWriter, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
