// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package xagtest provides an in-process fake of the xag generator API for
// tests. Responses are configurable per endpoint and every request is
// recorded for later inspection.
package xagtest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Canned bodies matching the generator's documented shapes.
const (
	StockBody     = `{"accounts":10,"plus_accounts":3,"normal_accounts":7}`
	GeneratedBody = `{"account":{"email":"a@b.com","password":"p","username":"u","type":"xbox"},"test_mode_enabled":false}`
	RejectedBody  = `{"message":"out of stock"}`
)

// Response is a canned reply for one endpoint.
type Response struct {
	Status int
	Body   string
}

// Request is what the fake recorded about one incoming call.
type Request struct {
	Method   string
	Path     string
	Type     string
	TestMode string
	Token    string
}

// Server is a running fake generator API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	stock    Response
	generate Response
	requests []Request
}

// NewServer starts a fake that reports [StockBody] and answers generation
// with [GeneratedBody]. Close it when done.
func NewServer() *Server {
	s := &Server{
		stock:    Response{Status: http.StatusOK, Body: StockBody},
		generate: Response{Status: http.StatusOK, Body: GeneratedBody},
	}
	s.Server = httptest.NewServer(s.routes())

	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/api/stock", s.handle(func() Response { return s.stock }))
	router.Post("/api/generate", s.handle(func() Response { return s.generate }))

	return router
}

func (s *Server) handle(reply func() Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			Type:     r.URL.Query().Get("type"),
			TestMode: r.URL.Query().Get("test_mode"),
			Token:    r.Header.Get("api-token"),
		})
		resp := reply()
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		_, _ = w.Write([]byte(resp.Body))
	}
}

// SetStock replaces the reply of GET /api/stock.
func (s *Server) SetStock(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock = Response{Status: status, Body: body}
}

// SetGenerate replaces the reply of POST /api/generate.
func (s *Server) SetGenerate(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generate = Response{Status: status, Body: body}
}

// Requests returns a copy of all recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the recorded requests for path.
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}
