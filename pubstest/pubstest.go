// This package contains testing utilities for the publication service.
package pubstest

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
)

// Enables DEBUG log messages for the service's structured log (slog).
func EnableDebugLogging() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelDebug)
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
}

// a canned response served for a specific path
type Response struct {
	Status int
	Body   string
}

// a request received by a Server, reduced to what tests inspect
type Request struct {
	Path, Accept, UserAgent string
}

// This type implements a database test fixture: an HTTP server that answers
// GET requests for known paths with canned JSON responses and 404 for all
// others, recording the requests it receives.
type Server struct {
	*httptest.Server
	responses map[string]Response
	mutex     sync.Mutex
	requests  []Request
}

// starts a database test fixture serving the given responses, keyed by path
func NewServer(responses map[string]Response) *Server {
	server := &Server{
		responses: responses,
	}
	server.Server = httptest.NewServer(http.HandlerFunc(server.handle))
	return server
}

func (server *Server) handle(w http.ResponseWriter, r *http.Request) {
	server.mutex.Lock()
	server.requests = append(server.requests, Request{
		Path:      r.URL.Path,
		Accept:    r.Header.Get("Accept"),
		UserAgent: r.Header.Get("User-Agent"),
	})
	response, found := server.responses[r.URL.Path]
	server.mutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !found || r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "not found"}`))
		return
	}
	status := response.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	w.Write([]byte(response.Body))
}

// returns the requests received so far, in order of arrival
func (server *Server) Requests() []Request {
	server.mutex.Lock()
	defer server.mutex.Unlock()
	requests := make([]Request, len(server.requests))
	copy(requests, server.requests)
	return requests
}

// returns true if the server has received a request for the given path
func (server *Server) Requested(path string) bool {
	for _, request := range server.Requests() {
		if request.Path == path {
			return true
		}
	}
	return false
}
