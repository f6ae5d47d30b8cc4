// Package fakeserver serves a stand-in for the playground server's /runs & /share
// endpoints, with programmable replies. It exists for tests.
package fakeserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/voidshard/playground/pkg/api/http/common"
	"github.com/voidshard/playground/pkg/structs"
)

// Raw is written to the client as-is, for replies that aren't valid JSON objects.
type Raw []byte

// Reply is what the server answers with.
type Reply struct {
	// Code defaults to http.StatusOK.
	Code int

	// Body is JSON encoded unless it is a Raw.
	Body interface{}
}

// Server is a fake playground server.
type Server struct {
	lock sync.Mutex

	runs   []string
	shares []*structs.ShareRequest

	// OnRun is called for GET /runs/{id}. Defaults to replying with an empty status.
	OnRun func(id string) Reply

	// OnShare is called for POST /share. Defaults to replying with hasconfig: false.
	OnShare func(req *structs.ShareRequest) Reply

	logger *slog.Logger
}

// New returns a fake server; requests are logged at debug to logger, if given.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{logger: logger}
}

// Handler returns the routes this server answers.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(common.API_RUNS+"/{id}", s.Run).Methods(http.MethodGet)
	router.HandleFunc(common.API_SHARE, s.Share).Methods(http.MethodPost)
	router.Use(s.loggingMiddleware)
	return router
}

// Runs returns the run ids requested so far, in arrival order.
func (s *Server) Runs() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]string{}, s.runs...)
}

// Shares returns the share requests received so far, in arrival order.
func (s *Server) Shares() []*structs.ShareRequest {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]*structs.ShareRequest{}, s.shares...)
}

func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.lock.Lock()
	s.runs = append(s.runs, id)
	fn := s.OnRun
	s.lock.Unlock()

	reply := Reply{Body: &structs.RunStatus{Outputs: []string{}}}
	if fn != nil {
		reply = fn(id)
	}
	s.write(w, reply)
}

func (s *Server) Share(w http.ResponseWriter, r *http.Request) {
	req := &structs.ShareRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	s.lock.Lock()
	s.shares = append(s.shares, req)
	fn := s.OnShare
	s.lock.Unlock()

	no := false
	reply := Reply{Body: &structs.ShareResponse{HasConfig: &no}}
	if fn != nil {
		reply = fn(req)
	}
	s.write(w, reply)
}

func (s *Server) write(w http.ResponseWriter, reply Reply) {
	if reply.Code == 0 {
		reply.Code = http.StatusOK
	}

	raw, ok := reply.Body.(Raw)
	if !ok {
		data, err := json.Marshal(reply.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		raw = data
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(reply.Code)
	w.Write(raw)
}

// loggingMiddleware shims in a handler middleware that logs requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("fake server request", "method", r.Method, "uri", r.RequestURI, "request_id", r.Header.Get(common.HEADER_REQUEST_ID))
		next.ServeHTTP(w, r)
	})
}

// unmarshalJson reads the body of a request and attempts to unmarshal it into the given object.
// This function write an error to the writer if an error occurs, and returns the error.
func unmarshalJson(w http.ResponseWriter, r *http.Request, obj interface{}) error {
	if r.Body == nil {
		http.Error(w, "No body", http.StatusBadRequest)
		return fmt.Errorf("no body")
	}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields() // catch unwanted fields

	err := d.Decode(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return fmt.Errorf("bad json: %v", err)
	}

	return nil
}
