package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"natbtree/btree"
	"natbtree/diagram"
)

var ErrEmptyKey = errors.New("key is empty")

type insertRequest struct {
	Key string `json:"key"`
}

type insertResponse struct {
	Key      string `json:"key"`
	Inserted bool   `json:"inserted"`
}

type lookupResponse struct {
	Key     string `json:"key"`
	Present bool   `json:"present"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tree.Snapshot())
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tree.Keys())
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	v := &btree.Visualizer[string]{Tree: s.tree, Plain: true}
	writeText(w, v.Visualize())
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	dir := s.dir
	if q := r.URL.Query().Get("dir"); q != "" {
		d, err := diagram.ParseDirection(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		dir = d
	}
	writeText(w, diagram.Render(s.tree.Snapshot(), diagram.Options{Direction: dir}))
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req insertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	key := strings.TrimSpace(req.Key)
	if key == "" {
		writeError(w, http.StatusBadRequest, ErrEmptyKey)
		return
	}

	inserted := s.Insert(key)
	s.log.Info().Str("key", key).Bool("inserted", inserted).Msg("insert")

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	writeJSON(w, status, insertResponse{Key: key, Inserted: inserted})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		writeError(w, http.StatusBadRequest, ErrEmptyKey)
		return
	}
	writeJSON(w, http.StatusOK, lookupResponse{Key: key, Present: s.tree.Has(key)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body + "\n"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
