package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/lowent/netforge/pkg/hierarchy"
	circio "github.com/lowent/netforge/pkg/io"
	"github.com/lowent/netforge/pkg/netlist"
	"github.com/lowent/netforge/pkg/spectre"
)

// maxBodySize bounds request bodies; netlists past this size belong in
// files, not HTTP round trips.
const maxBodySize = 16 << 20

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
	Col   int    `json:"col,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var perr *spectre.ParseError
	if errors.As(err, &perr) {
		resp.Line = perr.Line
		resp.Col = perr.Col
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return body, true
}

// parseBody reads netlist text from the request and parses it. Parse
// failures map to 422 with the error's source position.
func (s *Server) parseBody(w http.ResponseWriter, r *http.Request) (*netlist.Circuit, bool) {
	body, ok := s.readBody(w, r)
	if !ok {
		return nil, false
	}
	c, err := spectre.Parse(string(body))
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return nil, false
	}
	return c, true
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParse turns netlist text into a circuit snapshot.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	c, ok := s.parseBody(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := circio.WriteJSON(c, w); err != nil {
		s.logger.Error("write snapshot", "err", err)
	}
}

// handleEmit turns a circuit snapshot back into netlist text.
func (s *Server) handleEmit(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	c, err := circio.ReadJSON(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, spectre.Export(c)); err != nil {
		s.logger.Error("write netlist", "err", err)
	}
}

// handleCount parses netlist text and returns expanded instance counts.
func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	c, ok := s.parseBody(w, r)
	if !ok {
		return
	}
	counts := hierarchy.Build(c).CountInstances()
	s.writeJSON(w, http.StatusOK, map[string]any{"counts": counts})
}

// handleGraph parses netlist text and returns the hierarchy graph in
// DOT format.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	c, ok := s.parseBody(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	if _, err := io.WriteString(w, hierarchy.ToDOT(hierarchy.Build(c))); err != nil {
		s.logger.Error("write dot", "err", err)
	}
}
