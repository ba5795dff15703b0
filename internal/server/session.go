package server

import (
	"errors"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// errNoActiveImage is returned by tools that need an image before one has
// been loaded or generated.
var errNoActiveImage = errors.New("no active image: load a file or generate a pattern first")

// session is the single image the server is working on. Every transform
// replaces buf wholesale, so a failed step leaves the previous image intact.
type session struct {
	buf     *raster.Buffer
	source  string
	history []string
}

// SessionInfo describes the active image.
type SessionInfo struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Source  string   `json:"source"`
	History []string `json:"history"`
}

// TransformResult is returned by every tool that changes the active image.
type TransformResult struct {
	Operation string      `json:"operation"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Details   interface{} `json:"details,omitempty"`
}

func (s *Server) active() (*raster.Buffer, error) {
	if s.session.buf == nil {
		return nil, errNoActiveImage
	}
	return s.session.buf, nil
}

func (s *Server) info() (*SessionInfo, error) {
	buf, err := s.active()
	if err != nil {
		return nil, err
	}
	history := make([]string, len(s.session.history))
	copy(history, s.session.history)
	return &SessionInfo{
		Width:   buf.Width(),
		Height:  buf.Height(),
		Source:  s.session.source,
		History: history,
	}, nil
}

// replace swaps in a new image and starts a fresh history.
func (s *Server) replace(buf *raster.Buffer, source, operation string) *TransformResult {
	s.session.buf = buf
	s.session.source = source
	s.session.history = []string{operation}
	s.debugf("active image replaced by %s (%dx%d)", operation, buf.Width(), buf.Height())
	return &TransformResult{
		Operation: operation,
		Width:     buf.Width(),
		Height:    buf.Height(),
	}
}

// apply runs fn on a copy of the active image and installs the copy only when
// fn succeeds. fn may return a different buffer (resize) or nil to keep the
// copy it was given.
func (s *Server) apply(operation string, fn func(*raster.Buffer) (*raster.Buffer, interface{}, error)) (*TransformResult, error) {
	buf, err := s.active()
	if err != nil {
		return nil, err
	}

	work := buf.Clone()
	out, details, err := fn(work)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = work
	}

	s.session.buf = out
	s.session.history = append(s.session.history, operation)
	s.debugf("applied %s (%dx%d)", operation, out.Width(), out.Height())

	return &TransformResult{
		Operation: operation,
		Width:     out.Width(),
		Height:    out.Height(),
		Details:   details,
	}, nil
}
