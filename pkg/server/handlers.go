package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/attr"
	"github.com/vango-dev/tagkit/pkg/element"
	"github.com/vango-dev/tagkit/pkg/middleware"
	"github.com/vango-dev/tagkit/pkg/render"
	"github.com/vango-dev/tagkit/pkg/stack"
)

// BeginEndRequest is the body of POST /begin-end.
type BeginEndRequest struct {
	Tag        string         `json:"tag"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Content    string         `json:"content,omitempty"`
	Encode     bool           `json:"encode,omitempty"`
	Theme      string         `json:"theme,omitempty"`
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req render.Request
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.renderer.Render(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeHTML(w, out)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []render.Request
	if err := decode(r, &reqs); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.renderer.RenderAll(reqs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeHTML(w, out)
}

// handleBeginEnd renders an element as a begin/end pair on a stack owned by
// the request, with provider attributes applied.
func (s *Server) handleBeginEnd(w http.ResponseWriter, r *http.Request) {
	var req BeginEndRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	name, kind, err := s.renderer.Kind(req.Tag)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := element.New(element.Type{ID: name, Tag: name, Kind: kind})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e = e.Attributes(attr.FromMap(req.Attributes))
	if req.Theme != "" {
		e = e.Theme(req.Theme)
	}

	ctx := s.elementContext(r)
	open, err := ctx.Begin(e)
	if err != nil {
		s.recordStackError(err)
		s.writeError(w, r, err)
		return
	}
	closing, err := ctx.End(e)
	if err != nil {
		s.recordStackError(err)
		s.writeError(w, r, err)
		return
	}

	content := req.Content
	if req.Encode {
		content = render.EscapeText(content)
	}
	out := open + closing
	if content != "" {
		out = open + "\n" + content + "\n" + closing
	}
	writeHTML(w, out)
}

// recordStackError counts errors raised by the stack itself. Renderer
// failures are already counted by the renderer's observer.
func (s *Server) recordStackError(err error) {
	switch {
	case stderrors.Is(err, render.ErrTagDoesNotSupportBegin),
		stderrors.Is(err, render.ErrUnexpectedEndCall),
		stderrors.Is(err, render.ErrTagClassMismatch):
		s.metrics.RecordError(err)
	}
}

func (s *Server) elementContext(r *http.Request) *element.Context {
	logger := s.logger.With("request_id", requestID(r))
	st := stack.New(
		stack.WithRenderer(s.renderer),
		stack.WithLogger(logger),
		stack.WithObserver(s.metrics),
	)
	opts := []element.ContextOption{
		element.WithRenderer(s.renderer),
		element.WithStack(st),
		element.WithLogger(logger),
		element.WithTheme(s.config.Theme),
	}
	if s.config.Defaults != nil {
		opts = append(opts, element.WithDefaults(s.config.Defaults))
	}
	if s.config.Themes != nil {
		opts = append(opts, element.WithThemes(s.config.Themes))
	}
	return element.NewContext(opts...)
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.Newf(errors.CodeBadRequest, "Request body exceeds %d bytes.", tooLarge.Limit)
		}
		return errors.Newf(errors.CodeBadRequest, "Invalid JSON body: %v", err)
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	middleware.RecordError(r.Context(), err)

	resp := ErrorResponse{Code: errors.CodeOf(err), Message: err.Error()}
	var e *errors.Error
	if stderrors.As(err, &e) {
		resp.Message = e.Message
	}
	status := http.StatusBadRequest
	if resp.Code == "" {
		status = http.StatusInternalServerError
	}

	s.logger.Info("render failed",
		"code", resp.Code,
		"error", err,
		"request_id", requestID(r),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeHTML(w http.ResponseWriter, out string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, out)
}
