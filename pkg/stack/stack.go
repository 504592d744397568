package stack

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/attr"
	"github.com/vango-dev/tagkit/pkg/render"
)

// Descriptor identifies an element type. TypeID is the identity sessions are
// keyed by; two types sharing a tag name are still different types.
type Descriptor interface {
	TypeID() string
	TagName() string
	TagKind() render.Kind
}

// Session is one open begin call.
type Session struct {
	TypeID     string
	Tag        string
	Attributes attr.Map
}

// Observer is notified of the stack depth after every change.
type Observer interface {
	ObserveDepth(depth int)
}

// Option configures a Stack.
type Option func(*Stack)

// WithRenderer sets the renderer used for opening and closing tags.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Stack) {
		s.renderer = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stack) {
		s.logger = l
	}
}

// WithObserver sets an observer for depth changes.
func WithObserver(o Observer) Option {
	return func(s *Stack) {
		s.observer = o
	}
}

// Stack tracks open begin/end sessions.
type Stack struct {
	mu       sync.Mutex
	sessions []Session

	renderer *render.Renderer
	logger   *slog.Logger
	observer Observer
}

// New creates an empty Stack.
func New(opts ...Option) *Stack {
	s := &Stack{}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = render.Default()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Begin opens a session for d and returns its opening tag.
func (s *Stack) Begin(d Descriptor, attrs attr.Map) (string, error) {
	if kind := d.TagKind(); !kind.Pairable() {
		s.logger.Warn("begin on element that cannot be paired", "type", d.TypeID(), "kind", kind.String())
		return "", errors.Newf(errors.CodeTagDoesNotSupportBegin,
			"%s does not support begin(); <%s> is a %s element.", d.TypeID(), d.TagName(), kind)
	}

	out, err := s.renderer.Open(d.TagName(), attrs)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions = append(s.sessions, Session{
		TypeID:     d.TypeID(),
		Tag:        d.TagName(),
		Attributes: attrs,
	})
	depth := len(s.sessions)
	s.mu.Unlock()

	s.logger.Debug("element opened", "type", d.TypeID(), "depth", depth)
	s.notify(depth)
	return out, nil
}

// End closes the innermost session, which must belong to d, and returns its
// closing tag. A failed End leaves the stack unchanged.
func (s *Stack) End(d Descriptor) (string, error) {
	out, depth, err := s.pop(d.TypeID())
	if err != nil {
		return "", err
	}
	s.logger.Debug("element closed", "type", d.TypeID(), "depth", depth)
	s.notify(depth)
	return out, nil
}

func (s *Stack) pop(id string) (string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.countLocked(id) == 0 {
		s.logger.Warn("end without begin", "type", id)
		return "", 0, errors.Newf(errors.CodeUnexpectedEndCall,
			"Unexpected end() call. A begin() call was not made for %s.", id).
			WithSuggestion("Call Begin for " + id + " before End.")
	}

	top := s.sessions[len(s.sessions)-1]
	if top.TypeID != id {
		s.logger.Warn("end does not match innermost element", "type", id, "open", top.TypeID)
		return "", 0, errors.Newf(errors.CodeTagClassMismatch,
			"Cannot end %s while %s is still open.", id, top.TypeID).
			WithSuggestion("Call End for " + top.TypeID + " first.")
	}

	out, err := s.renderer.Close(top.Tag)
	if err != nil {
		return "", 0, err
	}

	s.sessions[len(s.sessions)-1] = Session{}
	s.sessions = s.sessions[:len(s.sessions)-1]
	return out, len(s.sessions), nil
}

// Depth returns the number of open sessions.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Count returns the number of open sessions for typeID.
func (s *Stack) Count(typeID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(typeID)
}

// Sessions returns the open sessions, outermost first.
func (s *Stack) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Reset discards every open session and returns them, outermost first.
func (s *Stack) Reset() []Session {
	s.mu.Lock()
	dropped := s.sessions
	s.sessions = nil
	s.mu.Unlock()

	if len(dropped) > 0 {
		s.logger.Warn("discarding open elements", "count", len(dropped))
	}
	s.notify(0)
	return dropped
}

func (s *Stack) countLocked(typeID string) int {
	n := 0
	for _, sess := range s.sessions {
		if sess.TypeID == typeID {
			n++
		}
	}
	return n
}

func (s *Stack) notify(depth int) {
	if s.observer != nil {
		s.observer.ObserveDepth(depth)
	}
}
