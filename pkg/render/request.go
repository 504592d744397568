package render

import (
	"strings"

	"github.com/vango-dev/tagkit/pkg/attr"
)

// Request is a serialisable render call, as accepted by the preview server
// and the publisher.
type Request struct {
	Tag        string         `json:"tag"`
	Content    string         `json:"content,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Encode     bool           `json:"encode,omitempty"`
}

// Render renders a request with Full. Attribute keys are rendered in sorted
// order.
func (r *Renderer) Render(req Request) (string, error) {
	return r.Full(req.Tag, req.Content, attr.FromMap(req.Attributes), req.Encode)
}

// RenderAll renders every request and joins the results with newlines. It
// stops at the first failure.
func (r *Renderer) RenderAll(reqs []Request) (string, error) {
	parts := make([]string, 0, len(reqs))
	for _, req := range reqs {
		out, err := r.Render(req)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n"), nil
}
