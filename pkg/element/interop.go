package element

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	g "maragu.dev/gomponents"

	"github.com/vango-dev/tagkit/internal/errors"
)

// markdown converts Markdown content. Raw HTML in the source is escaped.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Markdown converts src from GitHub-flavoured Markdown and appends the
// resulting HTML.
func (e Element) Markdown(src string) Element {
	if e.err != nil {
		return e
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		e.err = errors.FromError(err, errors.CodeMarkdown)
		return e
	}
	e.content += strings.TrimSuffix(buf.String(), "\n")
	return e
}

// Nodes renders gomponents nodes and appends the result.
func (e Element) Nodes(nodes ...g.Node) Element {
	if e.err != nil {
		return e
	}
	var b strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := n.Render(&b); err != nil {
			e.err = errors.FromError(err, errors.CodeNodeRender)
			return e
		}
	}
	e.content += b.String()
	return e
}

// Node returns e as a gomponents node rendered with ctx.
func (e Element) Node(ctx *Context) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		out, err := ctx.Render(e)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
