package publish

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/render"
)

const tracerName = "tagkit/publish"

// Result describes a published document.
type Result struct {
	Key      string
	Bytes    int
	Requests int
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithRenderer sets the renderer. It defaults to render.Default().
func WithRenderer(r *render.Renderer) Option {
	return func(p *Publisher) {
		p.renderer = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = l
	}
}

// WithTracerProvider sets the tracer provider. It defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Publisher) {
		p.tracer = tp.Tracer(tracerName)
	}
}

// Publisher renders documents and writes them to a Store.
type Publisher struct {
	store    Store
	renderer *render.Renderer
	logger   *slog.Logger
	tracer   trace.Tracer
}

// New creates a Publisher writing to store.
func New(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.renderer == nil {
		p.renderer = render.Default()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.tracer == nil {
		p.tracer = otel.Tracer(tracerName)
	}
	return p
}

// Publish renders reqs, joins them with newlines and stores the document
// under key. Nothing is stored when any request fails to render.
func (p *Publisher) Publish(ctx context.Context, key string, reqs []render.Request) (Result, error) {
	ctx, span := p.tracer.Start(ctx, "publish",
		trace.WithAttributes(
			attribute.String("publish.key", key),
			attribute.Int("publish.requests", len(reqs)),
		),
	)
	defer span.End()

	out, err := p.renderer.RenderAll(reqs)
	if err != nil {
		err = errors.Newf(errors.CodePublish, "Cannot render %s.", key).Wrap(err)
		fail(span, err)
		return Result{}, err
	}

	res, err := p.put(ctx, span, key, out)
	if err != nil {
		return Result{}, err
	}
	res.Requests = len(reqs)
	return res, nil
}

// PublishHTML stores an already rendered document under key.
func (p *Publisher) PublishHTML(ctx context.Context, key, html string) (Result, error) {
	ctx, span := p.tracer.Start(ctx, "publish",
		trace.WithAttributes(attribute.String("publish.key", key)),
	)
	defer span.End()
	return p.put(ctx, span, key, html)
}

func (p *Publisher) put(ctx context.Context, span trace.Span, key, out string) (Result, error) {
	data := []byte(out)
	if err := p.store.Put(ctx, key, ContentTypeHTML, data); err != nil {
		err = errors.FromError(err, errors.CodeStoreFailure)
		fail(span, err)
		p.logger.Error("publish failed", "key", key, "error", err)
		return Result{}, err
	}

	span.SetAttributes(attribute.Int("publish.bytes", len(data)))
	span.SetStatus(codes.Ok, "")
	p.logger.Info("published", "key", key, "bytes", len(data))
	return Result{Key: key, Bytes: len(data)}, nil
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
