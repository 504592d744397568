// Package middleware provides Prometheus and OpenTelemetry instrumentation
// for tag rendering and for the HTTP preview server.
//
// # Prometheus Metrics
//
// Metrics implements render.Observer and stack.Observer, so one value can
// watch a renderer and every stack created with it:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r := render.NewRenderer(render.RendererConfig{Observer: m})
//	s := stack.New(stack.WithRenderer(r), stack.WithObserver(m))
//
// Metrics collected (namespace "tagkit" by default):
//   - tagkit_renders_total: render calls by shape
//   - tagkit_render_errors_total: failed render calls by error code
//   - tagkit_open_sessions: begin calls awaiting their end call
//   - tagkit_http_requests_total: HTTP requests by route and status
//   - tagkit_http_request_duration_seconds: HTTP request duration by route
//
// Metrics.HTTP returns chi-compatible middleware for the request metrics.
//
// # OpenTelemetry Middleware
//
// OpenTelemetry starts a server span per HTTP request using the global
// tracer provider and stores it in the request context:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("tagkit-preview")))
package middleware
