// Package server provides an HTTP preview server for tag rendering.
//
// Routes:
//
//	POST /render        render one JSON request, respond with text/html
//	POST /render/batch  render a JSON array of requests joined by newlines
//	POST /begin-end     open and close an element on a per-request stack
//	GET  /healthz       liveness check
//	GET  /metrics       Prometheus metrics
//
// Failed renders respond with 400 and a JSON body:
//
//	{"code": "T001", "message": "Tag name cannot be empty."}
//
// The server is built on chi and can be mounted into another router with
// Handler().
package server
