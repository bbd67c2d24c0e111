// Package api exposes the validity engine over HTTP.
//
// POST /v1/validity accepts an HTML document (text/html) or a control
// snapshot (application/json, application/yaml) and answers with a report.
// The default answer is a JSON envelope:
//
//	{"data": {...report...}, "meta": {"valid": false, "total": 3, "invalid": 1, "request_id": "..."}}
//
// Clients sending Accept: text/html get a rendered page instead, and
// DataStar pages (Accept: text/event-stream) get the report element patched
// over server-sent events.
//
// Errors use the same envelope with an error object and map to 400 for
// unparsable input, 413 for bodies over the configured limit and 415 for
// unsupported content types.
//
// Every request passes through a request-id middleware (X-Request-ID), a
// structured access log and panic recovery. GET /metrics exposes Prometheus
// counters for served requests, evaluated controls and raised flags.
package api
