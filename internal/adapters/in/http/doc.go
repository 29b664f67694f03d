// Package http exposes the fleet use cases over a JSON API served by echo.
//
// Requests under /api/ are validated against the embedded OpenAPI document
// before they reach a handler. Use case errors are mapped onto status codes
// in one place: not found is 404, conflicts with existing state are 409,
// forbidden transitions are 422 and malformed values are 400.
package http
