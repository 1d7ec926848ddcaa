// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for two distinct
// surfaces: the public display pages that scanned QR links open, and the
// JSON API used by the terminal client for accounts and menu records.
// Cross-cutting concerns such as authentication, request tracing, access
// logging, and response compression are handled in this package before
// requests are delegated to the service layer.
package http
