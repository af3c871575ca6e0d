// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application lifecycle; this package only
// defines the settings it needs: listen port, graceful shutdown budget and
// whether a random customer is seeded at startup.
package server
