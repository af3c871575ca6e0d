// Package middleware groups HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a request id (RayID) to every incoming request, stores it in
//     the context for logger.WithRayID and echoes it in the X-Ray-ID response header.
//
// Request logging and panic recovery are registered by the start command.
package middleware
