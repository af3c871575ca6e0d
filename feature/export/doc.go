// Package export writes JSON snapshots of the customer table to object storage.
//
// An export lists every customer through the customer service, serialises the
// result together with a UTC timestamp and uploads it under the configured
// prefix. Concurrent export requests share a single run.
//
// The feature is only loaded when storage is enabled in configuration.
package export
