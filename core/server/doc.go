// Package server holds the HTTP server configuration.
//
// It only defines the Config struct consumed by the Fiber app in the start
// command: the listen port and the API key protecting the admin endpoints.
package server
