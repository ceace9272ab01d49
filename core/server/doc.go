// Package server holds the HTTP server configuration.
//
// The start command serves manifest checks, downloads and the download history over HTTP.
// This package only defines the settings: listening port, optional API key, the default
// manifest path and how long asset listings are cached between requests.
package server
