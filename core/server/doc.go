// Package server holds the HTTP server configuration: the listen port and
// the request body cap applied to uploads.
package server
