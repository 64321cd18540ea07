// Package http implements the HTTP transport of the stub profile server.
//
// It exposes route wiring, request handlers, and middleware. Request IDs,
// access logging, response compression, and bearer authentication are
// handled here before requests reach the stubserver service.
package http
