// Package httpapi exposes the assistant over a JSON HTTP API built on gin.
//
// Routes live under /api/v1: health, ask (JSON or multipart with an
// optional document upload), search and extract.
package httpapi
