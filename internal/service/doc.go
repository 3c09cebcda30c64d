// Package service contains the application use cases for contacts and tasks.
// It orchestrates domain objects and the store interfaces (defined in
// internal/store) and never depends on a concrete storage implementation.
//
// Services are stateless: every call reads through to the store. Expected
// failures are reported with the sentinel errors in errors.go so the API
// layer can map them to HTTP status codes; anything else is wrapped in a
// ServiceError.
package service
