package routes

import "net/http"

// Route pairs a method-qualified ServeMux pattern with its handler.
// Pattern is relative to the enclosing Group's prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
