// Package site serves the embedded roster dashboard page.
package site

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// Register attaches the embedded dashboard to the router root. API
// routes must be registered first; this is the catch-all.
func Register(_ context.Context, r *mux.Router) {
	if r == nil {
		panic("router is nil")
	}
	r.PathPrefix("/").Handler(http.FileServer(FS()))
}
