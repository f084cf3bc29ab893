package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/wagerworks/ecosim/internal/engine"
)

// NewServer creates and returns a configured *http.Server for the economy API.
func NewServer(port uint16, eng *engine.Engine) *http.Server {
	mux := NewRouter(eng)

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
