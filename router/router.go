// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/panel"
	"github.com/danielhkuo/quickly-tally/voting"
)

func NewRouter(svc *voting.Service, builder *panel.Builder) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	commandHandler := handlers.NewCommandHandler(svc, builder)
	interactionHandler := handlers.NewInteractionHandler(svc, builder)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Commands forwarded by the chat gateway
	mux.HandleFunc("POST /commands/start-vote", middleware.WithLogging(commandHandler.StartVote))
	mux.HandleFunc("POST /commands/set-limit", middleware.WithLogging(commandHandler.SetLimit))
	mux.HandleFunc("GET /commands/results-by-category", middleware.WithLogging(commandHandler.ResultsByCategory))

	// Panel button presses
	mux.HandleFunc("POST /interactions", middleware.WithLogging(interactionHandler.Handle))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-tally API v1"))
	})

	return mux
}
