// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Tally API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, builder)

# Endpoints

Health:

	GET /health

Commands (forwarded by the chat gateway):

	POST /commands/start-vote          - New panel on the first category
	POST /commands/set-limit           - Upsert a user's vote limit
	GET  /commands/results-by-category - Tally report

Panel button presses (requires X-User-ID):

	POST /interactions - Vote, page prev/next, or show remaining votes

# Handler Initialization

The router creates handler instances with dependency injection:

	commandHandler := handlers.NewCommandHandler(svc, builder)
	interactionHandler := handlers.NewInteractionHandler(svc, builder)

Both share the voting service and the panel builder.
*/
package router
