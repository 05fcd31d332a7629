// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Tally API.

The chat gateway forwards slash commands and button presses to these
endpoints and relays each JSON response back to the user.

# Handler Types

  - CommandHandler: operator commands (start vote, set limit, results)
  - InteractionHandler: panel button presses

Both wrap a *voting.Service and a *panel.Builder:

	commands := handlers.NewCommandHandler(svc, builder)

# Commands

	POST /commands/start-vote          → StartVote (panel for the first category)
	POST /commands/set-limit           → SetLimit
	GET  /commands/results-by-category → ResultsByCategory

# Interactions

	POST /interactions → Handle

The body carries the custom_id of the pressed control. The caller is
identified by the X-User-ID header. Replies to interactions are ephemeral:
a vote confirmation, the panel for another page, the remaining vote count,
or a quota notice.
*/
package handlers
