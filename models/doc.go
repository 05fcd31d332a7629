// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Vote Keys

A VoteKey names one option inside one category and is persisted as
"category:option":

	key := models.VoteKey{Category: "色", Option: "黒"}
	key.String()                  // "色:黒"
	models.ParseVoteKey("色:黒")   // {色 黒}
	models.ParseVoteKey("solo")   // {unclassified solo}

Parsing splits on the first separator, so options may contain ':'.

# Documents

  - Ledger: user ID -> vote key -> count
  - QuotaTable: user ID -> vote ceiling

Both are persisted whole by the store package.

# Request Types

  - SetLimitRequest: user_id, display_name, limit
  - InteractionRequest: custom_id

# Response Types

  - SetLimitResponse: user_id, limit, message
  - InteractionResponse: type, ephemeral, content, panel
  - ResultsResponse: content, report
  - ErrorResponse: error, message

# Panel Types

A Panel is one rendered category page. Its Controls are a closed set of
variants:

	ControlSelect    = "vote"
	ControlPrev      = "prev"
	ControlNext      = "next"
	ControlRemaining = "remaining"

# Tally Types

  - TallyReport: per-category results plus the overall vote total
  - CategoryTally: one category with its options, highest count first
  - OptionTally: option label and count
*/
package models
