// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /interactions", middleware.WithLogging(handler))

Logs request start (method, path, request_id, user_id) and completion
(duration_ms). The request ID is taken from X-Request-ID when the gateway
sends one, otherwise a UUID is generated. It is echoed in the response
header and available to handlers:

	id := middleware.RequestID(r.Context())

# Caller Identity

The chat gateway puts the acting user's platform ID in X-User-ID:

	userID := middleware.CallerID(r)

The value is trusted as-is.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SetLimitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
