// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements vote accounting and quota enforcement.

# Operations

	svc := voting.NewService(cat, st, st)

	svc.SetQuota(ctx, "user-1", 3)             // upsert ceiling
	svc.RecordVote(ctx, "user-1", key)         // one vote, quota checked
	svc.RemainingVotes(ctx, "user-1")          // quota - votes cast
	svc.Tally(ctx)                             // per-category report

# Errors

  - ErrQuotaUnset: the user has no quota entry
  - ErrQuotaExceeded: one more vote would pass the quota
  - ErrPersistence: loading or saving a document failed
  - ErrInvalidQuota: SetQuota got a blank user or negative quota

Errors are wrapped; match them with errors.Is.

# Atomicity

RecordVote loads the quota and the ledger, checks, increments, and saves
while holding the service's ledger lock. Stores save whole documents, so the
lock covers all users, not only the voter: two users voting at once would
otherwise overwrite each other's save.

# Tally Ordering

Categories follow catalog order. Categories missing from the catalog come
next, sorted by name, and "unclassified" is always last. Inside a category,
options sort by count descending; ties keep catalog order, and options
missing from the catalog follow, sorted by label.
*/
package voting
