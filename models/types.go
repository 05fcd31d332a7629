// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
)

// Vote key constants
const (
	KeySeparator = ":"
	Unclassified = "unclassified"
)

// Interaction response types
const (
	ResponseMessage = "message"
	ResponsePanel   = "panel"
)

// VoteKey identifies one option inside one category.
type VoteKey struct {
	Category string `json:"category"`
	Option   string `json:"option"`
}

// String serializes the key as "category:option".
func (k VoteKey) String() string {
	if k.Category == "" {
		return k.Option
	}
	return k.Category + KeySeparator + k.Option
}

// ParseVoteKey splits a serialized key on the first separator.
// Keys without a separator belong to the unclassified category.
func ParseVoteKey(s string) VoteKey {
	category, option, ok := strings.Cut(s, KeySeparator)
	if !ok {
		return VoteKey{Category: Unclassified, Option: s}
	}
	return VoteKey{Category: category, Option: option}
}

// Ledger maps user ID -> serialized vote key -> count
type Ledger map[string]map[string]int

// Total returns the number of votes a user has cast.
func (l Ledger) Total(userID string) int {
	total := 0
	for _, count := range l[userID] {
		total += count
	}
	return total
}

// Add increments one key for a user and returns the new count.
func (l Ledger) Add(userID string, key VoteKey) int {
	entry := l[userID]
	if entry == nil {
		entry = make(map[string]int)
		l[userID] = entry
	}
	entry[key.String()]++
	return entry[key.String()]
}

// Clone returns a deep copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for userID, entry := range l {
		copied := make(map[string]int, len(entry))
		for key, count := range entry {
			copied[key] = count
		}
		out[userID] = copied
	}
	return out
}

// QuotaTable maps user ID -> vote ceiling
type QuotaTable map[string]int

// Clone returns a copy.
func (q QuotaTable) Clone() QuotaTable {
	out := make(QuotaTable, len(q))
	for userID, quota := range q {
		out[userID] = quota
	}
	return out
}

// Request types

type SetLimitRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Limit       *int   `json:"limit"`
}

type InteractionRequest struct {
	CustomID string `json:"custom_id"`
}

// Response types

type SetLimitResponse struct {
	UserID  string `json:"user_id"`
	Limit   int    `json:"limit"`
	Message string `json:"message"`
}

// InteractionResponse is relayed by the gateway to the acting user.
// Panel is set only for ResponsePanel.
type InteractionResponse struct {
	Type      string `json:"type"`
	Ephemeral bool   `json:"ephemeral"`
	Content   string `json:"content"`
	Panel     *Panel `json:"panel,omitempty"`
}

type ResultsResponse struct {
	Content string      `json:"content"`
	Report  TallyReport `json:"report"`
}

// Domain types

// VoteReceipt describes a recorded vote.
type VoteReceipt struct {
	UserID    string  `json:"user_id"`
	Key       VoteKey `json:"key"`
	Count     int     `json:"count"`
	Remaining int     `json:"remaining"`
}

// Panel types

// ControlKind is the closed set of panel control variants.
type ControlKind string

const (
	ControlSelect    ControlKind = "vote"
	ControlPrev      ControlKind = "prev"
	ControlNext      ControlKind = "next"
	ControlRemaining ControlKind = "remaining"
)

// Button styles understood by the gateway
const (
	StylePrimary   = "primary"
	StyleSecondary = "secondary"
	StyleSuccess   = "success"
)

type Control struct {
	Kind     ControlKind `json:"kind"`
	CustomID string      `json:"custom_id"`
	Label    string      `json:"label"`
	Style    string      `json:"style"`
	Category string      `json:"category,omitempty"`
	Option   string      `json:"option,omitempty"`
}

// Panel is one rendered category page.
type Panel struct {
	ID        string    `json:"id"`
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Category  string    `json:"category"`
	Header    string    `json:"header"`
	Controls  []Control `json:"controls"`
}

// Tally types

type OptionTally struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

type CategoryTally struct {
	Category string        `json:"category"`
	Options  []OptionTally `json:"options"`
}

type TallyReport struct {
	Categories []CategoryTally `json:"categories"`
	TotalVotes int             `json:"total_votes"`
}

// Empty reports whether no votes have been cast.
func (r TallyReport) Empty() bool {
	return r.TotalVotes == 0
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
