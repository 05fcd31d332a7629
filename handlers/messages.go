// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/quickly-tally/models"
)

// Notices shown privately to the acting user
const (
	msgQuotaUnset     = "Your vote limit has not been set yet."
	msgQuotaExceeded  = "You have no votes left."
	msgPersistence    = "Could not save right now. Please try again."
	msgInvalidControl = "This panel is no longer valid. Start a new vote."
	msgNoVotes        = "No votes yet."
)

func formatVotes(n int) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, "vote", "votes")
}

func formatVoteConfirmation(receipt models.VoteReceipt) string {
	return fmt.Sprintf("Voted for 【%s】%s! (%s left)",
		receipt.Key.Category, receipt.Key.Option, formatVotes(max(receipt.Remaining, 0)))
}

// Remaining can be negative after an operator lowered a quota; users see 0.
func formatRemaining(remaining int) string {
	return formatVotes(max(remaining, 0)) + " left"
}

func formatLimitSet(name string, limit int) string {
	return fmt.Sprintf("Set the vote limit of %s to %s.", name, formatVotes(limit))
}

// formatReport renders a tally as chat text, one block per category.
func formatReport(report models.TallyReport) string {
	if report.Empty() {
		return msgNoVotes
	}

	var b strings.Builder
	b.WriteString("🏆 Results by category 🏆\n\n")
	for _, cat := range report.Categories {
		fmt.Fprintf(&b, "📌【%s】\n", cat.Category)
		for _, opt := range cat.Options {
			fmt.Fprintf(&b, "  %s - %s\n", opt.Option, formatVotes(opt.Count))
		}
		b.WriteString("\n")
	}
	return b.String()
}
