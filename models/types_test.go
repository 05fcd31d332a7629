package models

import "testing"

func TestParseVoteKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected VoteKey
	}{
		{"category and option", "cat1:x", VoteKey{Category: "cat1", Option: "x"}},
		{"no separator", "standalone", VoteKey{Category: Unclassified, Option: "standalone"}},
		{"option containing separator", "time:10:30", VoteKey{Category: "time", Option: "10:30"}},
		{"empty option", "cat1:", VoteKey{Category: "cat1", Option: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVoteKey(tt.input)
			if got != tt.expected {
				t.Errorf("ParseVoteKey(%q) = %+v, expected %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestVoteKeyRoundTrip(t *testing.T) {
	key := VoteKey{Category: "色", Option: "ミントグリーン"}
	if got := ParseVoteKey(key.String()); got != key {
		t.Errorf("Round trip mismatch: got %+v, expected %+v", got, key)
	}
}

func TestLedgerAddAndTotal(t *testing.T) {
	ledger := Ledger{}

	if total := ledger.Total("alice"); total != 0 {
		t.Errorf("Expected 0 votes for unknown user, got %d", total)
	}

	ledger.Add("alice", VoteKey{Category: "cat1", Option: "x"})
	count := ledger.Add("alice", VoteKey{Category: "cat1", Option: "x"})
	ledger.Add("alice", VoteKey{Category: "cat2", Option: "y"})

	if count != 2 {
		t.Errorf("Expected count 2 after second vote, got %d", count)
	}
	if total := ledger.Total("alice"); total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
}

func TestLedgerClone(t *testing.T) {
	ledger := Ledger{"alice": {"cat1:x": 1}}
	clone := ledger.Clone()
	clone.Add("alice", VoteKey{Category: "cat1", Option: "x"})
	clone.Add("bob", VoteKey{Category: "cat1", Option: "y"})

	if ledger["alice"]["cat1:x"] != 1 {
		t.Error("Clone shares entry maps with the original")
	}
	if _, ok := ledger["bob"]; ok {
		t.Error("Clone shares the user map with the original")
	}
}

func TestLedgerAdd_NilEntry(t *testing.T) {
	// "alice": null in a JSON document decodes to a nil entry
	ledger := Ledger{"alice": nil}

	count := ledger.Add("alice", VoteKey{Category: "cat1", Option: "x"})
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
	if ledger["alice"]["cat1:x"] != 1 {
		t.Errorf("Vote not stored: %v", ledger["alice"])
	}
}
