package cmd

import (
	"testing"

	"secdash/internal/usecase/ingest"
)

func TestFormatOutcomeKeyed(t *testing.T) {
	t.Parallel()

	got := formatOutcome(ingest.Outcome{
		Table:            "cyber_incidents",
		File:             "cyber_incidents.csv",
		Inserted:         12,
		SkippedExisting:  3,
		DroppedNullKey:   1,
		DuplicateInBatch: 2,
	})
	want := "cyber_incidents: inserted=12 skipped_existing=3 dropped_null_key=1 duplicates_in_file=2"
	if got != want {
		t.Fatalf("formatOutcome() = %q, want %q", got, want)
	}
}

func TestFormatOutcomeFileMissing(t *testing.T) {
	t.Parallel()

	got := formatOutcome(ingest.Outcome{
		Table:       "it_tickets",
		File:        "it_tickets.csv",
		FileMissing: true,
	})
	want := "it_tickets: it_tickets.csv not found, skipped"
	if got != want {
		t.Fatalf("formatOutcome() = %q, want %q", got, want)
	}
}

func TestFormatOutcomeUnkeyed(t *testing.T) {
	t.Parallel()

	got := formatOutcome(ingest.Outcome{
		Table:    "audit_log",
		File:     "audit_log.csv",
		Inserted: 7,
		Unkeyed:  true,
	})
	want := "audit_log: appended 7 rows without dedup"
	if got != want {
		t.Fatalf("formatOutcome() = %q, want %q", got, want)
	}
}

func TestDashIfEmpty(t *testing.T) {
	t.Parallel()

	if got := dashIfEmpty(""); got != "-" {
		t.Fatalf("dashIfEmpty(\"\") = %q, want -", got)
	}
	if got := dashIfEmpty("High"); got != "High" {
		t.Fatalf("dashIfEmpty(\"High\") = %q, want High", got)
	}
}
