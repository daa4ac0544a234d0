package catalog

import "testing"

func TestBatchOrder(t *testing.T) {
	batch := Batch()
	if len(batch) != 3 {
		t.Fatalf("Batch() len = %d, want 3", len(batch))
	}

	wantTables := []string{"cyber_incidents", "datasets_metadata", "it_tickets"}
	wantKeys := []string{"incident_id", "dataset_name", "ticket_id"}
	for i, desc := range batch {
		if desc.Table != wantTables[i] {
			t.Fatalf("Batch()[%d].Table = %q, want %q", i, desc.Table, wantTables[i])
		}
		if desc.KeyColumn != wantKeys[i] {
			t.Fatalf("Batch()[%d].KeyColumn = %q, want %q", i, desc.KeyColumn, wantKeys[i])
		}
		if !desc.Keyed() {
			t.Fatalf("Batch()[%d].Keyed() = false", i)
		}
		if desc.SourceFile != desc.Table+".csv" {
			t.Fatalf("Batch()[%d].SourceFile = %q", i, desc.SourceFile)
		}
	}
}

func TestUsersExcludedFromBatch(t *testing.T) {
	for _, desc := range Batch() {
		if desc.Table == "users" {
			t.Fatalf("Batch() includes users")
		}
	}

	desc, ok := ByTable("users")
	if !ok {
		t.Fatalf("ByTable(users) not found")
	}
	if desc.SourceFile != "" {
		t.Fatalf("users SourceFile = %q, want empty", desc.SourceFile)
	}
}

func TestByTable(t *testing.T) {
	desc, ok := ByTable("it_tickets")
	if !ok {
		t.Fatalf("ByTable(it_tickets) not found")
	}
	if desc.KeyColumn != "ticket_id" {
		t.Fatalf("KeyColumn = %q, want %q", desc.KeyColumn, "ticket_id")
	}

	if _, ok := ByTable("IT_TICKETS"); ok {
		t.Fatalf("ByTable() matched case-insensitively")
	}
	if _, ok := ByTable("nope"); ok {
		t.Fatalf("ByTable(nope) found")
	}
}

func TestColumnKind(t *testing.T) {
	kind, ok := Datasets.ColumnKind("size_mb")
	if !ok || kind != Real {
		t.Fatalf("ColumnKind(size_mb) = %v, %v", kind, ok)
	}
	kind, ok = Datasets.ColumnKind("row_count")
	if !ok || kind != Integer {
		t.Fatalf("ColumnKind(row_count) = %v, %v", kind, ok)
	}
	if _, ok := Datasets.ColumnKind("missing"); ok {
		t.Fatalf("ColumnKind(missing) found")
	}
}

func TestUnkeyed(t *testing.T) {
	desc := Unkeyed("audit_log", "audit_log.csv")
	if desc.Keyed() {
		t.Fatalf("Unkeyed descriptor reports Keyed() = true")
	}
	if desc.Table != "audit_log" || desc.SourceFile != "audit_log.csv" {
		t.Fatalf("Unkeyed() = %#v", desc)
	}
	if len(desc.Columns) != 0 {
		t.Fatalf("Unkeyed columns = %d, want 0", len(desc.Columns))
	}
}
