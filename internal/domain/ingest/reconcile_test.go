package ingest

import "testing"

func TestReconcileDropsNullKeys(t *testing.T) {
	rows := []Row{
		{"incident_id": "INC-1", "severity": "High"},
		{"incident_id": "", "severity": "Low"},
		{"incident_id": "   ", "severity": "Low"},
		{"severity": "Medium"},
	}

	plan := Reconcile(rows, "incident_id", nil)
	if plan.DroppedNullKey != 3 {
		t.Fatalf("DroppedNullKey = %d, want 3", plan.DroppedNullKey)
	}
	if len(plan.Insert) != 1 || plan.Insert[0]["incident_id"] != "INC-1" {
		t.Fatalf("Insert = %#v", plan.Insert)
	}
	if plan.SkippedExisting != 0 || plan.DuplicateInBatch != 0 {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestReconcileFirstOccurrenceWins(t *testing.T) {
	rows := []Row{
		{"ticket_id": "T-1", "status": "Open"},
		{"ticket_id": "T-2", "status": "Open"},
		{"ticket_id": "T-1", "status": "Closed"},
		{"ticket_id": "T-3", "status": "Open"},
		{"ticket_id": "T-2", "status": "Closed"},
	}

	plan := Reconcile(rows, "ticket_id", nil)
	if plan.DuplicateInBatch != 2 {
		t.Fatalf("DuplicateInBatch = %d, want 2", plan.DuplicateInBatch)
	}
	if len(plan.Insert) != 3 {
		t.Fatalf("Insert len = %d, want 3", len(plan.Insert))
	}

	wantOrder := []string{"T-1", "T-2", "T-3"}
	for i, row := range plan.Insert {
		if row["ticket_id"] != wantOrder[i] {
			t.Fatalf("Insert[%d] key = %q, want %q", i, row["ticket_id"], wantOrder[i])
		}
	}
	if plan.Insert[0]["status"] != "Open" {
		t.Fatalf("first occurrence lost: status = %q", plan.Insert[0]["status"])
	}
}

func TestReconcileSkipsExistingKeys(t *testing.T) {
	existing := KeySet([]string{"DS-A", "DS-B"})
	rows := []Row{
		{"dataset_name": "DS-A"},
		{"dataset_name": "DS-C"},
		{"dataset_name": "DS-B"},
	}

	plan := Reconcile(rows, "dataset_name", existing)
	if plan.SkippedExisting != 2 {
		t.Fatalf("SkippedExisting = %d, want 2", plan.SkippedExisting)
	}
	if len(plan.Insert) != 1 || plan.Insert[0]["dataset_name"] != "DS-C" {
		t.Fatalf("Insert = %#v", plan.Insert)
	}
}

func TestReconcileKeysCompareAsExactStrings(t *testing.T) {
	existing := KeySet([]string{"7"})
	rows := []Row{
		{"ticket_id": "7"},
		{"ticket_id": "7.0"},
		{"ticket_id": "07"},
	}

	plan := Reconcile(rows, "ticket_id", existing)
	if plan.SkippedExisting != 1 {
		t.Fatalf("SkippedExisting = %d, want 1", plan.SkippedExisting)
	}
	if len(plan.Insert) != 2 {
		t.Fatalf("Insert len = %d, want 2", len(plan.Insert))
	}
	if plan.Insert[0]["ticket_id"] != "7.0" || plan.Insert[1]["ticket_id"] != "07" {
		t.Fatalf("Insert = %#v", plan.Insert)
	}
}

func TestReconcileDuplicateOfExistingKeyCountsOnceEach(t *testing.T) {
	existing := KeySet([]string{"INC-9"})
	rows := []Row{
		{"incident_id": "INC-9"},
		{"incident_id": "INC-9"},
	}

	plan := Reconcile(rows, "incident_id", existing)
	if plan.SkippedExisting != 1 {
		t.Fatalf("SkippedExisting = %d, want 1", plan.SkippedExisting)
	}
	if plan.DuplicateInBatch != 1 {
		t.Fatalf("DuplicateInBatch = %d, want 1", plan.DuplicateInBatch)
	}
	if len(plan.Insert) != 0 {
		t.Fatalf("Insert = %#v", plan.Insert)
	}
}

func TestReconcileTrimsKeysBeforeComparing(t *testing.T) {
	existing := KeySet([]string{" DS-A "})
	rows := []Row{
		{"dataset_name": "DS-A"},
		{"dataset_name": "  DS-B  "},
	}

	plan := Reconcile(rows, "dataset_name", existing)
	if plan.SkippedExisting != 1 {
		t.Fatalf("SkippedExisting = %d, want 1", plan.SkippedExisting)
	}
	if len(plan.Insert) != 1 || plan.Insert[0]["dataset_name"] != "  DS-B  " {
		t.Fatalf("Insert = %#v", plan.Insert)
	}
}

func TestKeySetIgnoresEmptyValues(t *testing.T) {
	set := KeySet([]string{"A", "", "  ", "B", "A"})
	if len(set) != 2 {
		t.Fatalf("KeySet len = %d, want 2", len(set))
	}
	if _, ok := set["A"]; !ok {
		t.Fatalf("KeySet missing A")
	}
	if _, ok := set["B"]; !ok {
		t.Fatalf("KeySet missing B")
	}
}
