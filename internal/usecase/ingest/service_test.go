package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"secdash/internal/domain/catalog"
	"secdash/internal/infrastructure/persistence/sqlite/model"
	sqliterepo "secdash/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "secdash/internal/infrastructure/persistence/sqlite/uow"
	sqlitestate "secdash/internal/infrastructure/state"
)

func setupIngest(t *testing.T) (*Service, *gorm.DB, string) {
	t.Helper()

	root := t.TempDir()
	db, err := gorm.Open(gormsqlite.Open(filepath.Join(root, "secdash.sqlite")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Incident{},
		&model.Dataset{},
		&model.Ticket{},
		&model.MetaEntry{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	dataDir := filepath.Join(root, "DATA")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}

	svc := NewService(
		sqliterepo.NewBatchRepository(db),
		sqliteuow.NewUnitOfWork(db),
		sqlitestate.NewSQLiteStateStore(db),
		dataDir,
	)
	return svc, db, dataDir
}

func writeCSV(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}

func TestLoadFileMissingFileIsNoOp(t *testing.T) {
	svc, db, dataDir := setupIngest(t)

	outcome, err := svc.LoadFile(context.Background(), catalog.Incidents, filepath.Join(dataDir, "cyber_incidents.csv"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !outcome.FileMissing {
		t.Fatalf("FileMissing = false, want true")
	}
	if outcome.Inserted != 0 || outcome.SkippedExisting != 0 {
		t.Fatalf("outcome = %+v", outcome)
	}
	if n := countRows(t, db, "cyber_incidents"); n != 0 {
		t.Fatalf("cyber_incidents rows = %d, want 0", n)
	}
}

func TestLoadFileReconciles(t *testing.T) {
	svc, db, dataDir := setupIngest(t)
	ctx := context.Background()

	if err := db.Create(&model.Incident{IncidentID: "INC-1", Status: "Open"}).Error; err != nil {
		t.Fatalf("seed incident: %v", err)
	}

	path := writeCSV(t, dataDir, "cyber_incidents.csv",
		"incident_id,incident_type,severity,status\n"+
			"INC-1,Phishing,High,Open\n"+
			"INC-2,Malware,Medium,Open\n"+
			"INC-2,Malware,Low,Closed\n"+
			",Phishing,Low,Open\n"+
			"INC-3,DDoS,High,Open\n")

	outcome, err := svc.LoadFile(ctx, catalog.Incidents, path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if outcome.Inserted != 2 {
		t.Fatalf("Inserted = %d, want 2", outcome.Inserted)
	}
	if outcome.SkippedExisting != 1 {
		t.Fatalf("SkippedExisting = %d, want 1", outcome.SkippedExisting)
	}
	if outcome.DuplicateInBatch != 1 {
		t.Fatalf("DuplicateInBatch = %d, want 1", outcome.DuplicateInBatch)
	}
	if outcome.DroppedNullKey != 1 {
		t.Fatalf("DroppedNullKey = %d, want 1", outcome.DroppedNullKey)
	}

	var keys []string
	if err := db.Table("cyber_incidents").Order("id asc").Pluck("incident_id", &keys).Error; err != nil {
		t.Fatalf("pluck keys: %v", err)
	}
	wantKeys := []string{"INC-1", "INC-2", "INC-3"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("rows = %d, want %d", len(keys), len(wantKeys))
	}
	for i, key := range keys {
		if key != wantKeys[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, key, wantKeys[i])
		}
	}

	var kept model.Incident
	if err := db.Where("incident_id = ?", "INC-2").Take(&kept).Error; err != nil {
		t.Fatalf("read INC-2: %v", err)
	}
	if kept.Severity != "Medium" {
		t.Fatalf("INC-2 severity = %q, want first occurrence %q", kept.Severity, "Medium")
	}
}

func TestLoadFileRunTwiceIsIdempotent(t *testing.T) {
	svc, db, dataDir := setupIngest(t)
	ctx := context.Background()

	path := writeCSV(t, dataDir, "it_tickets.csv",
		"ticket_id,category,priority,status\n"+
			"T-1,Network,High,Open\n"+
			"T-2,Hardware,Low,Open\n")

	first, err := svc.LoadFile(ctx, catalog.Tickets, path)
	if err != nil {
		t.Fatalf("LoadFile(first) error = %v", err)
	}
	if first.Inserted != 2 || first.SkippedExisting != 0 {
		t.Fatalf("first = %+v", first)
	}

	second, err := svc.LoadFile(ctx, catalog.Tickets, path)
	if err != nil {
		t.Fatalf("LoadFile(second) error = %v", err)
	}
	if second.Inserted != 0 || second.SkippedExisting != 2 {
		t.Fatalf("second = %+v", second)
	}

	if n := countRows(t, db, "it_tickets"); n != 2 {
		t.Fatalf("it_tickets rows = %d, want 2", n)
	}
}

func TestLoadFileKeysCompareAsExactStrings(t *testing.T) {
	svc, db, dataDir := setupIngest(t)
	ctx := context.Background()

	if err := db.Create(&model.Ticket{TicketID: "7", Status: "Open"}).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}

	path := writeCSV(t, dataDir, "it_tickets.csv",
		"ticket_id,status\n"+
			"7,Closed\n"+
			"7.0,Open\n")

	outcome, err := svc.LoadFile(ctx, catalog.Tickets, path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if outcome.SkippedExisting != 1 {
		t.Fatalf("SkippedExisting = %d, want 1", outcome.SkippedExisting)
	}
	if outcome.Inserted != 1 {
		t.Fatalf("Inserted = %d, want 1", outcome.Inserted)
	}

	if n := countRows(t, db, "it_tickets"); n != 2 {
		t.Fatalf("it_tickets rows = %d, want 2", n)
	}
}

func TestLoadFileMatchesColumnsByName(t *testing.T) {
	svc, db, dataDir := setupIngest(t)
	ctx := context.Background()

	path := writeCSV(t, dataDir, "datasets_metadata.csv",
		"row_count,unexpected,dataset_name,size_mb\n"+
			"500,x,net_flows,2.5\n")

	outcome, err := svc.LoadFile(ctx, catalog.Datasets, path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if outcome.Inserted != 1 {
		t.Fatalf("Inserted = %d, want 1", outcome.Inserted)
	}

	var row model.Dataset
	if err := db.Where("dataset_name = ?", "net_flows").Take(&row).Error; err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	if row.RowCount != 500 || row.SizeMB != 2.5 {
		t.Fatalf("dataset = %+v", row)
	}
}

func TestLoadFileUnkeyedAppendsEverything(t *testing.T) {
	svc, db, dataDir := setupIngest(t)
	ctx := context.Background()

	if err := db.Exec("CREATE TABLE audit_log (entry TEXT, actor TEXT)").Error; err != nil {
		t.Fatalf("create table: %v", err)
	}

	path := writeCSV(t, dataDir, "audit_log.csv",
		"entry,actor\n"+
			"login,alice\n"+
			"login,alice\n"+
			",bob\n")

	outcome, err := svc.LoadFile(ctx, catalog.Unkeyed("audit_log", "audit_log.csv"), path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !outcome.Unkeyed {
		t.Fatalf("Unkeyed = false, want true")
	}
	if outcome.Inserted != 3 {
		t.Fatalf("Inserted = %d, want 3", outcome.Inserted)
	}
	if outcome.SkippedExisting != 0 || outcome.DroppedNullKey != 0 {
		t.Fatalf("outcome = %+v", outcome)
	}

	if n := countRows(t, db, "audit_log"); n != 3 {
		t.Fatalf("audit_log rows = %d, want 3", n)
	}
}

func TestLoadAllAggregatesAndRecordsState(t *testing.T) {
	svc, db, dataDir := setupIngest(t)
	ctx := context.Background()

	writeCSV(t, dataDir, "cyber_incidents.csv",
		"incident_id,severity\n"+
			"INC-1,High\n"+
			"INC-2,Low\n")
	writeCSV(t, dataDir, "it_tickets.csv",
		"ticket_id,status\n"+
			"T-1,Open\n")
	// datasets_metadata.csv deliberately absent

	if err := db.Create(&model.Incident{IncidentID: "INC-2", Severity: "Medium"}).Error; err != nil {
		t.Fatalf("seed incident: %v", err)
	}

	summary, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if summary.RunID == "" {
		t.Fatalf("RunID is empty")
	}
	if len(summary.Outcomes) != 3 {
		t.Fatalf("Outcomes len = %d, want 3", len(summary.Outcomes))
	}
	if summary.Inserted != 2 || summary.SkippedExisting != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if !summary.Outcomes[1].FileMissing {
		t.Fatalf("datasets outcome = %+v, want FileMissing", summary.Outcomes[1])
	}

	wantText := "CSV load summary: inserted=2, skipped(existing)=1"
	if summary.String() != wantText {
		t.Fatalf("String() = %q, want %q", summary.String(), wantText)
	}

	runID, runAt, lastSummary, found, err := svc.LastRun(ctx)
	if err != nil {
		t.Fatalf("LastRun() error = %v", err)
	}
	if !found {
		t.Fatalf("LastRun() found = false")
	}
	if runID != summary.RunID {
		t.Fatalf("LastRun() run id = %q, want %q", runID, summary.RunID)
	}
	if runAt == "" {
		t.Fatalf("LastRun() run at is empty")
	}
	if lastSummary != wantText {
		t.Fatalf("LastRun() summary = %q, want %q", lastSummary, wantText)
	}
}

func TestLoadAllTotalsEqualOutcomeSums(t *testing.T) {
	svc, _, dataDir := setupIngest(t)
	ctx := context.Background()

	writeCSV(t, dataDir, "cyber_incidents.csv", "incident_id\nINC-1\nINC-2\n")
	writeCSV(t, dataDir, "datasets_metadata.csv", "dataset_name\nds1\n")
	writeCSV(t, dataDir, "it_tickets.csv", "ticket_id\nT-1\nT-2\nT-3\n")

	summary, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	var inserted, skipped int
	for _, outcome := range summary.Outcomes {
		inserted += outcome.Inserted
		skipped += outcome.SkippedExisting
	}
	if summary.Inserted != inserted || summary.SkippedExisting != skipped {
		t.Fatalf("summary totals %d/%d, outcome sums %d/%d",
			summary.Inserted, summary.SkippedExisting, inserted, skipped)
	}
	if summary.Inserted != 6 {
		t.Fatalf("Inserted = %d, want 6", summary.Inserted)
	}
}

func TestLoadAllFromOverridesDataDir(t *testing.T) {
	svc, db, _ := setupIngest(t)
	ctx := context.Background()

	altDir := t.TempDir()
	writeCSV(t, altDir, "cyber_incidents.csv", "incident_id\nINC-9\n")

	summary, err := svc.LoadAllFrom(ctx, altDir)
	if err != nil {
		t.Fatalf("LoadAllFrom() error = %v", err)
	}
	if summary.Inserted != 1 {
		t.Fatalf("Inserted = %d, want 1", summary.Inserted)
	}
	if n := countRows(t, db, "cyber_incidents"); n != 1 {
		t.Fatalf("cyber_incidents rows = %d, want 1", n)
	}
}

func TestTableCounts(t *testing.T) {
	svc, db, _ := setupIngest(t)
	ctx := context.Background()

	if err := db.Create(&model.Incident{IncidentID: "INC-1"}).Error; err != nil {
		t.Fatalf("seed incident: %v", err)
	}
	if err := db.Create(&model.Ticket{TicketID: "T-1"}).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	if err := db.Create(&model.Ticket{TicketID: "T-2"}).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	if err := db.Create(&model.User{Username: "admin", PasswordHash: "x", Role: "admin"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	counts, err := svc.TableCounts(ctx)
	if err != nil {
		t.Fatalf("TableCounts() error = %v", err)
	}

	want := map[string]int64{
		"cyber_incidents":   1,
		"datasets_metadata": 0,
		"it_tickets":        2,
		"users":             1,
	}
	if len(counts) != len(want) {
		t.Fatalf("counts len = %d, want %d", len(counts), len(want))
	}
	for _, count := range counts {
		if count.Rows != want[count.Table] {
			t.Fatalf("%s rows = %d, want %d", count.Table, count.Rows, want[count.Table])
		}
	}
	if counts[0].Table != "cyber_incidents" || counts[3].Table != "users" {
		t.Fatalf("count order = %+v", counts)
	}
}
