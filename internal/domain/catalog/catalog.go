package catalog

type Kind int

const (
	Text Kind = iota
	Real
	Integer
)

type Column struct {
	Name string
	Kind Kind
}

type Descriptor struct {
	Table      string
	KeyColumn  string
	SourceFile string
	Columns    []Column
}

func (d Descriptor) Keyed() bool {
	return d.KeyColumn != ""
}

func (d Descriptor) ColumnNames() []string {
	out := make([]string, 0, len(d.Columns))
	for _, col := range d.Columns {
		out = append(out, col.Name)
	}
	return out
}

func (d Descriptor) ColumnKind(name string) (Kind, bool) {
	for _, col := range d.Columns {
		if col.Name == name {
			return col.Kind, true
		}
	}
	return Text, false
}

var Incidents = Descriptor{
	Table:      "cyber_incidents",
	KeyColumn:  "incident_id",
	SourceFile: "cyber_incidents.csv",
	Columns: []Column{
		{Name: "incident_id", Kind: Text},
		{Name: "incident_type", Kind: Text},
		{Name: "severity", Kind: Text},
		{Name: "status", Kind: Text},
		{Name: "reported_at", Kind: Text},
		{Name: "resolved_at", Kind: Text},
		{Name: "assigned_to", Kind: Text},
		{Name: "description", Kind: Text},
	},
}

var Datasets = Descriptor{
	Table:      "datasets_metadata",
	KeyColumn:  "dataset_name",
	SourceFile: "datasets_metadata.csv",
	Columns: []Column{
		{Name: "dataset_name", Kind: Text},
		{Name: "owner", Kind: Text},
		{Name: "source_system", Kind: Text},
		{Name: "size_mb", Kind: Real},
		{Name: "row_count", Kind: Integer},
		{Name: "created_at", Kind: Text},
	},
}

var Tickets = Descriptor{
	Table:      "it_tickets",
	KeyColumn:  "ticket_id",
	SourceFile: "it_tickets.csv",
	Columns: []Column{
		{Name: "ticket_id", Kind: Text},
		{Name: "category", Kind: Text},
		{Name: "priority", Kind: Text},
		{Name: "status", Kind: Text},
		{Name: "opened_at", Kind: Text},
		{Name: "closed_at", Kind: Text},
		{Name: "assigned_to", Kind: Text},
	},
}

// Users is addressable through ByTable but is never part of the batch set;
// account rows only enter through the record store.
var Users = Descriptor{
	Table:     "users",
	KeyColumn: "username",
	Columns: []Column{
		{Name: "username", Kind: Text},
		{Name: "password_hash", Kind: Text},
		{Name: "role", Kind: Text},
	},
}

// Batch returns the CSV-backed descriptors in their fixed load order.
func Batch() []Descriptor {
	return []Descriptor{Incidents, Datasets, Tickets}
}

func ByTable(table string) (Descriptor, bool) {
	for _, desc := range append(Batch(), Users) {
		if desc.Table == table {
			return desc, true
		}
	}
	return Descriptor{}, false
}

// Unkeyed builds a descriptor with no natural key. Loads through it append
// blindly without dedup; callers opt into that degraded mode explicitly.
func Unkeyed(table string, sourceFile string) Descriptor {
	return Descriptor{
		Table:      table,
		SourceFile: sourceFile,
	}
}
