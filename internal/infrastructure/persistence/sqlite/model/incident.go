package model

type Incident struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	IncidentID  string `gorm:"column:incident_id;type:text;not null;uniqueIndex"`
	Type        string `gorm:"column:incident_type;type:text"`
	Severity    string `gorm:"column:severity;type:text"`
	Status      string `gorm:"column:status;type:text"`
	ReportedAt  string `gorm:"column:reported_at;type:text"`
	ResolvedAt  string `gorm:"column:resolved_at;type:text"`
	AssignedTo  string `gorm:"column:assigned_to;type:text"`
	Description string `gorm:"column:description;type:text"`
}

func (Incident) TableName() string {
	return "cyber_incidents"
}
