package model

type Dataset struct {
	ID           uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string  `gorm:"column:dataset_name;type:text;not null;uniqueIndex"`
	Owner        string  `gorm:"column:owner;type:text"`
	SourceSystem string  `gorm:"column:source_system;type:text"`
	SizeMB       float64 `gorm:"column:size_mb;type:real"`
	RowCount     int64   `gorm:"column:row_count;type:integer"`
	CreatedAt    string  `gorm:"column:created_at;type:text"`
}

func (Dataset) TableName() string {
	return "datasets_metadata"
}
