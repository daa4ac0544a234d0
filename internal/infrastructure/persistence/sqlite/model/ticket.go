package model

type Ticket struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	TicketID   string `gorm:"column:ticket_id;type:text;not null;uniqueIndex"`
	Category   string `gorm:"column:category;type:text"`
	Priority   string `gorm:"column:priority;type:text"`
	Status     string `gorm:"column:status;type:text"`
	OpenedAt   string `gorm:"column:opened_at;type:text"`
	ClosedAt   string `gorm:"column:closed_at;type:text"`
	AssignedTo string `gorm:"column:assigned_to;type:text"`
}

func (Ticket) TableName() string {
	return "it_tickets"
}
