package ports

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	Role         string
}

type Incident struct {
	ID          uint64
	IncidentID  string
	Type        string
	Severity    string
	Status      string
	ReportedAt  string
	ResolvedAt  string
	AssignedTo  string
	Description string
}

type Dataset struct {
	ID           uint64
	Name         string
	Owner        string
	SourceSystem string
	SizeMB       float64
	RowCount     int64
	CreatedAt    string
}

type Ticket struct {
	ID         uint64
	TicketID   string
	Category   string
	Priority   string
	Status     string
	OpenedAt   string
	ClosedAt   string
	AssignedTo string
}

// RecordRepository is the per-entity store behind the record usecase.
// Create reports false when the natural key is already taken; update and
// delete report false when no row matched. Errors are reserved for storage
// faults.
type RecordRepository interface {
	CreateUser(ctx context.Context, user User) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUserRole(ctx context.Context, username string, role string) (bool, error)
	DeleteUser(ctx context.Context, username string) (bool, error)

	IncidentExists(ctx context.Context, incidentID string) (bool, error)
	CreateIncident(ctx context.Context, incident Incident) (bool, error)
	ListIncidents(ctx context.Context) ([]Incident, error)
	UpdateIncidentStatus(ctx context.Context, incidentID string, status string) (bool, error)
	DeleteIncident(ctx context.Context, incidentID string) (bool, error)

	DatasetExists(ctx context.Context, name string) (bool, error)
	CreateDataset(ctx context.Context, dataset Dataset) (bool, error)
	ListDatasets(ctx context.Context) ([]Dataset, error)
	UpdateDatasetOwner(ctx context.Context, name string, owner string) (bool, error)
	DeleteDataset(ctx context.Context, name string) (bool, error)

	TicketExists(ctx context.Context, ticketID string) (bool, error)
	CreateTicket(ctx context.Context, ticket Ticket) (bool, error)
	ListTickets(ctx context.Context) ([]Ticket, error)
	UpdateTicketStatus(ctx context.Context, ticketID string, status string) (bool, error)
	DeleteTicket(ctx context.Context, ticketID string) (bool, error)
}
