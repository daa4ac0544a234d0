package records

import (
	"errors"

	"secdash/internal/ports"
)

var (
	errUsernameRequired   = errors.New("username is required")
	errIncidentIDRequired = errors.New("incident id is required")
	errDatasetRequired    = errors.New("dataset name is required")
	errTicketIDRequired   = errors.New("ticket id is required")

	// ErrUserNotFound mirrors the repository sentinel for callers that read
	// accounts directly.
	ErrUserNotFound = ports.ErrUserNotFound
)

// Result is the outcome of a store mutation. OK=false with a message is an
// expected business answer (key taken, nothing matched), not a failure.
type Result struct {
	OK      bool
	Message string
}

// Service exposes the per-entity record operations of the store.
type Service struct {
	repo ports.RecordRepository
}

func NewService(repo ports.RecordRepository) *Service {
	return &Service{repo: repo}
}

type CreateUserInput struct {
	Username     string
	PasswordHash string
	Role         string
}

type CreateIncidentInput struct {
	IncidentID  string
	Type        string
	Severity    string
	Status      string
	ReportedAt  string
	ResolvedAt  string
	AssignedTo  string
	Description string
}

type CreateDatasetInput struct {
	Name         string
	Owner        string
	SourceSystem string
	SizeMB       float64
	RowCount     int64
	CreatedAt    string
}

type CreateTicketInput struct {
	TicketID   string
	Category   string
	Priority   string
	Status     string
	OpenedAt   string
	ClosedAt   string
	AssignedTo string
}
