package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"secdash/internal/errs"
	"secdash/internal/infrastructure/persistence/sqlite/model"
	"secdash/internal/ports"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *RecordRepository) CreateUser(ctx context.Context, user ports.User) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	row := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&row)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "insert user")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) GetUserByUsername(ctx context.Context, username string) (ports.User, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.User{}, err
	}

	var row model.User
	if err := db.Where("username = ?", username).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, ports.ErrUserNotFound
		}
		return ports.User{}, errs.Wrap(err, "query user")
	}
	return mapUser(row), nil
}

func (r *RecordRepository) ListUsers(ctx context.Context) ([]ports.User, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.User
	if err := db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query users")
	}

	items := make([]ports.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapUser(row))
	}
	return items, nil
}

func (r *RecordRepository) UpdateUserRole(ctx context.Context, username string, role string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Model(&model.User{}).
		Where("username = ?", username).
		Update("role", role)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "update user role")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) DeleteUser(ctx context.Context, username string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Where("username = ?", username).Delete(&model.User{})
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "delete user")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) IncidentExists(ctx context.Context, incidentID string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&model.Incident{}).
		Where("incident_id = ?", incidentID).
		Count(&count).Error; err != nil {
		return false, errs.Wrap(err, "count incidents")
	}
	return count > 0, nil
}

func (r *RecordRepository) CreateIncident(ctx context.Context, incident ports.Incident) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	row := model.Incident{
		IncidentID:  incident.IncidentID,
		Type:        incident.Type,
		Severity:    incident.Severity,
		Status:      incident.Status,
		ReportedAt:  incident.ReportedAt,
		ResolvedAt:  incident.ResolvedAt,
		AssignedTo:  incident.AssignedTo,
		Description: incident.Description,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "incident_id"}},
		DoNothing: true,
	}).Create(&row)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "insert incident")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) ListIncidents(ctx context.Context) ([]ports.Incident, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Incident
	if err := db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query incidents")
	}

	items := make([]ports.Incident, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapIncident(row))
	}
	return items, nil
}

func (r *RecordRepository) UpdateIncidentStatus(ctx context.Context, incidentID string, status string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Model(&model.Incident{}).
		Where("incident_id = ?", incidentID).
		Update("status", status)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "update incident status")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) DeleteIncident(ctx context.Context, incidentID string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Where("incident_id = ?", incidentID).Delete(&model.Incident{})
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "delete incident")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) DatasetExists(ctx context.Context, name string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&model.Dataset{}).
		Where("dataset_name = ?", name).
		Count(&count).Error; err != nil {
		return false, errs.Wrap(err, "count datasets")
	}
	return count > 0, nil
}

func (r *RecordRepository) CreateDataset(ctx context.Context, dataset ports.Dataset) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	row := model.Dataset{
		Name:         dataset.Name,
		Owner:        dataset.Owner,
		SourceSystem: dataset.SourceSystem,
		SizeMB:       dataset.SizeMB,
		RowCount:     dataset.RowCount,
		CreatedAt:    dataset.CreatedAt,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dataset_name"}},
		DoNothing: true,
	}).Create(&row)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "insert dataset")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) ListDatasets(ctx context.Context) ([]ports.Dataset, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Dataset
	if err := db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query datasets")
	}

	items := make([]ports.Dataset, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapDataset(row))
	}
	return items, nil
}

func (r *RecordRepository) UpdateDatasetOwner(ctx context.Context, name string, owner string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Model(&model.Dataset{}).
		Where("dataset_name = ?", name).
		Update("owner", owner)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "update dataset owner")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) DeleteDataset(ctx context.Context, name string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Where("dataset_name = ?", name).Delete(&model.Dataset{})
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "delete dataset")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) TicketExists(ctx context.Context, ticketID string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&model.Ticket{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, errs.Wrap(err, "count tickets")
	}
	return count > 0, nil
}

func (r *RecordRepository) CreateTicket(ctx context.Context, ticket ports.Ticket) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	row := model.Ticket{
		TicketID:   ticket.TicketID,
		Category:   ticket.Category,
		Priority:   ticket.Priority,
		Status:     ticket.Status,
		OpenedAt:   ticket.OpenedAt,
		ClosedAt:   ticket.ClosedAt,
		AssignedTo: ticket.AssignedTo,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticket_id"}},
		DoNothing: true,
	}).Create(&row)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "insert ticket")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) ListTickets(ctx context.Context) ([]ports.Ticket, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Ticket
	if err := db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query tickets")
	}

	items := make([]ports.Ticket, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapTicket(row))
	}
	return items, nil
}

func (r *RecordRepository) UpdateTicketStatus(ctx context.Context, ticketID string, status string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Model(&model.Ticket{}).
		Where("ticket_id = ?", ticketID).
		Update("status", status)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "update ticket status")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecordRepository) DeleteTicket(ctx context.Context, ticketID string) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	result := db.Where("ticket_id = ?", ticketID).Delete(&model.Ticket{})
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "delete ticket")
	}
	return result.RowsAffected > 0, nil
}

func mapUser(row model.User) ports.User {
	return ports.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
	}
}

func mapIncident(row model.Incident) ports.Incident {
	return ports.Incident{
		ID:          row.ID,
		IncidentID:  row.IncidentID,
		Type:        row.Type,
		Severity:    row.Severity,
		Status:      row.Status,
		ReportedAt:  row.ReportedAt,
		ResolvedAt:  row.ResolvedAt,
		AssignedTo:  row.AssignedTo,
		Description: row.Description,
	}
}

func mapDataset(row model.Dataset) ports.Dataset {
	return ports.Dataset{
		ID:           row.ID,
		Name:         row.Name,
		Owner:        row.Owner,
		SourceSystem: row.SourceSystem,
		SizeMB:       row.SizeMB,
		RowCount:     row.RowCount,
		CreatedAt:    row.CreatedAt,
	}
}

func mapTicket(row model.Ticket) ports.Ticket {
	return ports.Ticket{
		ID:         row.ID,
		TicketID:   row.TicketID,
		Category:   row.Category,
		Priority:   row.Priority,
		Status:     row.Status,
		OpenedAt:   row.OpenedAt,
		ClosedAt:   row.ClosedAt,
		AssignedTo: row.AssignedTo,
	}
}
