package records

import (
	"context"
	"fmt"
	"strings"

	"secdash/internal/ports"
)

func (s *Service) IncidentExists(ctx context.Context, incidentID string) (bool, error) {
	if err := s.guard(ctx); err != nil {
		return false, err
	}
	return s.repo.IncidentExists(ctx, strings.TrimSpace(incidentID))
}

func (s *Service) CreateIncident(ctx context.Context, input CreateIncidentInput) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	incidentID := strings.TrimSpace(input.IncidentID)
	if incidentID == "" {
		return Result{}, errIncidentIDRequired
	}

	created, err := s.repo.CreateIncident(ctx, ports.Incident{
		IncidentID:  incidentID,
		Type:        input.Type,
		Severity:    input.Severity,
		Status:      input.Status,
		ReportedAt:  input.ReportedAt,
		ResolvedAt:  input.ResolvedAt,
		AssignedTo:  input.AssignedTo,
		Description: input.Description,
	})
	if err != nil {
		return Result{}, err
	}
	if !created {
		return Result{Message: fmt.Sprintf("Incident ID '%s' already exists.", incidentID)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Incident '%s' created.", incidentID)}, nil
}

func (s *Service) ListIncidents(ctx context.Context) ([]ports.Incident, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListIncidents(ctx)
}

func (s *Service) UpdateIncidentStatus(ctx context.Context, incidentID string, status string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	incidentID = strings.TrimSpace(incidentID)
	if incidentID == "" {
		return Result{}, errIncidentIDRequired
	}

	matched, err := s.repo.UpdateIncidentStatus(ctx, incidentID, status)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No incident found with ID '%s'.", incidentID)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Incident '%s' updated.", incidentID)}, nil
}

func (s *Service) DeleteIncident(ctx context.Context, incidentID string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	incidentID = strings.TrimSpace(incidentID)
	if incidentID == "" {
		return Result{}, errIncidentIDRequired
	}

	matched, err := s.repo.DeleteIncident(ctx, incidentID)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No incident found with ID '%s'.", incidentID)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Incident '%s' deleted.", incidentID)}, nil
}
