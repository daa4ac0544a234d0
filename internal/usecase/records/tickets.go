package records

import (
	"context"
	"fmt"
	"strings"

	"secdash/internal/ports"
)

func (s *Service) TicketExists(ctx context.Context, ticketID string) (bool, error) {
	if err := s.guard(ctx); err != nil {
		return false, err
	}
	return s.repo.TicketExists(ctx, strings.TrimSpace(ticketID))
}

func (s *Service) CreateTicket(ctx context.Context, input CreateTicketInput) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	ticketID := strings.TrimSpace(input.TicketID)
	if ticketID == "" {
		return Result{}, errTicketIDRequired
	}

	created, err := s.repo.CreateTicket(ctx, ports.Ticket{
		TicketID:   ticketID,
		Category:   input.Category,
		Priority:   input.Priority,
		Status:     input.Status,
		OpenedAt:   input.OpenedAt,
		ClosedAt:   input.ClosedAt,
		AssignedTo: input.AssignedTo,
	})
	if err != nil {
		return Result{}, err
	}
	if !created {
		return Result{Message: fmt.Sprintf("Ticket ID '%s' already exists.", ticketID)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Ticket '%s' created.", ticketID)}, nil
}

func (s *Service) ListTickets(ctx context.Context) ([]ports.Ticket, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListTickets(ctx)
}

func (s *Service) UpdateTicketStatus(ctx context.Context, ticketID string, status string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return Result{}, errTicketIDRequired
	}

	matched, err := s.repo.UpdateTicketStatus(ctx, ticketID, status)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No ticket found with ID '%s'.", ticketID)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Ticket '%s' updated.", ticketID)}, nil
}

func (s *Service) DeleteTicket(ctx context.Context, ticketID string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return Result{}, errTicketIDRequired
	}

	matched, err := s.repo.DeleteTicket(ctx, ticketID)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No ticket found with ID '%s'.", ticketID)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Ticket '%s' deleted.", ticketID)}, nil
}
