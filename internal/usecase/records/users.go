package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"secdash/internal/errs"
	"secdash/internal/ports"
)

func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return Result{}, errUsernameRequired
	}

	created, err := s.repo.CreateUser(ctx, ports.User{
		Username:     username,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
	})
	if err != nil {
		return Result{}, err
	}
	if !created {
		return Result{Message: fmt.Sprintf("Username '%s' already exists.", username)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("User '%s' created.", username)}, nil
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (ports.User, error) {
	if err := s.guard(ctx); err != nil {
		return ports.User{}, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return ports.User{}, errUsernameRequired
	}
	return s.repo.GetUserByUsername(ctx, username)
}

func (s *Service) ListUsers(ctx context.Context) ([]ports.User, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}

func (s *Service) UpdateUserRole(ctx context.Context, username string, role string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return Result{}, errUsernameRequired
	}

	matched, err := s.repo.UpdateUserRole(ctx, username, role)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No user found with username '%s'.", username)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("User '%s' updated.", username)}, nil
}

func (s *Service) DeleteUser(ctx context.Context, username string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return Result{}, errUsernameRequired
	}

	matched, err := s.repo.DeleteUser(ctx, username)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No user found with username '%s'.", username)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("User '%s' deleted.", username)}, nil
}

func (s *Service) guard(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return errors.New("record repository is required")
	}
	return nil
}
