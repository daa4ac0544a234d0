package records

import (
	"context"
	"fmt"
	"strings"

	"secdash/internal/ports"
)

func (s *Service) DatasetExists(ctx context.Context, name string) (bool, error) {
	if err := s.guard(ctx); err != nil {
		return false, err
	}
	return s.repo.DatasetExists(ctx, strings.TrimSpace(name))
}

func (s *Service) CreateDataset(ctx context.Context, input CreateDatasetInput) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Result{}, errDatasetRequired
	}

	created, err := s.repo.CreateDataset(ctx, ports.Dataset{
		Name:         name,
		Owner:        input.Owner,
		SourceSystem: input.SourceSystem,
		SizeMB:       input.SizeMB,
		RowCount:     input.RowCount,
		CreatedAt:    input.CreatedAt,
	})
	if err != nil {
		return Result{}, err
	}
	if !created {
		return Result{Message: fmt.Sprintf("Dataset name '%s' already exists.", name)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Dataset '%s' created.", name)}, nil
}

func (s *Service) ListDatasets(ctx context.Context) ([]ports.Dataset, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListDatasets(ctx)
}

func (s *Service) UpdateDatasetOwner(ctx context.Context, name string, owner string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, errDatasetRequired
	}

	matched, err := s.repo.UpdateDatasetOwner(ctx, name, owner)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No dataset found with name '%s'.", name)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Dataset '%s' updated.", name)}, nil
}

func (s *Service) DeleteDataset(ctx context.Context, name string) (Result, error) {
	if err := s.guard(ctx); err != nil {
		return Result{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, errDatasetRequired
	}

	matched, err := s.repo.DeleteDataset(ctx, name)
	if err != nil {
		return Result{}, err
	}
	if !matched {
		return Result{Message: fmt.Sprintf("No dataset found with name '%s'.", name)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("Dataset '%s' deleted.", name)}, nil
}
