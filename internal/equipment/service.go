package equipment

import (
	"context"

	"clubdeportivo/internal/api"
)

type Service interface {
	List(ctx context.Context) ([]Equipment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Equipment, error) {
	equipment, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(equipment) == 0 {
		return nil, api.NotFound("No hay equipamiento disponible")
	}
	return equipment, nil
}
