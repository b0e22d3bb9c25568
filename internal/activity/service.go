package activity

import (
	"context"

	"clubdeportivo/internal/api"
)

type Service interface {
	List(ctx context.Context) ([]Activity, error)
	Create(ctx context.Context, req CreateActivityRequest) (*Activity, error)
	Update(ctx context.Context, id int, req UpdateActivityRequest) error
	Delete(ctx context.Context, id int) error
	Popular(ctx context.Context) ([]PopularActivity, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, api.NotFound("No hay actividades disponibles")
	}
	return activities, nil
}

func (s *service) Create(ctx context.Context, req CreateActivityRequest) (*Activity, error) {
	return s.repo.Create(ctx, req.Nombre, req.Descripcion, *req.Costo)
}

func (s *service) Update(ctx context.Context, id int, req UpdateActivityRequest) error {
	if req.Empty() {
		return api.BadRequest("Debe proporcionar al menos un campo para actualizar")
	}

	affected, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Actividad no encontrada")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Actividad no encontrada")
	}
	return nil
}

func (s *service) Popular(ctx context.Context) ([]PopularActivity, error) {
	popular, err := s.repo.Popular(ctx)
	if err != nil {
		return nil, err
	}
	if len(popular) == 0 {
		return nil, api.NotFound("No hay actividades disponibles")
	}
	return popular, nil
}
