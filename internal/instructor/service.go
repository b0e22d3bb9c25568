package instructor

import (
	"context"

	"clubdeportivo/internal/api"
	"clubdeportivo/internal/db"
)

type Service interface {
	List(ctx context.Context) ([]Instructor, error)
	Create(ctx context.Context, req CreateInstructorRequest) (*Instructor, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Instructor, error) {
	instructors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(instructors) == 0 {
		return nil, api.NotFound("No hay instructores registrados")
	}
	return instructors, nil
}

func (s *service) Create(ctx context.Context, req CreateInstructorRequest) (*Instructor, error) {
	created, err := s.repo.Create(ctx, Instructor{
		CI:       req.CI,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
	})
	if db.IsUniqueViolation(err) {
		return nil, api.Conflict("El instructor ya existe")
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}
