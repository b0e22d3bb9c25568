package class

import (
	"context"
	"database/sql"
	"errors"

	"clubdeportivo/internal/api"
)

type Service interface {
	List(ctx context.Context) ([]ClassDetailResponse, error)
	Create(ctx context.Context, req CreateClassRequest) (*Class, error)
	ListByStudent(ctx context.Context, ci int64) ([]ClassDetailResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]ClassDetailResponse, error) {
	classes, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, api.NotFound("No hay clases disponibles")
	}

	responses := make([]ClassDetailResponse, len(classes))
	for i, class := range classes {
		responses[i] = class.Response()
	}
	return responses, nil
}

func (s *service) Create(ctx context.Context, req CreateClassRequest) (*Class, error) {
	idActividad, err := s.repo.FindActivityIDByName(ctx, req.NombreActividad)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, api.NotFound("Actividad no encontrada")
		}
		return nil, err
	}

	return s.repo.Create(ctx, req.CIInstructor, idActividad, req.IDTurno, req.Dictada)
}

func (s *service) ListByStudent(ctx context.Context, ci int64) ([]ClassDetailResponse, error) {
	classes, err := s.repo.ListByStudent(ctx, ci)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, api.NotFound("El alumno no tiene clases inscriptas")
	}

	responses := make([]ClassDetailResponse, len(classes))
	for i, class := range classes {
		responses[i] = class.Response()
	}
	return responses, nil
}
