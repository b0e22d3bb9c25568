package enrollment

import (
	"context"

	"clubdeportivo/internal/api"
	"clubdeportivo/internal/db"
)

type Service interface {
	Enroll(ctx context.Context, req EnrollRequest) (*Enrollment, error)
	Unenroll(ctx context.Context, idClase int, ciAlumno int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Enroll(ctx context.Context, req EnrollRequest) (*Enrollment, error) {
	enrollment, err := s.repo.Insert(ctx, req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, api.Conflict("El alumno ya está inscripto en la clase")
		}
		return nil, err
	}

	return enrollment, nil
}

func (s *service) Unenroll(ctx context.Context, idClase int, ciAlumno int64) error {
	affected, err := s.repo.Delete(ctx, idClase, ciAlumno)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Inscripción no encontrada")
	}
	return nil
}
