package student

import (
	"context"
	"database/sql"
	"errors"

	"clubdeportivo/internal/api"
	"clubdeportivo/internal/auth"
	"clubdeportivo/internal/db"
)

type Service interface {
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, req CreateStudentRequest) (*Student, error)
	Update(ctx context.Context, ci int64, req UpdateStudentRequest) error
	Delete(ctx context.Context, ci int64) error
	Register(ctx context.Context, req CreateStudentRequest) (*Student, error)
	Login(ctx context.Context, req LoginRequest) error
	DeleteCredential(ctx context.Context, ci int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, api.NotFound("No hay alumnos registrados")
	}
	return students, nil
}

func (s *service) Create(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	hash, err := auth.HashPassword(req.Contrasena)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, Student{
		CI:              req.CI,
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		FechaNacimiento: req.FechaNacimiento,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
		Contrasena:      hash,
	})
	if db.IsUniqueViolation(err) {
		return nil, api.Conflict("El alumno ya existe")
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, ci int64, req UpdateStudentRequest) error {
	if req.Empty() {
		return api.BadRequest("Debe proporcionar al menos un campo para actualizar")
	}

	if present(req.Contrasena) {
		hash, err := auth.HashPassword(*req.Contrasena)
		if err != nil {
			return err
		}
		req.Contrasena = &hash
	}

	affected, err := s.repo.Update(ctx, ci, req)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Alumno no encontrado")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, ci int64) error {
	affected, err := s.repo.Delete(ctx, ci)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Alumno no encontrado")
	}
	return nil
}

func (s *service) Register(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	hash, err := auth.HashPassword(req.Contrasena)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Register(ctx, Student{
		CI:              req.CI,
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		FechaNacimiento: req.FechaNacimiento,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
		Contrasena:      hash,
	})
	if db.IsUniqueViolation(err) {
		return nil, api.Conflict("El alumno ya existe")
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies the credential by bcrypt comparison. Both unknown
// email and wrong password answer the same way.
func (s *service) Login(ctx context.Context, req LoginRequest) error {
	cred, err := s.repo.CredentialByEmail(ctx, req.Correo)
	if errors.Is(err, sql.ErrNoRows) {
		return api.Unauthorized("Correo o contraseña incorrectos")
	}
	if err != nil {
		return err
	}

	if !auth.CheckPassword(cred.Contrasena, req.Contrasena) {
		return api.Unauthorized("Correo o contraseña incorrectos")
	}

	return nil
}

func (s *service) DeleteCredential(ctx context.Context, ci int64) error {
	affected, err := s.repo.DeleteCredential(ctx, ci)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Credencial no encontrada")
	}
	return nil
}
