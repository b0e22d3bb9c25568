package student

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"clubdeportivo/internal/api"
	"clubdeportivo/internal/auth"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Student), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, s Student) (*Student, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Student), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, ci int64, req UpdateStudentRequest) (int64, error) {
	args := m.Called(ctx, ci, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, ci int64) (int64, error) {
	args := m.Called(ctx, ci)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Register(ctx context.Context, s Student) (*Student, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Student), args.Error(1)
}

func (m *MockRepository) CredentialByEmail(ctx context.Context, correo string) (*Credential, error) {
	args := m.Called(ctx, correo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Credential), args.Error(1)
}

func (m *MockRepository) DeleteCredential(ctx context.Context, ci int64) (int64, error) {
	args := m.Called(ctx, ci)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Create_HashesPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s Student) bool {
		return s.CI == 41234567 && s.Contrasena != "secreta" &&
			auth.CheckPassword(s.Contrasena, "secreta")
	})).Return(&Student{CI: 41234567}, nil)

	created, err := service.Create(context.Background(), CreateStudentRequest{
		CI:              41234567,
		Nombre:          "Juan",
		Apellido:        "Pérez",
		FechaNacimiento: "1999-04-12",
		Correo:          "juan@club.uy",
		Contrasena:      "secreta",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(41234567), created.CI)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(nil, &pq.Error{Code: "23505"})

	_, err := service.Create(context.Background(), CreateStudentRequest{
		CI:         41234567,
		Contrasena: "secreta",
	})

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "El alumno ya existe", apiErr.Message)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_NoFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	empty := ""
	err := service.Update(context.Background(), 41234567, UpdateStudentRequest{Telefono: &empty})

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Update_RehashesPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("Update", mock.Anything, int64(41234567), mock.MatchedBy(func(req UpdateStudentRequest) bool {
		return req.Contrasena != nil && *req.Contrasena != "nueva" &&
			auth.CheckPassword(*req.Contrasena, "nueva")
	})).Return(int64(1), nil)

	contrasena := "nueva"
	err := service.Update(context.Background(), 41234567, UpdateStudentRequest{Contrasena: &contrasena})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Register_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("Register", mock.Anything, mock.Anything).
		Return(nil, &pq.Error{Code: "23505"})

	_, err := service.Register(context.Background(), CreateStudentRequest{
		CI:         41234567,
		Contrasena: "secreta",
	})

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	mockRepo.AssertExpectations(t)
}

func TestService_Login_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	hash, _ := auth.HashPassword("secreta")
	mockRepo.On("CredentialByEmail", mock.Anything, "juan@club.uy").Return(&Credential{
		CIAlumno:   41234567,
		Correo:     "juan@club.uy",
		Contrasena: hash,
	}, nil)

	err := service.Login(context.Background(), LoginRequest{
		Correo:     "juan@club.uy",
		Contrasena: "secreta",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	hash, _ := auth.HashPassword("secreta")
	mockRepo.On("CredentialByEmail", mock.Anything, "juan@club.uy").Return(&Credential{
		Contrasena: hash,
	}, nil)

	err := service.Login(context.Background(), LoginRequest{
		Correo:     "juan@club.uy",
		Contrasena: "otra",
	})

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	mockRepo.AssertExpectations(t)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("CredentialByEmail", mock.Anything, "nadie@club.uy").
		Return(nil, sql.ErrNoRows)

	err := service.Login(context.Background(), LoginRequest{
		Correo:     "nadie@club.uy",
		Contrasena: "lo-que-sea",
	})

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	mockRepo.AssertExpectations(t)
}

func TestService_DeleteCredential_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("DeleteCredential", mock.Anything, int64(99)).Return(int64(0), nil)

	err := service.DeleteCredential(context.Background(), 99)

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	mockRepo.AssertExpectations(t)
}
