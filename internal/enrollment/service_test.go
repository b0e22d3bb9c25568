package enrollment

import (
	"context"
	"net/http"
	"testing"

	"clubdeportivo/internal/api"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, req EnrollRequest) (*Enrollment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Enrollment), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, idClase int, ciAlumno int64) (int64, error) {
	args := m.Called(ctx, idClase, ciAlumno)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Enroll_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	req := EnrollRequest{IDClase: 1, CIAlumno: 51234567}
	mockRepo.On("Insert", mock.Anything, req).Return(nil, &pq.Error{Code: "23505"})

	_, err := service.Enroll(context.Background(), req)

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "El alumno ya está inscripto en la clase", apiErr.Message)
	mockRepo.AssertExpectations(t)
}

func TestService_Enroll_OK(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	req := EnrollRequest{IDClase: 1, CIAlumno: 51234567}
	mockRepo.On("Insert", mock.Anything, req).Return(&Enrollment{IDClase: 1, CIAlumno: 51234567}, nil)

	enrollment, err := service.Enroll(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(51234567), enrollment.CIAlumno)
	mockRepo.AssertExpectations(t)
}

func TestService_Unenroll_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("Delete", mock.Anything, 1, int64(51234567)).Return(int64(0), nil)

	err := service.Unenroll(context.Background(), 1, 51234567)

	var apiErr *api.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Inscripción no encontrada", apiErr.Message)
	mockRepo.AssertExpectations(t)
}

func TestService_Unenroll_OK(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("Delete", mock.Anything, 1, int64(51234567)).Return(int64(1), nil)

	assert.NoError(t, service.Unenroll(context.Background(), 1, 51234567))
	mockRepo.AssertExpectations(t)
}
