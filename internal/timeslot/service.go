package timeslot

import (
	"context"

	"clubdeportivo/internal/api"
)

type Service interface {
	List(ctx context.Context) ([]TimeSlotResponse, error)
	Create(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlotResponse, error)
	Delete(ctx context.Context, id int) error
	Usage(ctx context.Context) ([]SlotUsageResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]TimeSlotResponse, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, api.NotFound("No hay turnos disponibles")
	}

	responses := make([]TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = slot.Response()
	}
	return responses, nil
}

func (s *service) Create(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlotResponse, error) {
	horaInicio, err := ParseClock(req.HoraInicio)
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}
	horaFin, err := ParseClock(req.HoraFin)
	if err != nil {
		return nil, api.BadRequest(err.Error())
	}

	slot, err := s.repo.Create(ctx, horaInicio, horaFin)
	if err != nil {
		return nil, err
	}

	resp := slot.Response()
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return api.NotFound("Turno no encontrado")
	}
	return nil
}

func (s *service) Usage(ctx context.Context) ([]SlotUsageResponse, error) {
	usage, err := s.repo.Usage(ctx)
	if err != nil {
		return nil, err
	}
	if len(usage) == 0 {
		return nil, api.NotFound("No hay turnos disponibles")
	}

	responses := make([]SlotUsageResponse, len(usage))
	for i, u := range usage {
		responses[i] = u.Response()
	}
	return responses, nil
}
