package timeslot

import "context"

type Repository interface {
	List(ctx context.Context) ([]TimeSlot, error)
	Create(ctx context.Context, horaInicio, horaFin int) (*TimeSlot, error)
	Delete(ctx context.Context, id int) (int64, error)
	Usage(ctx context.Context) ([]SlotUsage, error)
}
