package activity

import "context"

type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	Create(ctx context.Context, nombre, descripcion string, costo float64) (*Activity, error)
	Update(ctx context.Context, id int, req UpdateActivityRequest) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	Popular(ctx context.Context) ([]PopularActivity, error)
}
