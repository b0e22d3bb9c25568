package equipment

import "context"

type Repository interface {
	List(ctx context.Context) ([]Equipment, error)
}
