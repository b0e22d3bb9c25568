package instructor

import "context"

type Repository interface {
	List(ctx context.Context) ([]Instructor, error)
	Create(ctx context.Context, i Instructor) (*Instructor, error)
}
