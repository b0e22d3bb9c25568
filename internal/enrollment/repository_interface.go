package enrollment

import "context"

type Repository interface {
	Insert(ctx context.Context, req EnrollRequest) (*Enrollment, error)
	Delete(ctx context.Context, idClase int, ciAlumno int64) (int64, error)
}
