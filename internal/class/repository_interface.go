package class

import "context"

type Repository interface {
	ListDetailed(ctx context.Context) ([]ClassDetail, error)
	FindActivityIDByName(ctx context.Context, name string) (int, error)
	Create(ctx context.Context, ciInstructor int64, idActividad, idTurno int, dictada bool) (*Class, error)
	ListByStudent(ctx context.Context, ci int64) ([]ClassDetail, error)
}
