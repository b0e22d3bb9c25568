package student

import "context"

type Repository interface {
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, s Student) (*Student, error)
	Update(ctx context.Context, ci int64, req UpdateStudentRequest) (int64, error)
	Delete(ctx context.Context, ci int64) (int64, error)

	// Register inserts the student row and its credential in one
	// transaction.
	Register(ctx context.Context, s Student) (*Student, error)
	CredentialByEmail(ctx context.Context, correo string) (*Credential, error)
	DeleteCredential(ctx context.Context, ci int64) (int64, error)
}
