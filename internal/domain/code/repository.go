package code

import "context"

// CodeRepository defines data access for the attendance code catalog.
type CodeRepository interface {
	// Create inserts a new code; a duplicate token yields ErrDuplicateCode.
	Create(ctx context.Context, c AttendanceCode) (AttendanceCode, error)

	// GetByCode retrieves a code by its token regardless of active flag:
	// historical records reference codes by identity, not by status.
	GetByCode(ctx context.Context, token string) (AttendanceCode, error)

	// List retrieves the whole catalog ordered by token.
	List(ctx context.Context) ([]AttendanceCode, error)

	// ListActive retrieves active codes ordered by token.
	ListActive(ctx context.Context) ([]AttendanceCode, error)

	// Update rewrites the mutable fields of an existing code.
	Update(ctx context.Context, c AttendanceCode) error
}
