package application

import (
	"context"
)

// Repository defines read access to the tracked applications. The sheet is
// the only store, so there are no write operations.
type Repository interface {
	List(ctx context.Context) ([]*Application, error)
}
