// Package store persists repayment plans (input data only, never computed
// rows) in durable key-value storage, keyed by a user-chosen name.
package store

import (
	"context"
	"errors"

	"github.com/finsim/loan-recast/internal/config"
)

// ErrNotFound is returned when no plan exists under the requested name.
var ErrNotFound = errors.New("plan not found")

// Store is a named-plan repository.
type Store interface {
	Save(ctx context.Context, name string, plan config.Plan) error
	Load(ctx context.Context, name string) (config.Plan, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}
