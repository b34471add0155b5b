package interfaces

import (
	"context"

	"homeservices_crm/internal/domain/entities"
)

// ICommissionRepository persists commissions at most once per ID.
// CreateIfAbsent reports created=false when the key already exists.
type ICommissionRepository interface {
	CreateIfAbsent(ctx context.Context, c entities.Commission) (created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Commission, error)
	List(ctx context.Context, month string) ([]entities.Commission, error)
}
