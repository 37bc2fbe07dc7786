package orderrequestrepo

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRequestRepository implements OrderRequestRepository using GORM.
type GormOrderRequestRepository struct {
	db *gorm.DB
}

// NewGormOrderRequestRepository creates a new GORM order request repository.
func NewGormOrderRequestRepository(db *gorm.DB) *GormOrderRequestRepository {
	return &GormOrderRequestRepository{db: db}
}

// Get retrieves an active order request with its active products.
func (r *GormOrderRequestRepository) Get(ctx context.Context, id kernel.ID) (*orderrequest.OrderRequest, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves the order request and locks its row with SELECT ... FOR UPDATE.
// The lock is only meaningful inside a transaction.
func (r *GormOrderRequestRepository) GetForUpdate(
	ctx context.Context,
	id kernel.ID,
) (*orderrequest.OrderRequest, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRequestRepository) get(db *gorm.DB, id kernel.ID) (*orderrequest.OrderRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderRequestDTO
	err := db.
		Preload("Products", "active = ?", activeFlag).
		First(&dto, "id = ? AND active = ?", id.Int64(), activeFlag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderRequest", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
