package packrepo

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackRepository implements PackRepository using GORM.
type GormPackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackRepository creates a new GORM pack repository.
func NewGormPackRepository(db *gorm.DB, tracker aggregateTracker) *GormPackRepository {
	return &GormPackRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pack to the database.
func (r *GormPackRepository) Add(ctx context.Context, aggregate *pack.Pack) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pack to the database. Boxes, items, and pair
// guards are replaced wholesale because mutations can remove child rows,
// which association upserts alone would leave behind.
func (r *GormPackRepository) Update(ctx context.Context, aggregate *pack.Pack) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	// Deleting boxes cascades to their items at the database level.
	if err := db.Where("pack_id = ?", dto.ID).Delete(&PairGuardDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("pack_id = ?", dto.ID).Delete(&BoxDTO{}).Error; err != nil {
		return err
	}

	result := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pack by ID with its full box/item/guard graph.
// The pack row is locked until the surrounding transaction ends, so
// concurrent mutations of the same pack serialize at load time and each
// writer validates against the previous writer's committed state.
func (r *GormPackRepository) Get(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Boxes", func(db *gorm.DB) *gorm.DB { return db.Order("pack_boxes.box_no") }).
		Preload("Boxes.Items").
		Preload("PairGuards").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pack", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the pack for an order, if one was ever started.
// Locks the pack row the same way Get does.
func (r *GormPackRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pack.Pack, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PackDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Boxes", func(db *gorm.DB) *gorm.DB { return db.Order("pack_boxes.box_no") }).
		Preload("Boxes.Items").
		Preload("PairGuards").
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
