package cartonrepo

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartonRepository implements CartonRepository using GORM.
type GormCartonRepository struct {
	db *gorm.DB
}

// NewGormCartonRepository creates a new GORM carton repository.
func NewGormCartonRepository(db *gorm.DB) *GormCartonRepository {
	return &GormCartonRepository{db: db}
}

// Add saves a carton type to the catalog. Used by seeding and tests.
func (r *GormCartonRepository) Add(ctx context.Context, aggregate *carton.Carton) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a carton type by ID, active or not. Boxes created from a
// since-retired carton still need their carton resolved.
func (r *GormCartonRepository) Get(ctx context.Context, id kernel.UUID) (*carton.Carton, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carton", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the carton types available for new boxes, sorted by name.
func (r *GormCartonRepository) GetAllActive(ctx context.Context) ([]*carton.Carton, error) {
	var dtos []CartonDTO
	if err := r.db.WithContext(ctx).Where("active").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	cartons := make([]*carton.Carton, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cartons = append(cartons, c)
	}

	return cartons, nil
}
