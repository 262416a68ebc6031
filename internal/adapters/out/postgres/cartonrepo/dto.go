// Package cartonrepo provides data transfer objects and mapping functions for
// the carton type catalog. The catalog is reference data seeded outside the
// packing core, so the repository exposes reads plus an Add used by seeding
// and tests.
package cartonrepo

import (
	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartonDTO represents the database structure for persisting carton types.
// Dimensions are stored in thousandths of an inch.
type CartonDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	LengthThousandths int64     `gorm:"type:bigint;not null"`
	WidthThousandths  int64     `gorm:"type:bigint;not null"`
	HeightThousandths int64     `gorm:"type:bigint;not null"`
	MaxWeightLb       int       `gorm:"type:int;not null"`
	Active            bool      `gorm:"not null;default:true"`
}

// TableName overrides GORM's default naming to use "carton_types".
func (CartonDTO) TableName() string {
	return "carton_types"
}

// fromDomain converts a carton type to its database representation.
func fromDomain(aggregate *carton.Carton) CartonDTO {
	return CartonDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		LengthThousandths: aggregate.Length().Thousandths(),
		WidthThousandths:  aggregate.Width().Thousandths(),
		HeightThousandths: aggregate.Height().Thousandths(),
		MaxWeightLb:       aggregate.MaxWeightLb(),
		Active:            aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a carton type.
func toDomain(dto CartonDTO) (*carton.Carton, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	length, err := kernel.DimensionFromThousandths(dto.LengthThousandths)
	if err != nil {
		return nil, err
	}
	width, err := kernel.DimensionFromThousandths(dto.WidthThousandths)
	if err != nil {
		return nil, err
	}
	height, err := kernel.DimensionFromThousandths(dto.HeightThousandths)
	if err != nil {
		return nil, err
	}

	return carton.NewCarton(id, dto.Name, length, width, height, dto.MaxWeightLb, dto.Active)
}
