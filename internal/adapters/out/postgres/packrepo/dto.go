// Package packrepo provides data transfer objects and mapping functions for
// pack persistence. The whole aggregate graph (pack, boxes, items, pair
// guards) is written and read as one unit so a loaded pack is always
// internally consistent.
package packrepo

import (
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"

	"github.com/google/uuid"
)

// PackDTO represents the database structure for persisting pack aggregates.
type PackDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Status      int            `gorm:"type:int;not null"`
	PackedBy    string         `gorm:"type:varchar(255)"`
	CreatedAt   time.Time      `gorm:"not null"`
	CompletedAt *time.Time     `gorm:""`
	Boxes       []BoxDTO       `gorm:"foreignKey:PackID;constraint:OnDelete:CASCADE"`
	PairGuards  []PairGuardDTO `gorm:"foreignKey:PackID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "packs".
func (PackDTO) TableName() string {
	return "packs"
}

// BoxDTO represents one box row. Dimensions are stored in thousandths of an
// inch, weights as the entered value plus its rounded-up effective pounds.
type BoxDTO struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey"`
	PackID            uuid.UUID    `gorm:"type:uuid;not null;index"`
	BoxNo             int          `gorm:"type:int;not null"`
	CartonTypeID      *uuid.UUID   `gorm:"type:uuid;index"`
	LengthThousandths int64        `gorm:"type:bigint;not null"`
	WidthThousandths  int64        `gorm:"type:bigint;not null"`
	HeightThousandths int64        `gorm:"type:bigint;not null"`
	MaxWeightLb       int          `gorm:"type:int;not null"`
	WeightEnteredLb   *float64     `gorm:"type:numeric"`
	WeightEffectiveLb *int         `gorm:"type:int"`
	Items             []BoxItemDTO `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "pack_boxes".
func (BoxDTO) TableName() string {
	return "pack_boxes"
}

// BoxItemDTO represents one order line's quantity inside a box.
type BoxItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoxID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderLineID uuid.UUID `gorm:"type:uuid;not null;index"`
	Qty         int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "pack_box_items".
func (BoxItemDTO) TableName() string {
	return "pack_box_items"
}

// PairGuardDTO represents one recorded pair co-occurrence. The line pair is
// stored in normalized order so a pair maps to exactly one row.
type PairGuardDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LineLowID  uuid.UUID `gorm:"type:uuid;not null"`
	LineHighID uuid.UUID `gorm:"type:uuid;not null"`
	BoxID      uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName overrides GORM's default naming to use "pair_guards".
func (PairGuardDTO) TableName() string {
	return "pair_guards"
}

// fromDomain converts a pack aggregate to its database representation,
// including all boxes, items, and pair guards.
func fromDomain(aggregate *pack.Pack) PackDTO {
	packID := aggregate.ID().Bytes()

	boxes := make([]BoxDTO, 0, len(aggregate.Boxes()))
	for _, box := range aggregate.Boxes() {
		boxes = append(boxes, boxFromDomain(packID, box))
	}

	guards := make([]PairGuardDTO, 0, len(aggregate.PairGuards()))
	for _, g := range aggregate.PairGuards() {
		guards = append(guards, PairGuardDTO{
			ID:         g.ID().Bytes(),
			PackID:     packID,
			LineLowID:  g.LineLowID().Bytes(),
			LineHighID: g.LineHighID().Bytes(),
			BoxID:      g.BoxID().Bytes(),
		})
	}

	return PackDTO{
		ID:          packID,
		OrderID:     aggregate.OrderID().Bytes(),
		Status:      int(aggregate.Status()),
		PackedBy:    aggregate.PackedBy(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Boxes:       boxes,
		PairGuards:  guards,
	}
}

func boxFromDomain(packID uuid.UUID, box *pack.Box) BoxDTO {
	boxID := box.ID().Bytes()

	var cartonID *uuid.UUID
	if box.CartonID() != nil {
		raw := box.CartonID().Bytes()
		cartonID = &raw
	}

	var enteredLb *float64
	var effectiveLb *int
	if box.Weight() != nil {
		entered := box.Weight().Entered()
		effective := box.Weight().Effective()
		enteredLb = &entered
		effectiveLb = &effective
	}

	items := make([]BoxItemDTO, 0, len(box.Items()))
	for _, item := range box.Items() {
		items = append(items, BoxItemDTO{
			ID:          item.ID().Bytes(),
			BoxID:       boxID,
			OrderLineID: item.OrderLineID().Bytes(),
			Qty:         item.Qty(),
		})
	}

	return BoxDTO{
		ID:                boxID,
		PackID:            packID,
		BoxNo:             box.BoxNo(),
		CartonTypeID:      cartonID,
		LengthThousandths: box.Length().Thousandths(),
		WidthThousandths:  box.Width().Thousandths(),
		HeightThousandths: box.Height().Thousandths(),
		MaxWeightLb:       box.MaxWeightLb(),
		WeightEnteredLb:   enteredLb,
		WeightEffectiveLb: effectiveLb,
		Items:             items,
	}
}

// toDomain converts a database DTO to a pack aggregate.
// Reconstructs the complete graph using RestorePack.
func toDomain(dto PackDTO) (*pack.Pack, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	boxes := make([]*pack.Box, 0, len(dto.Boxes))
	for _, boxDto := range dto.Boxes {
		box, boxErr := boxToDomain(boxDto)
		if boxErr != nil {
			return nil, boxErr
		}
		boxes = append(boxes, box)
	}

	guards := make([]*pack.PairGuard, 0, len(dto.PairGuards))
	for _, guardDto := range dto.PairGuards {
		g, guardErr := pairGuardToDomain(guardDto)
		if guardErr != nil {
			return nil, guardErr
		}
		guards = append(guards, g)
	}

	return pack.RestorePack(
		id, orderID,
		pack.Status(dto.Status),
		dto.PackedBy,
		dto.CreatedAt,
		dto.CompletedAt,
		boxes,
		guards,
	)
}

func boxToDomain(dto BoxDTO) (*pack.Box, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var cartonID *kernel.UUID
	if dto.CartonTypeID != nil {
		ctID, ctErr := kernel.UUIDFromBytes((*dto.CartonTypeID)[:])
		if ctErr != nil {
			return nil, ctErr
		}
		cartonID = &ctID
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

	var weight *kernel.Weight
	if dto.WeightEnteredLb != nil && dto.WeightEffectiveLb != nil {
		w, wErr := kernel.RestoreWeight(*dto.WeightEnteredLb, *dto.WeightEffectiveLb)
		if wErr != nil {
			return nil, wErr
		}
		weight = &w
	}

	items := make([]*pack.BoxItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return pack.RestoreBox(
		id,
		dto.BoxNo,
		cartonID,
		length, width, height,
		dto.MaxWeightLb,
		weight,
		items,
	)
}

func itemToDomain(dto BoxItemDTO) (*pack.BoxItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lineID, err := kernel.UUIDFromBytes(dto.OrderLineID[:])
	if err != nil {
		return nil, err
	}

	return pack.NewBoxItem(id, lineID, dto.Qty)
}

func pairGuardToDomain(dto PairGuardDTO) (*pack.PairGuard, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lineLowID, err := kernel.UUIDFromBytes(dto.LineLowID[:])
	if err != nil {
		return nil, err
	}

	lineHighID, err := kernel.UUIDFromBytes(dto.LineHighID[:])
	if err != nil {
		return nil, err
	}

	boxID, err := kernel.UUIDFromBytes(dto.BoxID[:])
	if err != nil {
		return nil, err
	}

	return pack.NewPairGuard(id, lineLowID, lineHighID, boxID)
}
