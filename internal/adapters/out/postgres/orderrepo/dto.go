// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are immutable snapshots imported from the order
// entry system, so the repository only ever inserts and reads them.
package orderrepo

import (
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order snapshots.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNo      string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	CustomerName string         `gorm:"type:varchar(255)"`
	ShipTo       string         `gorm:"type:text"`
	DueDate      *time.Time     `gorm:""`
	LeadTimePlan string         `gorm:"type:varchar(255)"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one ordered product line. Dimensions are stored in
// thousandths of an inch.
type OrderLineDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductCode       string    `gorm:"type:varchar(255);not null"`
	Finish            string    `gorm:"type:varchar(255)"`
	LengthThousandths int64     `gorm:"type:bigint;not null"`
	HeightThousandths int64     `gorm:"type:bigint;not null"`
	QtyOrdered        int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order snapshot to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:                line.ID().Bytes(),
			OrderID:           orderID,
			ProductCode:       line.ProductCode(),
			Finish:            line.Finish(),
			LengthThousandths: line.Length().Thousandths(),
			HeightThousandths: line.Height().Thousandths(),
			QtyOrdered:        line.QtyOrdered(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		OrderNo:      aggregate.OrderNo(),
		CustomerName: aggregate.CustomerName(),
		ShipTo:       aggregate.ShipTo(),
		DueDate:      aggregate.DueDate(),
		LeadTimePlan: aggregate.LeadTimePlan(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order snapshot with its lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.NewOrder(
		id,
		dto.OrderNo,
		dto.CustomerName,
		dto.ShipTo,
		dto.DueDate,
		dto.LeadTimePlan,
		lines,
	)
}

func lineToDomain(dto OrderLineDTO) (*order.OrderLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	length, err := kernel.DimensionFromThousandths(dto.LengthThousandths)
	if err != nil {
		return nil, err
	}
	height, err := kernel.DimensionFromThousandths(dto.HeightThousandths)
	if err != nil {
		return nil, err
	}

	return order.NewOrderLine(id, dto.ProductCode, length, height, dto.Finish, dto.QtyOrdered)
}
