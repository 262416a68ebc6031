// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"packing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackRepoFactory provides access to the pack repository within a transaction.
	PackRepoFactory interface {
		PackRepository() ports.PackRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartonRepoFactory provides access to the carton catalog within a transaction.
	CartonRepoFactory interface {
		CartonRepository() ports.CartonRepository
	}

	// PackUoW manages transactions for pack-only operations.
	// Used when commands mutate the pack aggregate without consulting the
	// order snapshot (remove box, set weight, remove item, reopen).
	PackUoW interface {
		TxManager
		PackRepoFactory
	}

	// PackUoWFactory creates new pack unit of work instances.
	PackUoWFactory interface {
		Create() PackUoW
	}

	// PackOrderUoW manages transactions for operations that validate the pack
	// against its order snapshot (assign, set qty, duplicate, complete).
	PackOrderUoW interface {
		TxManager
		PackRepoFactory
		OrderRepoFactory
	}

	// PackOrderUoWFactory creates new pack+order unit of work instances.
	PackOrderUoWFactory interface {
		Create() PackOrderUoW
	}

	// UoW manages transactions across the pack, order, and carton repositories.
	// Used by commands that also read the carton catalog (add box).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   packRepo := uow.PackRepository()
	//   cartonRepo := uow.CartonRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PackRepoFactory
		OrderRepoFactory
		CartonRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
