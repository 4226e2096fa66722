// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, then best-effort event publishing
// strictly after commit.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each mutating operation runs inside exactly one transaction;
// order, items and history are written or rolled back together.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UoW manages transactions for order operations.
	UoW interface {
		TxManager
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances, one per operation.
	UoWFactory interface {
		Create() UoW
	}
)
