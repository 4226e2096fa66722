// Package order contains the order aggregate and its supporting value
// objects: line items, the status state machine, the pricing breakdown and
// the append-only status history.
//
// The aggregate enforces the lifecycle rules of an order: it is created
// once in PLACED status with an initial audit entry, every subsequent
// mutation is a status change that appends exactly one audit entry, and
// CANCELLED / RETURNED are terminal. The generic transition graph lives on
// Status; the cancel and return operations carry their own guards, which
// deliberately differ from the graph (cancel admits RETURNED -> CANCELLED,
// return requires exactly DELIVERED).
//
// The package also defines the outbound lifecycle event payloads built from
// the aggregate after a successful commit.
package order
