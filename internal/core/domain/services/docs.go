// Package services provides domain services for the order system. It holds
// business rules that do not naturally belong to a single aggregate.
//
// The package includes:
//   - AccessPolicy: the ownership/role predicate deciding whether a caller
//     may act on an order they do not own
package services
