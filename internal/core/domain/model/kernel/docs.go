// Package kernel provides core domain primitives used throughout the order
// service's domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - Money: a fixed-point monetary amount with a 3-letter currency code
//   - ConstructorGuard: a defensive pattern to ensure proper object
//     construction
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
