// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Domain entities reference each other only
// through kernel.UUID so that identifier semantics (construction, validation,
// equality) are defined in one place.
package kernel
