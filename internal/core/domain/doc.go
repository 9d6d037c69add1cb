// Package domain defines the core business entities for pizza-hunt.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Pizza, Comment, Reply: documents served by the REST API
//   - PendingWriteRecord: a create payload queued while offline
//   - ConnectivityState: the online/offline state machine
//   - ReplayResult: the outcome of draining the offline queue
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
