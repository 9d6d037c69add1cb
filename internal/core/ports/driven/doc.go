// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Server Interfaces
//
//   - PizzaStore: Pizza document persistence (comments are embedded)
//
// # Client Interfaces
//
//   - LocalWriteStore: Durable FIFO queue of create payloads written while offline
//   - RemoteAPI: The REST API as seen by the client
//   - ConnectivitySource: Online/offline signals delivered by the environment
//   - Notifier: User-visible replay notifications
//
// # Shared
//
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
