// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SnapshotStore: Whole-table document persistence (file, SQLite or memory)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - SeedSource: Starter documents for an empty table. Without it, seeding is skipped.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
