// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The reconciler and the lexical scorer are plain functions over
// domain.Table so they can be used without a store.
package services
