// Package memory provides in-process implementations of the driven ports.
//
// The snapshot store keeps the document table in memory only; it backs the
// "memory" storage backend and the service tests. The config store is used
// wherever settings should not touch the filesystem.
package memory
