// Package jsonfile stores the document table as a single JSON file.
//
// The file holds a list of document objects. Writes go to a temporary file
// which is synced and renamed over the snapshot, so readers never observe a
// half-written table. The decoded table is cached in memory and served while
// the file's identity, size and modification time are unchanged. Watch drops
// the cache as soon as the file is edited by another process.
package jsonfile
