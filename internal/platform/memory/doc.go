// Package memory provides in-process implementations of the store interfaces.
//
// The stores keep records in insertion order behind a sync.RWMutex and hand
// out copies, so callers never share memory with the store. They back the
// "memory" database driver and the end-to-end HTTP tests.
package memory
