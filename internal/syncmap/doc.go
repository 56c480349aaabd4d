// Package syncmap offers a lightweight, generic, concurrency-safe map keyed by
// name and guarded by a sync.RWMutex. Entries can be added or replaced but
// never removed, which is all the converter registry needs.
package syncmap
