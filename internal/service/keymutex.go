package service

import "sync"

// keyMutex serializes work per string key. Ingestion holds the mutex
// for a payload's reference id across resolve and persist, so two
// concurrent pushes of the same story cannot both create a record.
type keyMutex struct {
	mu      sync.Mutex
	entries map[string]*keyMutexEntry
}

type keyMutexEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyMutex() *keyMutex {
	return &keyMutex{entries: make(map[string]*keyMutexEntry)}
}

// Lock acquires the mutex for key and returns its release func.
func (k *keyMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &keyMutexEntry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
