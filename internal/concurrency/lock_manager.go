package concurrency

import (
	"sync"
)

// LockManager handles named locks. The in-memory ledger uses it to serialize
// read-modify-write sequences per player, mirroring the row lock the Postgres
// ledger takes.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
