package service

import (
	"sync"

	"github.com/google/uuid"
)

// ProjectLocks serialises the read-compute-write sequences touching one project
// (recompute, offer replacement, selection, consumption). Locks of different projects
// are independent. Entries are reference counted and removed when unused.
type ProjectLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*projectLock
}

type projectLock struct {
	mu   sync.Mutex
	refs int
}

// NewProjectLocks creates an empty lock table
func NewProjectLocks() *ProjectLocks {
	return &ProjectLocks{locks: make(map[uuid.UUID]*projectLock)}
}

// Lock acquires the lock of projectID and returns its release function
func (l *ProjectLocks) Lock(projectID uuid.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[projectID]
	if !ok {
		lock = &projectLock{}
		l.locks[projectID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, projectID)
		}
		l.mu.Unlock()
	}
}

func (l *ProjectLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
