package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/zerodha/logf"
)

// Manager tracks submitted jobs in memory and runs each one on its own
// goroutine.
type Manager struct {
	log *logf.Logger

	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewManager creates an empty job manager.
func NewManager(log *logf.Logger) *Manager {
	return &Manager{log: log, jobs: make(map[string]*Job)}
}

// Submit registers req as a new job and starts its evaluation on a
// background goroutine, returning the job's ID immediately.
func (m *Manager) Submit(req Request) string {
	id := newJobID()
	job := newJob(id, req)

	m.mu.Lock()
	m.jobs[id] = job
	m.mu.Unlock()

	go func() {
		job.run(context.Background())
		if job.Err != nil {
			m.log.Error("job failed", "job_id", id, "error", job.Err)
			return
		}
		m.log.Info("job completed", "job_id", id)
	}()

	return id
}

// Get returns the job with the given id, or false if no such job was
// ever submitted.
func (m *Manager) Get(id string) (*Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	return j, ok
}

// ErrJobNotFound is returned when a requested job ID is unknown.
var ErrJobNotFound = fmt.Errorf("jobs: job not found")
