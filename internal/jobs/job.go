// Package jobs runs field evaluations asynchronously, tracking each
// one through a queued -> running -> done|failed lifecycle with
// looplab/fsm.
package jobs

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"

	"github.com/bxrne/launchrail/pkg/field"
	"github.com/bxrne/launchrail/pkg/grid"
	"github.com/bxrne/launchrail/pkg/kernel"
	"github.com/bxrne/launchrail/pkg/tesseroid"
)

// Lifecycle states.
const (
	StateQueued  = "queued"
	StateRunning = "running"
	StateDone    = "done"
	StateFailed  = "failed"
)

// Request describes a single field evaluation to run as a job.
type Request struct {
	Model     *tesseroid.Model
	Grid      grid.Spec
	Component kernel.Component
	Algorithm kernel.Algorithm
	Orders    field.Orders
}

// Job tracks one Request's asynchronous evaluation.
type Job struct {
	ID        string
	Request   Request
	Result    *grid.ResultGrid
	Err       error
	CreatedAt time.Time

	mu  sync.RWMutex
	fsm *fsm.FSM
}

func newJob(id string, req Request) *Job {
	j := &Job{ID: id, Request: req, CreatedAt: time.Now()}
	j.fsm = fsm.NewFSM(
		StateQueued,
		fsm.Events{
			{Name: "start", Src: []string{StateQueued}, Dst: StateRunning},
			{Name: "succeed", Src: []string{StateRunning}, Dst: StateDone},
			{Name: "fail", Src: []string{StateRunning}, Dst: StateFailed},
		},
		fsm.Callbacks{},
	)
	return j
}

// State returns the job's current lifecycle state.
func (j *Job) State() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.fsm.Current()
}

func (j *Job) transition(ctx context.Context, event string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fsm.Event(ctx, event)
}

// run executes the request synchronously, driving the job's state
// machine through running to its terminal state.
func (j *Job) run(ctx context.Context) {
	if err := j.transition(ctx, "start"); err != nil {
		j.mu.Lock()
		j.Err = err
		j.mu.Unlock()
		return
	}

	result, err := field.Evaluate(j.Request.Model, j.Request.Grid, j.Request.Component, j.Request.Algorithm, j.Request.Orders)

	j.mu.Lock()
	j.Result = result
	j.Err = err
	j.mu.Unlock()

	if err != nil {
		_ = j.transition(ctx, "fail")
		return
	}
	_ = j.transition(ctx, "succeed")
}

func newJobID() string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(time.Now().String())))[:16]
}
