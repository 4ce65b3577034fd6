package jobs_test

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zerodha/logf"

	"github.com/bxrne/launchrail/internal/jobs"
	"github.com/bxrne/launchrail/pkg/field"
	"github.com/bxrne/launchrail/pkg/grid"
	"github.com/bxrne/launchrail/pkg/kernel"
	"github.com/bxrne/launchrail/pkg/tesseroid"
)

func testRequest(t *testing.T) jobs.Request {
	t.Helper()
	tess, err := tesseroid.New(-1, 1, -1, 1, 0, -1000, 2670)
	assert.NoError(t, err)
	return jobs.Request{
		Model:     tesseroid.NewModel(tess),
		Grid:      grid.Spec{West: -2, East: 2, South: -2, North: 2, NLon: 2, NLat: 2},
		Component: kernel.Gz,
		Algorithm: kernel.TwoD,
		Orders:    field.Orders{Lon: 3, Lat: 3, R: 3},
	}
}

func TestManagerSubmitRunsToCompletion(t *testing.T) {
	logger := logf.New(logf.Opts{Writer: io.Discard})
	m := jobs.NewManager(&logger)

	id := m.Submit(testRequest(t))
	job, ok := m.Get(id)
	assert.True(t, ok)

	assert.Eventually(t, func() bool {
		return job.State() == jobs.StateDone || job.State() == jobs.StateFailed
	}, time.Second, time.Millisecond)

	assert.Equal(t, jobs.StateDone, job.State())
	assert.NoError(t, job.Err)
	assert.NotNil(t, job.Result)
}

func TestManagerGetUnknownJob(t *testing.T) {
	logger := logf.New(logf.Opts{Writer: io.Discard})
	m := jobs.NewManager(&logger)
	_, ok := m.Get("does-not-exist")
	assert.False(t, ok)
}
