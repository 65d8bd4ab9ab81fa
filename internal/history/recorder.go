package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IDGenerator generates unique IDs for runs
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

type uuidGenerator struct{}

func (g *uuidGenerator) Generate() string {
	return uuid.NewString()
}

type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Recorder stamps and stores run summaries
type Recorder struct {
	db          DB
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewRecorder creates a new Recorder with UUID ids and the wall clock
func NewRecorder(db DB) *Recorder {
	return &Recorder{
		db:          db,
		idGenerator: &uuidGenerator{},
		timeSource:  &defaultTimeSource{},
	}
}

// NewRecorderWithDeps creates a new Recorder with custom dependencies for testing
func NewRecorderWithDeps(db DB, idGen IDGenerator, timeSrc TimeSource) *Recorder {
	return &Recorder{
		db:          db,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// Record assigns an ID and timestamp to run and saves it
func (r *Recorder) Record(run Run) (*Run, error) {
	run.ID = r.idGenerator.Generate()
	run.CreatedAt = r.timeSource.Now()

	if err := r.db.SaveRun(&run); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}
	return &run, nil
}

// Get returns the run recorded under id
func (r *Recorder) Get(id string) (*Run, error) {
	run, err := r.db.GetRun(id)
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return run, nil
}

// List returns every recorded run, oldest first
func (r *Recorder) List() ([]*Run, error) {
	runs, err := r.db.ListRuns()
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
