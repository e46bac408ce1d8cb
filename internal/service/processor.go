package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"erpviews-backend/internal/metrics"
	"github.com/google/uuid"
)

type JobKind string

const (
	JobImport           JobKind = "import"
	JobExport           JobKind = "export"
	JobApplyPermissions JobKind = "apply-permissions"
)

var (
	ErrBusy           = errors.New("another job is still processing")
	ErrUnknownJobKind = errors.New("unknown job kind")
)

func ParseJobKind(s string) (JobKind, error) {
	switch k := JobKind(s); k {
	case JobImport, JobExport, JobApplyPermissions:
		return k, nil
	}
	return "", ErrUnknownJobKind
}

type JobStatus string

const (
	JobRunning   JobStatus = "processing"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

type Job struct {
	ID          string     `json:"id"`
	Kind        JobKind    `json:"kind"`
	Status      JobStatus  `json:"status"`
	Items       int        `json:"items"`
	Error       string     `json:"error,omitempty"`
	RequestedBy string     `json:"requestedBy,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

// Task does the actual work of a job and reports how many items it touched.
type Task func(ctx context.Context) (int, error)

// Processor runs at most one job at a time. Submissions while a job is in
// flight are rejected with ErrBusy. Jobs are not retried or cancelled; a
// failure is logged and recorded on the job.
type Processor struct {
	Delay  time.Duration
	Tasks  map[JobKind]Task
	Logger *slog.Logger

	busy atomic.Bool
	mu   sync.RWMutex
	last *Job
}

type ProcessorStatus struct {
	Processing bool `json:"isProcessing"`
	Last       *Job `json:"lastJob,omitempty"`
}

// Submit starts a job of the given kind for the account by.
func (p *Processor) Submit(kind JobKind, by string) (Job, error) {
	if _, err := ParseJobKind(string(kind)); err != nil {
		return Job{}, err
	}
	if !p.busy.CompareAndSwap(false, true) {
		metrics.Jobs.WithLabelValues(string(kind), "rejected").Inc()
		return Job{}, ErrBusy
	}
	metrics.JobsBusy.Set(1)

	job := Job{
		ID:          uuid.NewString(),
		Kind:        kind,
		Status:      JobRunning,
		RequestedBy: by,
		SubmittedAt: time.Now(),
	}
	p.Logger.Info("job submitted", "id", job.ID, "kind", job.Kind, "by", by)
	p.mu.Lock()
	p.last = &job
	p.mu.Unlock()

	time.AfterFunc(p.Delay, func() { p.run(job) })
	return job, nil
}

func (p *Processor) run(job Job) {
	defer func() {
		metrics.JobsBusy.Set(0)
		p.busy.Store(false)
	}()

	var (
		items int
		err   error
	)
	if task := p.Tasks[job.Kind]; task != nil {
		items, err = task(context.Background())
	}

	now := time.Now()
	job.FinishedAt = &now
	job.Items = items
	job.Status = JobCompleted
	if err != nil {
		job.Status = JobFailed
		job.Error = err.Error()
		p.Logger.Error("job failed", "id", job.ID, "kind", job.Kind, "by", job.RequestedBy, "err", err)
		metrics.Jobs.WithLabelValues(string(job.Kind), "failed").Inc()
	} else {
		metrics.Jobs.WithLabelValues(string(job.Kind), "completed").Inc()
	}

	p.mu.Lock()
	p.last = &job
	p.mu.Unlock()
}

func (p *Processor) Status() ProcessorStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	st := ProcessorStatus{Processing: p.busy.Load()}
	if p.last != nil {
		last := *p.last
		st.Last = &last
	}
	return st
}
