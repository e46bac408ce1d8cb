package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/metrics"
	"erpviews-backend/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

var ErrInvalidStatus = errors.New("invalid status")

type Options struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Registry holds every list page by key, in menu order.
type Registry struct {
	opts    Options
	sources repository.Sources
	overlay *repository.Overlay
	pages   map[string]Page
	order   []string

	// serialises read-modify-write edits on the overlay
	mu sync.Mutex
}

func NewRegistry(src repository.Sources, overlay *repository.Overlay, opts Options) *Registry {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 10
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	if overlay == nil {
		overlay = repository.NewOverlay()
	}
	src = src.WithOverlay(overlay)

	r := &Registry{opts: opts, sources: src, overlay: overlay, pages: map[string]Page{}}
	for _, p := range []Page{
		machinesPage(src.Machines),
		replenishmentPage(src.Replenishment),
		slaBreachesPage(src.SLABreaches),
		shiftsPage(src.ShiftTemplates),
		kpisPage(src.KPIs),
		accessCardsPage(src.AccessCards),
		salesRepsPage(src.SalesReps),
		assignmentRulesPage(src.AssignmentRules),
		biometricDevicesPage(src.BiometricDevices),
		customerGroupsPage(src.CustomerGroups),
		leaveBalancesPage(src.LeaveBalances),
	} {
		key := p.Meta().Key
		r.pages[key] = p
		r.order = append(r.order, key)
	}
	return r
}

// Sources returns the overlaid sources the pages read from.
func (r *Registry) Sources() repository.Sources { return r.sources }

func (r *Registry) List() []Meta {
	out := make([]Meta, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.pages[key].Meta())
	}
	return out
}

func (r *Registry) Get(key string) (Page, error) {
	p, ok := r.pages[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, key)
	}
	return p, nil
}

func (r *Registry) normalize(req Request) Request {
	if req.PageSize <= 0 {
		req.PageSize = r.opts.DefaultPageSize
	}
	if req.PageSize > r.opts.MaxPageSize {
		req.PageSize = r.opts.MaxPageSize
	}
	if req.Page < 1 {
		req.Page = 1
	}
	return req
}

func (r *Registry) Query(ctx context.Context, key string, req Request) (Result, error) {
	p, err := r.Get(key)
	if err != nil {
		metrics.ViewQueries.WithLabelValues("unknown", "not_found").Inc()
		return Result{}, err
	}
	timer := prometheus.NewTimer(metrics.ViewQueryDuration.WithLabelValues(key))
	defer timer.ObserveDuration()

	res, err := p.Query(ctx, r.normalize(req))
	if err != nil {
		metrics.ViewQueries.WithLabelValues(key, "error").Inc()
		return Result{}, err
	}
	metrics.ViewQueries.WithLabelValues(key, "ok").Inc()
	return res, nil
}

// Export returns every matching row regardless of paging.
func (r *Registry) Export(ctx context.Context, key string, req Request) (Export, error) {
	p, err := r.Get(key)
	if err != nil {
		return Export{}, err
	}
	return p.Export(ctx, req)
}

// ToggleRule flips a rule's enabled flag in the overlay on behalf of by.
func (r *Registry) ToggleRule(ctx context.Context, id, by string) (domain.AssignmentRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rules, err := r.sources.AssignmentRules.List(ctx)
	if err != nil {
		return domain.AssignmentRule{}, err
	}
	for _, rule := range rules {
		if rule.ID == id {
			rule.Enabled = !rule.Enabled
			r.overlay.SetRuleEnabled(id, rule.Enabled, by)
			return rule, nil
		}
	}
	return domain.AssignmentRule{}, repository.ErrNotFound
}

var replenishmentStatuses = map[domain.ReplenishmentStatus]bool{
	domain.ReplenishmentPending:  true,
	domain.ReplenishmentApproved: true,
	domain.ReplenishmentOrdered:  true,
	domain.ReplenishmentReceived: true,
	domain.ReplenishmentRejected: true,
}

// SetReplenishmentStatus records a new status for a request. Any known status
// may follow any other.
func (r *Registry) SetReplenishmentStatus(ctx context.Context, id string, status domain.ReplenishmentStatus, by string) (domain.ReplenishmentRequest, error) {
	if !replenishmentStatuses[status] {
		return domain.ReplenishmentRequest{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	reqs, err := r.sources.Replenishment.List(ctx)
	if err != nil {
		return domain.ReplenishmentRequest{}, err
	}
	for _, req := range reqs {
		if req.ID == id {
			req.Status = status
			r.overlay.SetReplenishmentStatus(id, status, by)
			return req, nil
		}
	}
	return domain.ReplenishmentRequest{}, repository.ErrNotFound
}

// Edits lists the overlay changes made since start, newest first.
func (r *Registry) Edits() []repository.Edit {
	return r.overlay.Edits()
}
