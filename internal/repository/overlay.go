package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"erpviews-backend/internal/domain"
)

// Overlay holds runtime edits made through the API. Sources are never
// written; edits are layered on top of whatever a source returns and are lost
// on restart.
type Overlay struct {
	mu            sync.RWMutex
	ruleEnabled   map[string]bool
	requestStatus map[string]domain.ReplenishmentStatus
	edits         []Edit
	now           func() time.Time
}

// Edit is one change recorded in the overlay, with the account that made it.
type Edit struct {
	Entity string    `json:"entity"`
	ID     string    `json:"id"`
	Field  string    `json:"field"`
	Value  string    `json:"value"`
	By     string    `json:"by"`
	At     time.Time `json:"at"`
}

func NewOverlay() *Overlay {
	return &Overlay{
		ruleEnabled:   map[string]bool{},
		requestStatus: map[string]domain.ReplenishmentStatus{},
		now:           time.Now,
	}
}

func (o *Overlay) SetRuleEnabled(id string, enabled bool, by string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ruleEnabled[id] = enabled
	o.record(EntityAssignmentRules, id, "enabled", strconv.FormatBool(enabled), by)
}

func (o *Overlay) SetReplenishmentStatus(id string, status domain.ReplenishmentStatus, by string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requestStatus[id] = status
	o.record(EntityReplenishment, id, "status", string(status), by)
}

// caller holds o.mu
func (o *Overlay) record(entity, id, field, value, by string) {
	o.edits = append(o.edits, Edit{Entity: entity, ID: id, Field: field, Value: value, By: by, At: o.now()})
}

// Edits returns the recorded changes, newest first.
func (o *Overlay) Edits() []Edit {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]Edit, len(o.edits))
	for i, e := range o.edits {
		out[len(o.edits)-1-i] = e
	}
	return out
}

// Reset drops every edit.
func (o *Overlay) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ruleEnabled = map[string]bool{}
	o.requestStatus = map[string]domain.ReplenishmentStatus{}
	o.edits = nil
}

// RuleSource applies enabled-flag edits to assignment rules.
type RuleSource struct {
	Base    Source[domain.AssignmentRule]
	Overlay *Overlay
}

func (s RuleSource) List(ctx context.Context) ([]domain.AssignmentRule, error) {
	rules, err := s.Base.List(ctx)
	if err != nil {
		return nil, err
	}
	s.Overlay.mu.RLock()
	defer s.Overlay.mu.RUnlock()
	for i := range rules {
		if enabled, ok := s.Overlay.ruleEnabled[rules[i].ID]; ok {
			rules[i].Enabled = enabled
		}
	}
	return rules, nil
}

// ReplenishmentSource applies status edits to replenishment requests.
type ReplenishmentSource struct {
	Base    Source[domain.ReplenishmentRequest]
	Overlay *Overlay
}

func (s ReplenishmentSource) List(ctx context.Context) ([]domain.ReplenishmentRequest, error) {
	reqs, err := s.Base.List(ctx)
	if err != nil {
		return nil, err
	}
	s.Overlay.mu.RLock()
	defer s.Overlay.mu.RUnlock()
	for i := range reqs {
		if status, ok := s.Overlay.requestStatus[reqs[i].ID]; ok {
			reqs[i].Status = status
		}
	}
	return reqs, nil
}
