package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trigger is a named action that attempts a status transition.
type Trigger string

const (
	TriggerSubmit         Trigger = "submit"
	TriggerPublish        Trigger = "publish"
	TriggerSchedule       Trigger = "schedule"
	TriggerApprove        Trigger = "approve"
	TriggerReject         Trigger = "reject"
	TriggerRequestChanges Trigger = "request-changes"
	TriggerDecision       Trigger = "decision"
	TriggerAdvance        Trigger = "advance"
)

func (t Trigger) String() string { return string(t) }

// WorkflowRecord is the kind-agnostic view of a record that the engine
// needs: everything else on a submission is opaque payload.
type WorkflowRecord struct {
	Kind    Kind
	OwnerID uuid.UUID
	Status  Status
}

// TransitionPayload carries trigger-specific inputs.
type TransitionPayload struct {
	// Featured selects FEATURED over APPROVED on project approval.
	Featured bool
	// Notes becomes the record's moderation notes where the trigger
	// writes them (reject, request-changes, decision).
	Notes string
	// Target is the caller-supplied destination status for the
	// reviewer-discretion triggers (decision, advance).
	Target Status
	// PublishAt is the explicit publication time for scheduled articles.
	PublishAt *time.Time
}

// Change is the atomic patch a successful transition produces. The storage
// layer applies it in a single UPDATE so status and timestamps can never be
// partially written. Nil pointer fields are left unchanged.
type Change struct {
	Status          Status
	SubmittedAt     *time.Time
	PublishedAt     *time.Time
	FeaturedAt      *time.Time
	ClearFeaturedAt bool
	ModNotes        *string
}

// transition is one row of the declarative edge table.
type transition struct {
	trigger Trigger
	// from lists the statuses the trigger accepts. nil means any: the
	// permissive kinds (article publish, startup/internship triggers)
	// deliberately skip the from-state check.
	from []Status
	// to is the destination. Empty means the destination comes from
	// TransitionPayload.Target and must be a known status of the kind.
	to Status
	// moderation requires a moderator role for the kind; otherwise the
	// trigger is allowed to the record owner or an admin.
	moderation bool
	// effect applies timestamp/notes side effects to the change.
	effect func(c *Change, now time.Time, p TransitionPayload)
}

func setSubmittedAt(c *Change, now time.Time, _ TransitionPayload) {
	c.SubmittedAt = &now
}

func setPublishedAtNow(c *Change, now time.Time, _ TransitionPayload) {
	c.PublishedAt = &now
}

func setPublishedAtPayload(c *Change, _ time.Time, p TransitionPayload) {
	c.PublishedAt = p.PublishAt
}

func setModNotes(c *Change, _ time.Time, p TransitionPayload) {
	notes := p.Notes
	c.ModNotes = &notes
}

func applyFeatured(c *Change, now time.Time, p TransitionPayload) {
	if p.Featured {
		c.Status = ProjectFeatured
		c.FeaturedAt = &now
	} else {
		c.ClearFeaturedAt = true
	}
}

func setOptionalModNotes(c *Change, _ time.Time, p TransitionPayload) {
	if p.Notes != "" {
		notes := p.Notes
		c.ModNotes = &notes
	}
}

// transitionTable is the per-kind edge table consulted by Engine.Apply.
// One table, no per-kind branching elsewhere.
var transitionTable = map[Kind][]transition{
	KindArticle: {
		{trigger: TriggerPublish, to: ArticlePublished, effect: setPublishedAtNow},
		{trigger: TriggerSchedule, to: ArticleScheduled, effect: setPublishedAtPayload},
	},
	KindProject: {
		{trigger: TriggerSubmit, from: []Status{ProjectPending, ProjectChangesRequested}, to: ProjectSubmitted, effect: setSubmittedAt},
		{trigger: TriggerApprove, to: ProjectApproved, moderation: true, effect: applyFeatured},
		{trigger: TriggerReject, to: ProjectRejected, moderation: true, effect: setModNotes},
		{trigger: TriggerRequestChanges, to: ProjectChangesRequested, moderation: true, effect: setModNotes},
	},
	KindStartup: {
		{trigger: TriggerSubmit, to: StartupSubmitted, effect: setSubmittedAt},
		{trigger: TriggerDecision, moderation: true, effect: setOptionalModNotes},
	},
	KindInternship: {
		{trigger: TriggerSubmit, to: InternshipSubmitted, effect: setSubmittedAt},
		{trigger: TriggerAdvance, moderation: true},
	},
}

// Engine evaluates status transitions against the edge table. The clock is
// injectable so tests can pin "now".
type Engine struct {
	now func() time.Time
}

// NewEngine creates an Engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock creates an Engine with a fixed clock source.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Apply evaluates a trigger against a record on behalf of an actor.
//
// Failure order matches the transition contract: unknown trigger for the
// kind and disallowed from-state yield ErrInvalidState, insufficient
// role/ownership yields ErrForbidden. On success the returned Change holds
// the new status plus any timestamp/notes side effects; nothing has been
// persisted yet and the record is untouched on error.
func (e *Engine) Apply(rec WorkflowRecord, trg Trigger, actor Actor, p TransitionPayload) (Change, error) {
	rule, ok := findTransition(rec.Kind, trg)
	if !ok {
		return Change{}, fmt.Errorf("%s %s: %w", rec.Kind, trg, ErrInvalidState)
	}

	if rule.moderation {
		if !actor.CanModerate(rec.Kind) {
			return Change{}, fmt.Errorf("%s %s: %w", rec.Kind, trg, ErrForbidden)
		}
	} else if !actor.Owns(rec.OwnerID) && !actor.IsAdmin() {
		return Change{}, fmt.Errorf("%s %s: %w", rec.Kind, trg, ErrForbidden)
	}

	if rule.from != nil && !statusIn(rec.Status, rule.from) {
		return Change{}, fmt.Errorf("%s %s from %s: %w", rec.Kind, trg, rec.Status, ErrInvalidState)
	}

	to := rule.to
	if to == "" {
		// Reviewer-discretion trigger: the destination is caller-supplied
		// and only checked for being a known status of the kind.
		if p.Target == "" {
			return Change{}, NewValidationError("to", "target status is required")
		}
		if !KnownStatus(rec.Kind, p.Target) {
			return Change{}, NewValidationError("to", fmt.Sprintf("unknown status %q", p.Target))
		}
		to = p.Target
	}

	change := Change{Status: to}
	if rule.effect != nil {
		rule.effect(&change, e.now(), p)
	}
	return change, nil
}

func findTransition(kind Kind, trg Trigger) (transition, bool) {
	for _, t := range transitionTable[kind] {
		if t.trigger == trg {
			return t, true
		}
	}
	return transition{}, false
}

func statusIn(s Status, set []Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
