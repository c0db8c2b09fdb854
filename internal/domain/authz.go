package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Action names an access intent checked by Authorize.
type Action string

const (
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionSubmit   Action = "submit"
	ActionModerate Action = "moderate"
)

// AccessRecord is the kind-agnostic view of a record that authorization
// needs. Ownership is always evaluated against the current owner.
type AccessRecord struct {
	Kind    Kind
	OwnerID uuid.UUID
	Status  Status
}

// ownerEditableStatuses restricts, per kind, the statuses in which an
// owner without a moderator role may update a record. Kinds absent from
// the map are owner-editable in any status.
var ownerEditableStatuses = map[Kind][]Status{
	KindProject:    {ProjectPending, ProjectChangesRequested},
	KindInternship: {InternshipDraft},
}

// Authorize decides whether actor may perform action on the record.
// Rules, in order:
//
//  1. Reading a record in its kind's public status set is allowed for
//     anyone, including anonymous callers.
//  2. Reading a non-public record requires ownership or a moderator role
//     for the kind.
//  3. Mutations (update, delete, submit) require ownership or ADMIN.
//     Updates are also open to the kind's moderator roles, and owner
//     updates on some kinds are restricted to editable statuses.
//  4. Moderation requires a moderator role for the kind.
//
// A Forbidden result is terminal: callers must not apply partial effects.
func Authorize(actor Actor, rec AccessRecord, action Action) error {
	switch action {
	case ActionRead:
		if IsPublicStatus(rec.Kind, rec.Status) {
			return nil
		}
		if actor.Owns(rec.OwnerID) || actor.IsAdmin() || actor.CanModerate(rec.Kind) {
			return nil
		}
		return fmt.Errorf("read %s: %w", rec.Kind, ErrForbidden)

	case ActionUpdate, ActionDelete, ActionSubmit:
		if actor.IsAdmin() {
			return nil
		}
		if action == ActionUpdate && actor.CanModerate(rec.Kind) {
			return nil
		}
		if !actor.Owns(rec.OwnerID) {
			return fmt.Errorf("%s %s: %w", action, rec.Kind, ErrForbidden)
		}
		if editable, ok := ownerEditableStatuses[rec.Kind]; ok && action == ActionUpdate && !statusIn(rec.Status, editable) {
			return fmt.Errorf("update %s in status %s: %w", rec.Kind, rec.Status, ErrForbidden)
		}
		return nil

	case ActionModerate:
		if actor.CanModerate(rec.Kind) {
			return nil
		}
		return fmt.Errorf("moderate %s: %w", rec.Kind, ErrForbidden)
	}

	return fmt.Errorf("unknown action %q: %w", action, ErrForbidden)
}
