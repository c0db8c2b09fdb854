package domain

import "github.com/google/uuid"

// Actor is the identity performing an action. A zero Actor means the
// request is anonymous. Components receive the actor as an explicit
// parameter; it is never read implicitly from request state.
type Actor struct {
	ID    uuid.UUID
	Role  Role
	Email string
}

// Anonymous is the zero actor.
var Anonymous = Actor{}

// IsAnonymous reports whether the actor is unauthenticated.
func (a Actor) IsAnonymous() bool { return a.ID == uuid.Nil }

// IsAdmin reports whether the actor holds the ADMIN role.
func (a Actor) IsAdmin() bool { return a.Role.IsAdmin() }

// Owns reports whether the actor is the owner of the given record owner id.
func (a Actor) Owns(ownerID uuid.UUID) bool {
	return !a.IsAnonymous() && a.ID == ownerID
}

// moderatorRolesByKind lists the roles allowed to run moderation triggers
// per kind: articles and projects are admin-moderated, startups and
// internship applications accept reviewers as well.
var moderatorRolesByKind = map[Kind][]Role{
	KindArticle:    {RoleAdmin},
	KindProject:    {RoleAdmin},
	KindStartup:    {RoleReviewer, RoleAdmin},
	KindInternship: {RoleReviewer, RoleAdmin},
}

// ModeratorRoles returns the roles that may moderate records of a kind.
func ModeratorRoles(kind Kind) []Role {
	return moderatorRolesByKind[kind]
}

// CanModerate reports whether the actor may run moderation actions
// (approve, reject, request-changes, decision, advance, score) on a kind.
func (a Actor) CanModerate(kind Kind) bool {
	for _, r := range moderatorRolesByKind[kind] {
		if a.Role == r {
			return true
		}
	}
	return false
}
