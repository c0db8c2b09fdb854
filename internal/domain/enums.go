package domain

// Kind identifies a submission family. Each kind has its own field set,
// status graph and public status set, but shares the workflow machinery.
type Kind string

const (
	KindArticle    Kind = "article"
	KindProject    Kind = "project"
	KindStartup    Kind = "startup"
	KindInternship Kind = "internship"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindArticle, KindProject, KindStartup, KindInternship:
		return true
	}
	return false
}

// Role represents the authorization level of a user.
type Role string

const (
	RoleUser     Role = "USER"
	RoleMember   Role = "MEMBER"
	RoleReviewer Role = "REVIEWER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMember, RoleReviewer, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Status is a submission lifecycle state. Valid values depend on the Kind.
type Status string

func (s Status) String() string { return string(s) }

// Article statuses.
const (
	ArticleDraft     Status = "DRAFT"
	ArticleScheduled Status = "SCHEDULED"
	ArticlePublished Status = "PUBLISHED"
)

// Project statuses.
const (
	ProjectPending          Status = "PENDING"
	ProjectSubmitted        Status = "SUBMITTED"
	ProjectApproved         Status = "APPROVED"
	ProjectFeatured         Status = "FEATURED"
	ProjectChangesRequested Status = "CHANGES_REQUESTED"
	ProjectRejected         Status = "REJECTED"
)

// Startup statuses. The original system spells these in title case.
const (
	StartupDraft     Status = "Draft"
	StartupSubmitted Status = "Submitted"
	StartupApproved  Status = "Approved"
	StartupRejected  Status = "Rejected"
)

// Internship application statuses.
const (
	InternshipDraft     Status = "Draft"
	InternshipSubmitted Status = "Submitted"
	InternshipInterview Status = "Interview"
	InternshipOffer     Status = "Offer"
	InternshipRejected  Status = "Rejected"
)

// statusesByKind is the full status set per kind.
var statusesByKind = map[Kind][]Status{
	KindArticle:    {ArticleDraft, ArticleScheduled, ArticlePublished},
	KindProject:    {ProjectPending, ProjectSubmitted, ProjectApproved, ProjectFeatured, ProjectChangesRequested, ProjectRejected},
	KindStartup:    {StartupDraft, StartupSubmitted, StartupApproved, StartupRejected},
	KindInternship: {InternshipDraft, InternshipSubmitted, InternshipInterview, InternshipOffer, InternshipRejected},
}

// publicStatusesByKind is the subset visible to unprivileged callers.
// Internship applications are never public.
var publicStatusesByKind = map[Kind][]Status{
	KindArticle: {ArticlePublished},
	KindProject: {ProjectApproved, ProjectFeatured},
	KindStartup: {StartupApproved},
}

// KnownStatus reports whether s is a valid status for the given kind.
func KnownStatus(kind Kind, s Status) bool {
	for _, known := range statusesByKind[kind] {
		if known == s {
			return true
		}
	}
	return false
}

// PublicStatuses returns the public status set for a kind. The returned
// slice must not be mutated.
func PublicStatuses(kind Kind) []Status {
	return publicStatusesByKind[kind]
}

// IsPublicStatus reports whether a record in status s is visible to
// anonymous and unprivileged callers.
func IsPublicStatus(kind Kind, s Status) bool {
	for _, pub := range publicStatusesByKind[kind] {
		if pub == s {
			return true
		}
	}
	return false
}

// InitialStatus returns the status assigned to a freshly created record.
func InitialStatus(kind Kind) Status {
	switch kind {
	case KindArticle:
		return ArticleDraft
	case KindProject:
		return ProjectPending
	case KindStartup:
		return StartupDraft
	case KindInternship:
		return InternshipDraft
	}
	return ""
}

// MediaType classifies project media attachments.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
)

func (m MediaType) String() string { return string(m) }

func (m MediaType) IsValid() bool {
	return m == MediaImage || m == MediaVideo
}
