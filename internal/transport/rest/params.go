package rest

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// pathID parses the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// queryStr returns a pointer to a non-empty query value, nil otherwise.
func queryStr(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// queryStatus reads the status query value. Validation of the value
// against the entity's status set happens in the service.
func queryStatus(r *http.Request) *domain.Status {
	v := r.URL.Query().Get("status")
	if v == "" {
		return nil
	}
	s := domain.Status(v)
	return &s
}

// queryInt returns a pointer to a parsed integer query value, nil when
// absent or malformed.
func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// parsePage reads page and limit query values. Out-of-range values are
// normalized downstream.
func parsePage(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return domain.PageRequest{Page: page, Limit: limit}
}
