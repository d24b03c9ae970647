package verifier

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

// StatusSet enumerates the status codes a verification step accepts.
type StatusSet []int

var (
	HealthOK = StatusSet{http.StatusOK}
	// RegisterAccepted keeps registration idempotent: an existing user is a conflict, not a failure.
	RegisterAccepted = StatusSet{http.StatusOK, http.StatusCreated, http.StatusConflict}
	LoginOK          = StatusSet{http.StatusOK}
	Unauthorized     = StatusSet{http.StatusUnauthorized, http.StatusForbidden}
	AuthorizedAccess = StatusSet{http.StatusOK, http.StatusNotFound}
	// CreateItemAccepted tolerates well-formed client errors since catalog state is not ours.
	CreateItemAccepted = StatusSet{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusUnprocessableEntity}
	ReadAccepted       = StatusSet{http.StatusOK, http.StatusNotFound}
)

func (s StatusSet) Contains(code int) bool {
	return slices.Contains(s, code)
}

func (s StatusSet) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s {
		parts = append(parts, strconv.Itoa(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Check returns an UnexpectedStatusError naming step when code is not in the set.
func (s StatusSet) Check(step string, code int) error {
	if s.Contains(code) {
		return nil
	}
	return srvErrors.NewUnexpectedStatusError(step, code, s.String())
}
