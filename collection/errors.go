package collection

import (
	"errors"
	"fmt"
)

// ErrBadUpstream marks failures caused by the registration system
// rather than by this process: unreachable hosts, error statuses,
// pages that no longer parse.
var ErrBadUpstream = errors.New("bad upstream response")

// UpstreamError carries the page and status behind an ErrBadUpstream
// so handlers can report which fetch went wrong.
type UpstreamError struct {
	Source string
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d for %s", e.Status, e.Source)
}

func (e *UpstreamError) Unwrap() error { return ErrBadUpstream }
