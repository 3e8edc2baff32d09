package farscore

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrNoProfile = errors.New("farscore returned no social profile")
	ErrUpstream  = errors.New("farscore upstream error")
)

// UpstreamError carries the status of a non-200 farscore response.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("farscore upstream error (status=%d)", e.Status)
}

// Unwrap enables errors.Is against ErrUpstream.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// Social is the first social entry of a farscore lookup. Fields are passed
// through as returned; empty means the upstream omitted them.
type Social struct {
	ProfileName  string
	UserID       string
	ProfileImage string
}

// Service looks up social profiles by fid.
type Service interface {
	GetSocial(ctx context.Context, fid string) (*Social, error)
}
