package masks

import (
	"context"
	"errors"
	"fmt"
)

// ErrUpstream is the sentinel behind every non-200 Masks API response.
var ErrUpstream = errors.New("masks upstream error")

// UpstreamError includes the endpoint and status of a failed Masks API call.
type UpstreamError struct {
	Endpoint string
	Status   int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("masks upstream error (endpoint=%s status=%d)", e.Endpoint, e.Status)
}

// Unwrap enables errors.Is against ErrUpstream.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// Balance is the /api/balance payload.
type Balance struct {
	WeeklyAllowance    Amount `json:"weeklyAllowance"`
	RemainingAllowance Amount `json:"remainingAllowance"`
	Masks              Amount `json:"masks"`
}

// Rank is the /api/rank payload.
type Rank struct {
	Rank Amount `json:"rank"`
}

// Service reads Masks statistics. An empty fid asks for the unparameterized default.
type Service interface {
	GetBalance(ctx context.Context, fid string) (*Balance, error)
	GetRank(ctx context.Context, fid string) (*Rank, error)
}
