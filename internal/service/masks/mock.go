package masks

import "context"

// MockService implements Service with fixed demo statistics.
type MockService struct {
	balances map[string]*Balance
	ranks    map[string]*Rank
}

// NewMockService creates a mock with stats for the demo fids 3 and 7.
// Unknown and empty fids get zero stats, as the live API does.
func NewMockService() *MockService {
	return &MockService{
		balances: map[string]*Balance{
			"3": {WeeklyAllowance: Number(50000), RemainingAllowance: Number(12500), Masks: Number(1234567)},
			"7": {WeeklyAllowance: Number(1000), RemainingAllowance: Number(250), Masks: Number(42000)},
		},
		ranks: map[string]*Rank{
			"3": {Rank: Number(12)},
			"7": {Rank: Number(4821)},
		},
	}
}

func (m *MockService) GetBalance(_ context.Context, fid string) (*Balance, error) {
	if b, ok := m.balances[fid]; ok {
		return b, nil
	}
	return &Balance{}, nil
}

func (m *MockService) GetRank(_ context.Context, fid string) (*Rank, error) {
	if r, ok := m.ranks[fid]; ok {
		return r, nil
	}
	return &Rank{}, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
