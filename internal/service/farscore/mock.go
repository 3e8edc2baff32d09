package farscore

import "context"

// MockService implements Service with fixed demo profiles for offline runs and tests.
type MockService struct {
	socials map[string]*Social
}

// NewMockService creates a mock pre-populated with two demo profiles.
func NewMockService() *MockService {
	return &MockService{
		socials: map[string]*Social{
			"3": {
				ProfileName:  "dwr.eth",
				UserID:       "3",
				ProfileImage: "https://i.imgur.com/qQrY7wZ.png",
			},
			"7": {
				ProfileName:  "alice",
				UserID:       "7",
				ProfileImage: "http://x/img.png",
			},
		},
	}
}

func (m *MockService) GetSocial(_ context.Context, fid string) (*Social, error) {
	s, ok := m.socials[fid]
	if !ok {
		return nil, ErrNoProfile
	}
	return s, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
