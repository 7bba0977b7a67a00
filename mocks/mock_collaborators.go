package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"pulsar/internal/domain"
	"pulsar/internal/port"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Head(ctx context.Context, key string) (int64, string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockAnnouncementSender is a mock implementation of port.AnnouncementSender.
type MockAnnouncementSender struct {
	mock.Mock
}

func (m *MockAnnouncementSender) SendWinnerAnnouncement(ctx context.Context, winner *domain.User, challenge *domain.Challenge, submission *domain.Submission) error {
	args := m.Called(ctx, winner, challenge, submission)
	return args.Error(0)
}

// MockContentGenerator is a mock implementation of port.ContentGenerator.
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) Generate(ctx context.Context, input *port.GenerateInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
