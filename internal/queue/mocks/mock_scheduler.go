package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"pulse/internal/queue"
)

type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) Enqueue(ctx context.Context, job queue.Job, at time.Time) error {
	args := m.Called(ctx, job, at)
	return args.Error(0)
}

func (m *MockScheduler) Claim(ctx context.Context, now time.Time, limit int) ([]queue.Job, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queue.Job), args.Error(1)
}
