package crashtracker

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCrashTrackerClient struct {
	mock.Mock
}

func (m *MockCrashTrackerClient) LogAndReportErrors(ctx context.Context, err error, msg string) {
	m.Called(ctx, err, msg)
}

func (m *MockCrashTrackerClient) LogAndReportMessages(ctx context.Context, msg string) {
	m.Called(ctx, msg)
}

func (m *MockCrashTrackerClient) FlushEvents(waitTime time.Duration) bool {
	return m.Called(waitTime).Bool(0)
}

func (m *MockCrashTrackerClient) Recover() {
	m.Called()
}

func (m *MockCrashTrackerClient) Clone() CrashTrackerClient {
	return m.Called().Get(0).(CrashTrackerClient)
}

// NewMockCrashTrackerClient creates a MockCrashTrackerClient that asserts its expectations when
// the test ends.
func NewMockCrashTrackerClient(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockCrashTrackerClient {
	m := &MockCrashTrackerClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Ensuring that MockCrashTrackerClient is implementing CrashTrackerClient interface
var _ CrashTrackerClient = (*MockCrashTrackerClient)(nil)
