package factory

import (
	"time"

	"github.com/mcoot/chessfed-go/internal/dependencies/mocks"
	"github.com/mcoot/chessfed-go/internal/storage/memory"
	"github.com/mcoot/chessfed-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
