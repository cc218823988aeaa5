package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/davidgomes/haxball-clone/internal/dependencies/mocks"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIdent *mocks.MockIdent
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIdent := mocks.NewMockIdent()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, model.DefaultField(), mockClock, mockIdent, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIdent: mockIdent,
	}
}
