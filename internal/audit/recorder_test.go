package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlink/internal/models"
)

// capturingEventRepository collects persisted events for assertions.
type capturingEventRepository struct {
	mu     sync.Mutex
	events []*models.Event
	errs   []error
}

func (r *capturingEventRepository) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return err
	}
	return nil
}

func (r *capturingEventRepository) all() []*models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Event(nil), r.events...)
}

func TestRecorder_PersistsEvents(t *testing.T) {
	repo := &capturingEventRepository{}
	recorder, err := NewRecorder(repo, slog.Default())
	require.NoError(t, err)

	userID := "user-1"
	entityType := "USER"
	recorder.Record(&userID, models.ActionUserLogin, &entityType, &userID, Details{"ip": "1.2.3.4"})

	// Close drains the queue before returning.
	require.NoError(t, recorder.Close())

	events := repo.all()
	require.Len(t, events, 1)
	assert.Equal(t, models.ActionUserLogin, events[0].Action)
	assert.Equal(t, "user-1", *events[0].UserID)
	assert.Equal(t, "USER", *events[0].EntityType)

	var details map[string]any
	require.NoError(t, json.Unmarshal(events[0].Details, &details))
	assert.Equal(t, "1.2.3.4", details["ip"])
}

func TestRecorder_RecordNeverBlocksCaller(t *testing.T) {
	repo := &capturingEventRepository{}
	recorder, err := NewRecorder(repo, slog.Default())
	require.NoError(t, err)
	defer recorder.Close()

	start := time.Now()
	for i := 0; i < 50; i++ {
		recorder.Record(nil, models.ActionFeedbackSubmitted, nil, nil, nil)
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestRecorder_PersistFailureIsSwallowed(t *testing.T) {
	repo := &capturingEventRepository{errs: []error{assert.AnError}}
	recorder, err := NewRecorder(repo, slog.Default())
	require.NoError(t, err)

	recorder.Record(nil, models.ActionFeedbackSubmitted, nil, nil, nil)
	recorder.Record(nil, models.ActionRatingSubmitted, nil, nil, nil)

	require.NoError(t, recorder.Close())

	// The failed first event does not take the second one down with it.
	events := repo.all()
	require.Len(t, events, 2)
	assert.Equal(t, models.ActionRatingSubmitted, events[1].Action)
}
