package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/datatypes"

	"farmlink/internal/models"
	"farmlink/internal/repository"
)

const eventsTopic = "audit.events"

// Details carries free-form audit context (ip, user agent, error cause).
type Details map[string]any

// Recorder appends audit events without ever blocking or failing the
// operation that triggered them. Record publishes onto an in-process
// buffered queue; a background subscriber persists the rows and reports
// failures to the log sink only.
type Recorder interface {
	Record(userID *string, action string, entityType, entityID *string, details Details)
	Close() error
}

type recorder struct {
	pubSub *gochannel.GoChannel
	events repository.EventRepository
	logger *slog.Logger
	done   chan struct{}
}

type eventPayload struct {
	UserID     *string   `json:"userId,omitempty"`
	Action     string    `json:"action"`
	EntityType *string   `json:"entityType,omitempty"`
	EntityID   *string   `json:"entityId,omitempty"`
	Details    Details   `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewRecorder starts the background subscriber and returns the recorder.
func NewRecorder(events repository.EventRepository, logger *slog.Logger) (Recorder, error) {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewSlogLogger(logger),
	)

	messages, err := pubSub.Subscribe(context.Background(), eventsTopic)
	if err != nil {
		return nil, err
	}

	r := &recorder{
		pubSub: pubSub,
		events: events,
		logger: logger,
		done:   make(chan struct{}),
	}
	go r.consume(messages)

	return r, nil
}

func (r *recorder) Record(userID *string, action string, entityType, entityID *string, details Details) {
	payload, err := json.Marshal(eventPayload{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		OccurredAt: time.Now(),
	})
	if err != nil {
		r.logger.Error("audit event marshal failed", "action", action, "error", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := r.pubSub.Publish(eventsTopic, msg); err != nil {
		r.logger.Error("audit event publish failed", "action", action, "error", err)
	}
}

func (r *recorder) consume(messages <-chan *message.Message) {
	defer close(r.done)

	for msg := range messages {
		var payload eventPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			r.logger.Error("audit event unmarshal failed", "error", err)
			msg.Ack()
			continue
		}

		event := &models.Event{
			UserID:     payload.UserID,
			Action:     payload.Action,
			EntityType: payload.EntityType,
			EntityID:   payload.EntityID,
		}
		if payload.Details != nil {
			if detailsJSON, err := json.Marshal(payload.Details); err == nil {
				event.Details = datatypes.JSON(detailsJSON)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := r.events.Create(ctx, event); err != nil {
			// Audit persistence failures never reach the triggering caller.
			r.logger.Error("audit event persist failed", "action", payload.Action, "error", err)
		}
		cancel()

		msg.Ack()
	}
}

// Close shuts down the queue and waits for the subscriber to drain.
func (r *recorder) Close() error {
	if err := r.pubSub.Close(); err != nil {
		return err
	}
	<-r.done
	return nil
}
