package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const DefaultQueue = "meetup.created"

// MeetUpCreatedEvent is published after a meetup insert commits.
type MeetUpCreatedEvent struct {
	MeetUpID   uint      `json:"meetup_id"`
	UserID     uint      `json:"user_id"`
	CategoryID uint      `json:"id_category"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	Language   string    `json:"language"`
	DateEvent  time.Time `json:"date_event"`
	CreatedAt  time.Time `json:"created_at"`
}

type AmqpPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewAmqpPublisher(url, queue string) *AmqpPublisher {
	if len(queue) == 0 {
		queue = DefaultQueue
	}
	return &AmqpPublisher{url: url, queue: queue}
}

func (v *AmqpPublisher) connection() (*amqp.Connection, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.conn != nil && !v.conn.IsClosed() {
		return v.conn, nil
	}
	conn, err := amqp.Dial(v.url)
	if err != nil {
		return nil, fmt.Errorf("unable to dial broker: %v", err)
	}
	v.conn = conn
	return conn, nil
}

func (v *AmqpPublisher) PublishMeetUpCreated(ctx context.Context, item models.MeetUp) error {
	conn, err := v.connection()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("unable to open channel: %v", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(v.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("unable to declare queue: %v", err)
	}

	body, err := jsoniter.Marshal(MeetUpCreatedEvent{
		MeetUpID:   item.ID,
		UserID:     item.UserID,
		CategoryID: item.CategoryID,
		Title:      item.Title,
		Location:   item.Location,
		Language:   item.Language,
		DateEvent:  item.DateEvent,
		CreatedAt:  item.CreatedAt,
	})
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx, "", v.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("unable to publish event: %v", err)
	}

	log.Debug().Uint("meetup", item.ID).Str("queue", v.queue).Msg("Published meetup created event.")
	return nil
}

func (v *AmqpPublisher) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.conn == nil || v.conn.IsClosed() {
		return nil
	}
	return v.conn.Close()
}
