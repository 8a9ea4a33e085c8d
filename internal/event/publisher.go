package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// Routing keys for study lifecycle events.
const (
	QuizStarted         = "study.quiz.started"
	QuizAnswered        = "study.quiz.answered"
	QuizCompleted       = "study.quiz.completed"
	QuizSaved           = "study.quiz.saved"
	QuizResumed         = "study.quiz.resumed"
	BookmarkToggled     = "study.bookmark.toggled"
	GoalUpdated         = "study.goal.updated"
	AchievementUnlocked = "study.achievement.unlocked"
)

// Publisher emits study events to a durable topic exchange. It is optional
// infrastructure: a nil *Publisher is valid and publishes nothing, so
// callers never branch on whether the broker is configured.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends one event, using the event type as the routing key. A
// publish failure is logged, not propagated: events are telemetry, and no
// study operation should fail because the broker hiccuped.
func (p *Publisher) Publish(eventType string, payload any) {
	if p == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"type":      eventType,
		"payload":   payload,
		"timestamp": time.Now(),
	})
	if err != nil {
		log.Printf("event %s: marshal failed: %v", eventType, err)
		return
	}
	err = p.channel.Publish(p.exchange, eventType, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("event %s: publish failed: %v", eventType, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
