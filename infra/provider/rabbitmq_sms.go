package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SMSMessage is the JSON body published for the SMS gateway consumer.
type SMSMessage struct {
	PhoneNumber string    `json:"phone_number"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQSMSSender publishes SMS requests to a topic exchange. Delivery to
// the phone is done by whichever gateway consumes the routing key.
type RabbitMQSMSSender struct {
	conn       *amqp.Connection
	channel    publisher
	exchange   string
	routingKey string
	logger     *slog.Logger
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// NewRabbitMQSMSSender dials the broker and declares the durable topic exchange.
func NewRabbitMQSMSSender(amqpURL, exchange, routingKey string, logger *slog.Logger) (*RabbitMQSMSSender, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(cleanURL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	sender := newRabbitMQSMSSender(channel, exchange, routingKey, logger)
	sender.conn = conn
	return sender, nil
}

func newRabbitMQSMSSender(channel publisher, exchange, routingKey string, logger *slog.Logger) *RabbitMQSMSSender {
	return &RabbitMQSMSSender{
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}
}

func (s *RabbitMQSMSSender) Send(ctx context.Context, phoneNumber, body string) error {
	payload, err := json.Marshal(SMSMessage{
		PhoneNumber: phoneNumber,
		Body:        body,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	err = s.channel.PublishWithContext(ctx,
		s.exchange,
		s.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         payload,
		})
	if err != nil {
		s.logger.Error("Failed to publish SMS", "exchange", s.exchange, "routing_key", s.routingKey, "error", err)
		return fmt.Errorf("publish sms: %w", err)
	}

	s.logger.Debug("Published SMS", "exchange", s.exchange, "routing_key", s.routingKey)
	return nil
}

// Close closes the broker connection, which also closes its channels.
func (s *RabbitMQSMSSender) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
