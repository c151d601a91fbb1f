// Package notifier publishes booking lifecycle events to Kafka for downstream
// consumers (mail, analytics). Publishing is best-effort: failures are logged
// and never surface to the request that triggered them.
package notifier

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"booking-platform/model"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingDeleted   = "booking.deleted"
)

// Message is the wire format published to the bookings topic.
type Message struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	BookingID        string    `json:"bookingId"`
	BookingReference string    `json:"bookingReference"`
	EventID          string    `json:"eventId"`
	UserID           string    `json:"userId"`
	SeatsBooked      int64     `json:"seatsBooked"`
	TotalAmount      float64   `json:"totalAmount"`
	OccurredAt       time.Time `json:"occurredAt"`
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func New(brokers []string, topic string) (*Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: producer, topic: topic}, nil
}

func (p *Producer) BookingCreated(booking *model.Booking) {
	p.publish(TypeBookingCreated, booking)
}

func (p *Producer) BookingCancelled(booking *model.Booking) {
	p.publish(TypeBookingCancelled, booking)
}

func (p *Producer) BookingDeleted(booking *model.Booking) {
	p.publish(TypeBookingDeleted, booking)
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

func (p *Producer) publish(msgType string, booking *model.Booking) {
	payload, err := json.Marshal(Message{
		ID:               uuid.NewString(),
		Type:             msgType,
		BookingID:        booking.ID.Hex(),
		BookingReference: booking.BookingReference,
		EventID:          booking.EventID.Hex(),
		UserID:           booking.UserID.Hex(),
		SeatsBooked:      booking.SeatsBooked,
		TotalAmount:      booking.TotalAmount,
		OccurredAt:       time.Now(),
	})
	if err != nil {
		return
	}

	// Keyed by booking id so all events of one booking stay ordered.
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(booking.ID.Hex()),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"type":      msgType,
			"bookingId": booking.ID.Hex(),
			"error":     err.Error(),
		}).Warn("booking notification publish failed")
	}
}
