// Package notifier delivers order notifications. Messages are handed to a RabbitMQ fanout
// exchange for a WhatsApp gateway to pick up, or written to the log when no broker is set up.
package notifier

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// Message is the wire form of one notification.
// Link opens WhatsApp with the text prefilled, for gateways that only forward links.
type Message struct {
	MessageID string    `json:"messageId"`
	To        string    `json:"to"`
	Text      string    `json:"text"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

func newMessage(destination kernel.PhoneNumber, text string, now time.Time) Message {
	return Message{
		MessageID: kernel.NewUUID().String(),
		To:        destination.String(),
		Text:      text,
		Link:      services.WhatsAppLink(destination, text),
		CreatedAt: now.UTC(),
	}
}
