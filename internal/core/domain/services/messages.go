package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
)

const messageTimeLayout = "2006-01-02 15:04 MST"

// MessageComposer renders notification texts. Times are shown in the configured location.
type MessageComposer struct {
	location *time.Location
}

// NewMessageComposer falls back to UTC when location is nil.
func NewMessageComposer(location *time.Location) MessageComposer {
	if location == nil {
		location = time.UTC
	}
	return MessageComposer{location: location}
}

// WorkerAssignment is sent to the worker who received the order. It carries the delivery
// facts only, nothing about other workers.
func (c MessageComposer) WorkerAssignment(o *order.Order) string {
	var b strings.Builder
	b.WriteString("New order assigned to you\n\n")
	c.writeOrder(&b, o)
	return b.String()
}

// AdminAssignment confirms to the administrator who got the order.
func (c MessageComposer) AdminAssignment(o *order.Order, w *worker.Worker) string {
	var b strings.Builder
	b.WriteString("New order received\n\n")
	c.writeOrder(&b, o)
	fmt.Fprintf(&b, "\nAssigned to: %s (%s)", w.Name(), w.WhatsAppNumber())
	return b.String()
}

// AdminUnassigned alerts the administrator that nobody could take the order.
func (c MessageComposer) AdminUnassigned(o *order.Order) string {
	var b strings.Builder
	b.WriteString("New order received, no active worker is available\n\n")
	c.writeOrder(&b, o)
	b.WriteString("\nStatus: pending")
	return b.String()
}

func (c MessageComposer) writeOrder(b *strings.Builder, o *order.Order) {
	fmt.Fprintf(b, "Order: %s\n", o.ID())
	fmt.Fprintf(b, "Customer: %s\n", o.CustomerName())
	fmt.Fprintf(b, "Phone: %s\n", o.Phone())
	fmt.Fprintf(b, "Address: %s\n", o.Address())
	fmt.Fprintf(b, "Details: %s\n", o.Details())
	fmt.Fprintf(b, "Time: %s", o.CreatedAt().In(c.location).Format(messageTimeLayout))
}

// WhatsAppLink builds the click-to-chat link that opens a chat with the message prefilled.
// Spaces are encoded as %20, which wa.me requires.
func WhatsAppLink(to kernel.PhoneNumber, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + to.String(),
		RawQuery: "text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20"),
	}
	return u.String()
}
