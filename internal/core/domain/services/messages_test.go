package services_test

import (
	"net/url"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Mona Adel", "12 Nile St", "01001234567", "2x koshary",
		time.Date(2025, 5, 1, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestMessageComposer(t *testing.T) {
	cairo := time.FixedZone("EET", 2*60*60)
	composer := services.NewMessageComposer(cairo)
	o := sampleOrder(t)
	number, err := kernel.NewPhoneNumber("201000000007")
	require.NoError(t, err)
	w, err := worker.NewWorker(kernel.NewUUID(), "Ahmed", number, time.Now())
	require.NoError(t, err)

	t.Run("worker message carries the delivery facts", func(t *testing.T) {
		msg := composer.WorkerAssignment(o)

		for _, want := range []string{o.ID().String(), "Mona Adel", "01001234567", "12 Nile St", "2x koshary", "2025-05-01 20:30 EET"} {
			assert.Contains(t, msg, want)
		}
		assert.NotContains(t, msg, "Assigned to")
	})

	t.Run("admin confirmation names the worker", func(t *testing.T) {
		msg := composer.AdminAssignment(o, w)

		assert.Contains(t, msg, o.ID().String())
		assert.Contains(t, msg, "Assigned to: Ahmed (201000000007)")
	})

	t.Run("admin alert says nobody is available", func(t *testing.T) {
		msg := composer.AdminUnassigned(o)

		assert.Contains(t, msg, "no active worker is available")
		assert.Contains(t, msg, "Status: pending")
	})

	t.Run("nil location means utc", func(t *testing.T) {
		msg := services.NewMessageComposer(nil).WorkerAssignment(o)
		assert.Contains(t, msg, "2025-05-01 18:30 UTC")
	})
}

func TestWhatsAppLink(t *testing.T) {
	number, err := kernel.NewPhoneNumber("+20 100 000 0007")
	require.NoError(t, err)

	link := services.WhatsAppLink(number, "Order: 1 & 2\nTotal: 50+5")

	assert.Equal(t, "https://wa.me/201000000007?text=Order%3A%201%20%26%202%0ATotal%3A%2050%2B5", link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Order: 1 & 2\nTotal: 50+5", parsed.Query().Get("text"))
}
