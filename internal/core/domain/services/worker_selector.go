package services

import (
	"errors"

	"dispatch/internal/core/domain/model/worker"
)

// ErrNoWorkerAvailable is returned when the roster holds no active worker.
// It is an expected outcome: the order simply stays pending.
var ErrNoWorkerAvailable = errors.New("no worker available")

// WorkerSelector chooses the worker that should receive the next order.
//
// Ranking, applied to active workers only:
//  1. fewest orders received
//  2. earliest last assignment, a worker who never received one ranks first
//  3. position in the roster, the earlier worker wins
//
// The ranking is recomputed from the current counters on every call, so workers joining,
// leaving or being toggled need no bookkeeping. Select only reads its input.
//
// Example:
//
//	chosen, err := services.NewWorkerSelector().Select(roster)
//	if errors.Is(err, services.ErrNoWorkerAvailable) {
//	    // keep the order pending and tell the admin
//	}
type WorkerSelector struct{}

func NewWorkerSelector() WorkerSelector {
	return WorkerSelector{}
}

// Select returns the best-ranked active worker of the roster.
func (s WorkerSelector) Select(roster []*worker.Worker) (*worker.Worker, error) {
	var best *worker.Worker

	for _, candidate := range roster {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsActive() {
			continue
		}

		if best == nil || ranksBefore(candidate, best) {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrNoWorkerAvailable
	}

	return best, nil
}

// ranksBefore is a strict order; equal workers keep their roster order.
func ranksBefore(a, b *worker.Worker) bool {
	if a.OrdersCount() != b.OrdersCount() {
		return a.OrdersCount() < b.OrdersCount()
	}

	aLast, bLast := a.LastOrderTime(), b.LastOrderTime()
	switch {
	case aLast == nil:
		return bLast != nil
	case bLast == nil:
		return false
	default:
		return aLast.Before(*bLast)
	}
}
