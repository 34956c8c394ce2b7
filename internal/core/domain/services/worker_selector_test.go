package services_test

import (
	"math/rand"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

func restoreWorker(t *testing.T, name string, status worker.Status, count int, last *time.Time) *worker.Worker {
	t.Helper()
	number, err := kernel.NewPhoneNumber("201000000001")
	require.NoError(t, err)
	w, err := worker.RestoreWorker(kernel.NewUUID(), name, number, status, count, last, base, 0)
	require.NoError(t, err)
	return w
}

func at(d time.Duration) *time.Time {
	t := base.Add(d)
	return &t
}

func TestWorkerSelector_Scenarios(t *testing.T) {
	selector := services.NewWorkerSelector()

	t.Run("least loaded wins", func(t *testing.T) {
		w1 := restoreWorker(t, "W1", worker.Active, 0, nil)
		w2 := restoreWorker(t, "W2", worker.Active, 2, at(time.Hour))
		w3 := restoreWorker(t, "W3", worker.Active, 1, at(time.Minute))

		chosen, err := selector.Select([]*worker.Worker{w1, w2, w3})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(w1))
	})

	t.Run("equal load goes to the earlier last order", func(t *testing.T) {
		w1 := restoreWorker(t, "W1", worker.Active, 1, at(time.Minute))
		w2 := restoreWorker(t, "W2", worker.Active, 1, at(time.Hour))

		chosen, err := selector.Select([]*worker.Worker{w2, w1})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(w1))
	})

	t.Run("only inactive workers means none available", func(t *testing.T) {
		w1 := restoreWorker(t, "W1", worker.Inactive, 0, nil)

		chosen, err := selector.Select([]*worker.Worker{w1})

		require.ErrorIs(t, err, services.ErrNoWorkerAvailable)
		assert.Nil(t, chosen)
	})

	t.Run("empty roster means none available", func(t *testing.T) {
		_, err := selector.Select(nil)
		require.ErrorIs(t, err, services.ErrNoWorkerAvailable)
	})

	t.Run("never assigned outranks assigned on equal load", func(t *testing.T) {
		veteran := restoreWorker(t, "veteran", worker.Active, 3, at(time.Second))
		newcomer := restoreWorker(t, "newcomer", worker.Active, 3, nil)

		chosen, err := selector.Select([]*worker.Worker{veteran, newcomer})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(newcomer))
	})

	t.Run("full tie keeps roster order", func(t *testing.T) {
		first := restoreWorker(t, "first", worker.Active, 2, at(time.Minute))
		second := restoreWorker(t, "second", worker.Active, 2, at(time.Minute))

		chosen, err := selector.Select([]*worker.Worker{first, second})
		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(first))

		chosen, err = selector.Select([]*worker.Worker{second, first})
		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(second))
	})

	t.Run("inactive least loaded worker is skipped", func(t *testing.T) {
		idle := restoreWorker(t, "idle", worker.Inactive, 0, nil)
		busy := restoreWorker(t, "busy", worker.Active, 9, at(time.Hour))

		chosen, err := selector.Select([]*worker.Worker{idle, busy})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(busy))
	})

	t.Run("zero value worker is rejected", func(t *testing.T) {
		_, err := selector.Select([]*worker.Worker{{}})
		require.ErrorIs(t, err, worker.ErrWorkerIsNotConstructed)
	})
}

// randomRoster builds rosters with many collisions on count and time.
func randomRoster(t *testing.T, rnd *rand.Rand) []*worker.Worker {
	t.Helper()
	size := rnd.Intn(8)
	roster := make([]*worker.Worker, 0, size)
	for _n := 0; _n < size; _n++ {
		status := worker.Active
		if rnd.Intn(3) == 0 {
			status = worker.Inactive
		}
		count := rnd.Intn(4)
		var last *time.Time
		if count > 0 && rnd.Intn(4) != 0 {
			last = at(time.Duration(rnd.Intn(3)) * time.Minute)
		}
		roster = append(roster, restoreWorker(t, "w", status, count, last))
	}
	return roster
}

func TestWorkerSelector_Properties(t *testing.T) {
	selector := services.NewWorkerSelector()
	rnd := rand.New(rand.NewSource(20250501)) //nolint:gosec // deterministic fixtures

	for i := 0; i < 500; i++ {
		roster := randomRoster(t, rnd)

		type snapshot struct {
			count int
			last  *time.Time
			state worker.Status
		}
		before := make([]snapshot, len(roster))
		for j, w := range roster {
			before[j] = snapshot{w.OrdersCount(), w.LastOrderTime(), w.Status()}
		}

		chosen, err := selector.Select(roster)
		again, againErr := selector.Select(roster)

		var active []*worker.Worker
		for _, w := range roster {
			if w.IsActive() {
				active = append(active, w)
			}
		}

		if len(active) == 0 {
			require.ErrorIs(t, err, services.ErrNoWorkerAvailable, "roster %d", i)
			continue
		}
		require.NoError(t, err, "roster %d", i)
		require.True(t, chosen.IsActive(), "roster %d: chosen worker must be active", i)

		for _, w := range active {
			require.LessOrEqual(t, chosen.OrdersCount(), w.OrdersCount(), "roster %d: minimum count", i)

			if w.OrdersCount() != chosen.OrdersCount() {
				continue
			}
			switch {
			case chosen.LastOrderTime() == nil:
			case w.LastOrderTime() == nil:
				t.Fatalf("roster %d: never-assigned worker lost a tie", i)
			default:
				require.False(t, w.LastOrderTime().Before(*chosen.LastOrderTime()), "roster %d: earliest last order", i)
			}
		}

		require.NoError(t, againErr)
		assert.True(t, chosen.IsEqual(again), "roster %d: same input, same output", i)

		for j, w := range roster {
			assert.Equal(t, before[j], snapshot{w.OrdersCount(), w.LastOrderTime(), w.Status()}, "roster %d: input mutated", i)
		}
	}
}
