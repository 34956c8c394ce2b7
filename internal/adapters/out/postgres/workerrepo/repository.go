package workerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkerRepository implements ports.WorkerRepository using GORM.
//
// Every update is a compare-and-set on the version column. Two transactions that loaded the
// same worker cannot both commit a new count: the second UPDATE waits on the row lock, then
// matches no row and reports a ConcurrencyConflictError.
type GormWorkerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWorkerRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkerRepository {
	return &GormWorkerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WorkerDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"name":            dto.Name,
			"whatsapp_number": dto.WhatsAppNumber,
			"status":          dto.Status,
			"orders_count":    dto.OrdersCount,
			"last_order_time": dto.LastOrderTime,
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workerId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("workerId", id.String())
	}
	return nil
}

// GetRoster returns all workers, active or not, ordered by created_at then id.
func (r *GormWorkerRepository) GetRoster(ctx context.Context) ([]*worker.Worker, error) {
	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	roster := make([]*worker.Worker, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		roster = append(roster, w)
	}

	return roster, nil
}

func (r *GormWorkerRepository) missingOrStale(ctx context.Context, aggregate *worker.Worker) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&WorkerDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("workerId", aggregate.ID().String())
	}
	return errs.NewConcurrencyConflictError("worker", aggregate.ID().String(), aggregate.Version())
}
