package blackoutrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dispatch/internal/core/domain/model/calendar"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// GormBlackoutRepository implements ports.BlackoutRepository using GORM.
type GormBlackoutRepository struct {
	db *gorm.DB
}

// NewGormBlackoutRepository creates a new GORM blackout repository.
func NewGormBlackoutRepository(db *gorm.DB) *GormBlackoutRepository {
	return &GormBlackoutRepository{db: db}
}

// Upsert stores the blackout for its day, replacing any existing entry.
func (r *GormBlackoutRepository) Upsert(ctx context.Context, blackout calendar.Blackout) error {
	if err := blackout.Date().Validate(); err != nil {
		return err
	}

	dto := fromDomain(blackout)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Remove deletes the blackout for the given day. Removing an open day is a
// no-op.
func (r *GormBlackoutRepository) Remove(ctx context.Context, date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&BlackoutDTO{}, "date = ?", date.Time()).Error
}

// Get retrieves the blackout for a day, or an ObjectNotFoundError when the
// day is open.
func (r *GormBlackoutRepository) Get(ctx context.Context, date kernel.Date) (calendar.Blackout, error) {
	if err := date.Validate(); err != nil {
		return calendar.Blackout{}, err
	}

	var dto BlackoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "date = ?", date.Time()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calendar.Blackout{}, errs.NewObjectNotFoundError("blackout", date.String())
		}
		return calendar.Blackout{}, err
	}

	return toDomain(dto)
}

// GetAllBetween retrieves every blackout in [from, to), in date order.
func (r *GormBlackoutRepository) GetAllBetween(
	ctx context.Context, from kernel.Date, to kernel.Date,
) ([]calendar.Blackout, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if err := to.Validate(); err != nil {
		return nil, err
	}

	var dtos []BlackoutDTO
	err := r.db.WithContext(ctx).
		Order("date").
		Find(&dtos, "date >= ? AND date < ?", from.Time(), to.Time()).Error
	if err != nil {
		return nil, err
	}

	blackouts := make([]calendar.Blackout, 0, len(dtos))
	for _, dto := range dtos {
		blackout, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		blackouts = append(blackouts, blackout)
	}

	return blackouts, nil
}
