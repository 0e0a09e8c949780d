// Package blackoutrepo persists operator blackouts with GORM. Blackouts are
// value objects keyed by calendar day; the table holds one row per closed day
// with the blocked slots stored as a text array.
package blackoutrepo

import (
	"time"

	"github.com/lib/pq"

	"dispatch/internal/core/domain/model/calendar"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// BlackoutDTO is the database row for a blackout. An empty slots array means
// the whole day is closed.
type BlackoutDTO struct {
	Date   time.Time      `gorm:"primaryKey"`
	Reason string         `gorm:"type:varchar(255)"`
	Slots  pq.StringArray `gorm:"type:text[]"`
}

// TableName overrides GORM's default naming convention.
func (BlackoutDTO) TableName() string {
	return "blackouts"
}

func fromDomain(blackout calendar.Blackout) BlackoutDTO {
	slots := blackout.Slots()
	names := make(pq.StringArray, 0, len(slots))
	for _, slot := range slots {
		names = append(names, slot.String())
	}

	return BlackoutDTO{
		Date:   blackout.Date().Time(),
		Reason: blackout.Reason(),
		Slots:  names,
	}
}

func toDomain(dto BlackoutDTO) (calendar.Blackout, error) {
	slots := make([]order.TimeSlot, 0, len(dto.Slots))
	for _, name := range dto.Slots {
		slot, err := order.TimeSlotFromString(name)
		if err != nil {
			return calendar.Blackout{}, err
		}
		slots = append(slots, slot)
	}

	return calendar.NewBlackout(kernel.NewDate(dto.Date), dto.Reason, slots)
}
