package repositories

import (
	"sync/atomic"

	"travelgateway/internal/domain/models"
)

// PlanRepository holds the most recently generated travel plan.
// A Save replaces whatever was there before; there is no delete.
type PlanRepository interface {
	Save(rec models.TravelPlanRecord)
	Latest() (models.TravelPlanRecord, bool)
}

// LatestPlanSlot is an in-memory PlanRepository. The whole record is swapped
// through one atomic pointer so readers never observe a half-written plan.
type LatestPlanSlot struct {
	cur atomic.Pointer[models.TravelPlanRecord]
}

func NewLatestPlanSlot() *LatestPlanSlot {
	return &LatestPlanSlot{}
}

func (s *LatestPlanSlot) Save(rec models.TravelPlanRecord) {
	stored := rec.Clone()
	s.cur.Store(&stored)
}

func (s *LatestPlanSlot) Latest() (models.TravelPlanRecord, bool) {
	p := s.cur.Load()
	if p == nil {
		return models.TravelPlanRecord{}, false
	}
	return p.Clone(), true
}
