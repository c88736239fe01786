package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
)

type visitorUsecase struct {
	visitorRepo domain.VisitorRepository
}

func NewVisitorUsecase(visitorRepo domain.VisitorRepository) domain.VisitorUsecase {
	return &visitorUsecase{visitorRepo: visitorRepo}
}

// RecordVisit logs at most one entry per IP per local calendar day. The
// check-then-insert pair is not atomic; concurrent first visits from one IP
// can overcount by one, which is fine for advisory counters.
func (u *visitorUsecase) RecordVisit(ctx context.Context, ip, userAgent, page string) error {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	exists, err := u.visitorRepo.ExistsSince(ctx, ip, dayStart)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return u.visitorRepo.Create(ctx, &domain.Visitor{
		IP:        ip,
		UserAgent: userAgent,
		Page:      page,
		VisitedAt: now,
	})
}
