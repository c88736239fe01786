package domain

import (
	"context"
	"time"
)

// Visitor is an append-only analytics record: at most one per IP per local
// calendar day. Entries are never mutated or deleted.
type Visitor struct {
	ID        int64     `json:"id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Page      string    `json:"page"`
	VisitedAt time.Time `json:"visited_at"`
}

type VisitorRepository interface {
	Create(ctx context.Context, visitor *Visitor) error
	ExistsSince(ctx context.Context, ip string, since time.Time) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type VisitorUsecase interface {
	// RecordVisit inserts a log entry unless one already exists for this IP
	// today. The check-then-insert is not atomic; a same-instant race can
	// overcount by one, which is acceptable for advisory analytics.
	RecordVisit(ctx context.Context, ip, userAgent, page string) error
}
