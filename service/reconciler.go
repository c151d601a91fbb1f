package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Reconciler performs the lazy lifecycle sweep: published events whose end
// has passed become completed, and confirmed bookings of ended events follow.
// Read paths invoke it explicitly before querying, replacing the hidden
// query-hook sweep of earlier iterations of this system. It is best-effort:
// a failed sweep is logged and the read proceeds with possibly stale status.
type Reconciler struct {
	events   EventStore
	bookings BookingStore
	now      func() time.Time
}

func NewReconciler(events EventStore, bookings BookingStore) *Reconciler {
	return &Reconciler{events: events, bookings: bookings, now: time.Now}
}

func (r *Reconciler) Run(ctx context.Context) {
	if r == nil {
		return
	}
	now := r.now()

	if err := r.events.CompleteExpired(ctx, now); err != nil {
		logrus.WithField("error", err.Error()).Warn("event lifecycle sweep failed")
	}

	endedIDs, err := r.events.FindEndedIDs(ctx, now)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("ended-event lookup failed")
		return
	}
	if len(endedIDs) == 0 {
		return
	}
	if err := r.bookings.CompleteForEvents(ctx, endedIDs); err != nil {
		logrus.WithField("error", err.Error()).Warn("booking lifecycle sweep failed")
	}
}
