package services

import (
	"context"
	"log"
	"time"
)

type expiredNotificationStore interface {
	DeleteExpired(now time.Time) (int64, error)
}

// NotificationSweeper removes expired notifications in the background, the
// way a document store's TTL index would. Request handlers never trigger it.
type NotificationSweeper struct {
	notifications expiredNotificationStore
	location      *time.Location
	interval      time.Duration
}

func NewNotificationSweeper(notifications expiredNotificationStore, location *time.Location, interval time.Duration) *NotificationSweeper {
	if location == nil {
		location = time.UTC
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &NotificationSweeper{
		notifications: notifications,
		location:      location,
		interval:      interval,
	}
}

func (sweeper *NotificationSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(sweeper.interval)
	go func() {
		defer ticker.Stop()

		sweeper.run()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweeper.run()
			}
		}
	}()
}

func (sweeper *NotificationSweeper) run() {
	removed, err := sweeper.notifications.DeleteExpired(time.Now().In(sweeper.location))
	if err != nil {
		log.Printf("notification sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("notification sweep removed %d expired entries", removed)
	}
}
