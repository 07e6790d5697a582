package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	reminderLockTTL = 23 * time.Hour
	reminderTimeout = 2 * time.Minute
)

type ReminderSource interface {
	ListConfirmedBetween(ctx context.Context, start, end time.Time) ([]models.Booking, error)
}

type ReminderNotifier interface {
	Reminder(b *models.Booking)
}

// Reminder emails every client with a CONFIRMED booking tomorrow.
type Reminder struct {
	source   ReminderSource
	notifier ReminderNotifier
	locker   Locker
	loc      *time.Location
	now      func() time.Time
}

func NewReminder(
	source ReminderSource,
	notifier ReminderNotifier,
	locker Locker,
	loc *time.Location,
) *Reminder {
	return &Reminder{
		source:   source,
		notifier: notifier,
		locker:   locker,
		loc:      loc,
		now:      time.Now,
	}
}

// Run returns how many reminders were queued. A run whose lock is held
// elsewhere queues nothing.
func (r *Reminder) Run(ctx context.Context) (int, error) {
	start, end := timezone.DayBounds(r.now().In(r.loc).AddDate(0, 0, 1), r.loc)

	key := "reminder:" + start.Format("2006-01-02")
	ok, err := r.locker.Acquire(ctx, key, reminderLockTTL)
	if err != nil {
		return 0, err
	}
	if !ok {
		log.Printf("[cron] %s already handled by another instance", key)
		return 0, nil
	}

	bookings, err := r.source.ListConfirmedBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	log.Printf("[cron] %d confirmed bookings for %s", len(bookings), start.Format("2006-01-02"))

	sent := 0
	for i := range bookings {
		if bookings[i].Client.Email == "" {
			continue
		}
		r.notifier.Reminder(&bookings[i])
		sent++
	}

	return sent, nil
}

// Schedule registers the job on a cron running in the shop timezone.
// The caller starts and stops the returned scheduler.
func Schedule(spec string, r *Reminder) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(r.loc))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderTimeout)
		defer cancel()

		if _, err := r.Run(ctx); err != nil {
			log.Printf("[cron] reminder failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}
