package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/bot"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/report"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/session"
)

// PublishFunc delivers one rendered report to its destination channel.
type PublishFunc func(ctx context.Context, rep report.Report) error

// Scheduler publishes the day-0 report once per day at a fixed local hour
// and sweeps expired navigation sessions in the background.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *bot.Service
	sessions  *session.Arena
	publish   PublishFunc
	hour      int
	location  *time.Location
}

// New creates a Scheduler firing at the given local hour in loc.
func New(service *bot.Service, sessions *session.Arena, publish PublishFunc, hour int, loc *time.Location) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		service:   service,
		sessions:  sessions,
		publish:   publish,
		hour:      hour,
		location:  loc,
	}
}

// Start registers the daily publish and the session sweep and runs the
// scheduler asynchronously. A failed cycle is logged; the next day's run is
// unaffected.
func (s *Scheduler) Start() error {
	at := fmt.Sprintf("%02d:00", s.hour)
	_, err := s.scheduler.Every(1).Day().At(at).Do(func() {
		log.Println("scheduler: running daily weather publish")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		rep, err := s.service.DailyReport(ctx)
		if err != nil {
			log.Printf("scheduler: daily report failed: %v", err)
			return
		}
		if err := s.publish(ctx, rep); err != nil {
			log.Printf("scheduler: publish failed: %v", err)
			return
		}
		log.Println("scheduler: daily weather publish complete")
	})
	if err != nil {
		return err
	}

	if _, err := s.scheduler.Every(1).Minute().Do(func() {
		if n := s.sessions.Sweep(); n > 0 {
			log.Printf("scheduler: swept %d expired navigation sessions", n)
		}
	}); err != nil {
		return err
	}

	s.scheduler.StartAsync()

	wait := time.Until(NextRun(time.Now().In(s.location), s.hour))
	log.Printf("scheduler: next daily publish in %.1f minutes", wait.Minutes())
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// NextRun returns the next occurrence of the target hour after now. When now
// is at or past today's target, the run lands on tomorrow's occurrence.
func NextRun(now time.Time, hour int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
