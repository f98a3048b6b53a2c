package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/forecast"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/report"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/session"
)

// User-visible notices, worded the way the chat shell shows them.
const (
	NoticeFetchFailed = "Valitettavasti en voinut hakea säätietoja Turulle."
	NoticePastLimit   = "Historiatietoja ei ole saatavilla pidemmälle taaksepäin."
	NoticeFutureLimit = "Ennusteita ei ole saatavilla pidemmälle tulevaisuuteen."
	NoticeExpired     = "Istunto on vanhentunut. Hae sää uudelleen."
)

// NavigateError ties a rejected or failed navigation to its user notice.
type NavigateError struct {
	Err    error
	Notice string
}

func (e *NavigateError) Error() string { return e.Err.Error() }
func (e *NavigateError) Unwrap() error { return e.Err }

// Service composes fetch, day selection, and rendering behind the inbound
// triggers. Every query and every accepted navigation step performs a fresh
// fetch; forecasts may have changed between interactions.
type Service struct {
	store    forecast.Fetcher
	sessions *session.Arena
	now      func() time.Time
}

// NewService creates the orchestrator. loc fixes the wall clock used for day
// boundaries; nil means the process-local zone.
func NewService(store forecast.Fetcher, sessions *session.Arena, loc *time.Location) *Service {
	now := time.Now
	if loc != nil {
		now = func() time.Time { return time.Now().In(loc) }
	}
	return &Service{
		store:    store,
		sessions: sessions,
		now:      now,
	}
}

// HandleQuery serves the weather query command: today's report plus a fresh
// navigation session for stepping through adjacent days.
func (s *Service) HandleQuery(ctx context.Context) (report.Report, string, error) {
	rep, err := s.build(ctx, 0)
	if err != nil {
		return report.Report{}, "", err
	}
	return rep, s.sessions.Create(), nil
}

// HandleNavigate applies one navigation action to a session and re-renders
// the report for the resulting day. Rejections come back as *NavigateError
// carrying the notice to show the user.
func (s *Service) HandleNavigate(ctx context.Context, id string, action session.Action) (report.Report, error) {
	var rep report.Report
	_, err := s.sessions.Step(id, action, func(offset int) error {
		var buildErr error
		rep, buildErr = s.build(ctx, offset)
		return buildErr
	})
	if err != nil {
		return report.Report{}, s.navigateError(err, action)
	}
	return rep, nil
}

// DailyReport produces the scheduled day-0 report. No session is created;
// the scheduled publish is not interactive.
func (s *Service) DailyReport(ctx context.Context) (report.Report, error) {
	return s.build(ctx, 0)
}

func (s *Service) build(ctx context.Context, offset int) (report.Report, error) {
	payload, err := s.store.Fetch(ctx, offset)
	if err != nil {
		return report.Report{}, fmt.Errorf("report for day offset %d: %w", offset, err)
	}
	now := s.now()
	day := forecast.ForDay(payload, offset, now)
	return report.Render(day, now), nil
}

func (s *Service) navigateError(err error, action session.Action) error {
	switch {
	case errors.Is(err, session.ErrExpired):
		return &NavigateError{Err: err, Notice: NoticeExpired}
	case errors.Is(err, session.ErrOutOfRange) && action == session.ActionPrevious:
		return &NavigateError{Err: err, Notice: NoticePastLimit}
	case errors.Is(err, session.ErrOutOfRange):
		return &NavigateError{Err: err, Notice: NoticeFutureLimit}
	case errors.Is(err, forecast.ErrFetch):
		return &NavigateError{Err: err, Notice: NoticeFetchFailed}
	default:
		return err
	}
}
