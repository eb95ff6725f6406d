package calendar

import (
	"fmt"

	"github.com/username/date-tools/internal/config"
	"go.uber.org/zap"
)

// New builds the calendar selected by cfg. Holiday sources are always
// backed by the weekend rule for days they do not cover.
func New(cfg *config.CalendarConfig, logger *zap.Logger) (Calendar, error) {
	switch cfg.Type {
	case "", config.CalendarWeekend:
		logger.Debug("Using weekend calendar")
		return NewWeekendCalendar(), nil

	case config.CalendarFile:
		logger.Debug("Using holiday file calendar", zap.String("file", cfg.HolidaysFile))
		compositeCal := NewCompositeCalendar(
			NewFileCalendar(cfg.HolidaysFile, logger),
			NewWeekendCalendar(),
			logger,
		)

		if err := compositeCal.LoadPrimary(); err != nil {
			logger.Warn("Failed to load holiday calendar, continuing with weekend rule only",
				zap.Error(err))
		}
		return compositeCal, nil

	case config.CalendarRemote:
		logger.Debug("Using remote calendar", zap.String("url", cfg.URL))
		remoteCal := NewRemoteCalendar(cfg.URL, cfg.GetCacheTTL(), cfg.GetTimeout(), logger)
		return NewCompositeCalendar(remoteCal, NewWeekendCalendar(), logger), nil

	default:
		return nil, fmt.Errorf("unknown calendar type: %s", cfg.Type)
	}
}
