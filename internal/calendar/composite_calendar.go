package calendar

import (
	"errors"
	"fmt"

	"github.com/username/date-tools/pkg/dateutil"
	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: holiday source (file or remote)
// Fallback: usually WeekendCalendar
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date dateutil.CalendarDate) (*DayInfo, error) {
	// Try primary first
	dayInfo, err := cc.primary.GetDayInfo(date)
	if err == nil {
		return dayInfo, nil
	}

	// A day missing from an override source is routine, anything else is not.
	if errors.Is(err, ErrDayNotFound) {
		cc.logger.Debug("Day not in primary calendar, using fallback",
			zap.Stringer("date", date))
	} else {
		cc.logger.Warn("Primary calendar failed, using fallback",
			zap.Stringer("date", date),
			zap.Error(err))
	}

	return cc.fallback.GetDayInfo(date)
}

// LoadPrimary loads the primary calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadPrimary() error {
	if fc, ok := cc.primary.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load holiday calendar: %w", err)
		}
		cc.logger.Info("Holiday calendar loaded successfully")
	}
	return nil
}
