package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/username/date-tools/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using day overrides from a local text file.
// Days not listed in the file yield ErrDayNotFound.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[dateutil.CalendarDate]*DayInfo
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[dateutil.CalendarDate]*DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.read(file); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

// read parses lines of the form "DD/MM/YYYY type [note]", for example
// "01/01/2025 holiday New Year's Day". Malformed lines are skipped.
func (fc *FileCalendar) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format",
				zap.Int("line", lineNo),
				zap.String("text", line))
			continue
		}

		date, err := dateutil.Parse(parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date",
				zap.Int("line", lineNo),
				zap.String("date", parts[0]),
				zap.Error(err))
			continue
		}

		dayType, err := ParseDayType(parts[1])
		if err != nil {
			fc.logger.Warn("Unknown day type",
				zap.Int("line", lineNo),
				zap.String("type", parts[1]))
			continue
		}

		fc.data[date] = &DayInfo{
			Date:    date,
			Weekday: dateutil.DayOfWeek(date),
			Type:    dayType,
			Note:    strings.Join(parts[2:], " "),
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}
	return nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date dateutil.CalendarDate) (*DayInfo, error) {
	dayInfo, ok := fc.data[date]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}
	day := *dayInfo
	return &day, nil
}

// Len returns the number of days loaded
func (fc *FileCalendar) Len() int {
	return len(fc.data)
}
