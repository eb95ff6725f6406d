package calendar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/username/date-tools/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// RemoteCalendar implements Calendar using yearly xmlcalendar.ru JSON documents
type RemoteCalendar struct {
	httpClient  *http.Client
	logger      *zap.Logger
	urlTemplate string // {year} is replaced with the requested year
	cacheTTL    time.Duration
	cacheMu     sync.RWMutex
	cache       map[int]*cachedYear
}

type cachedYear struct {
	months    map[int]map[int]rune // month → day → marker
	fetchedAt time.Time
}

// xmlCalendarYear represents xmlcalendar.ru JSON structure
type xmlCalendarYear struct {
	Year   int                `json:"year"`
	Months []xmlCalendarMonth `json:"months"`
}

type xmlCalendarMonth struct {
	Month int    `json:"month"`
	Days  string `json:"days"` // "1*,2,3+,4,8,9,..." where * = shortened, + = transferred
}

// NewRemoteCalendar creates a new RemoteCalendar instance
func NewRemoteCalendar(urlTemplate string, cacheTTL, timeout time.Duration, logger *zap.Logger) *RemoteCalendar {
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	return &RemoteCalendar{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:      logger,
		urlTemplate: urlTemplate,
		cacheTTL:    cacheTTL,
		cache:       make(map[int]*cachedYear),
	}
}

// GetDayInfo returns detailed info for a specific day
func (c *RemoteCalendar) GetDayInfo(date dateutil.CalendarDate) (*DayInfo, error) {
	if !dateutil.IsValidDate(date) {
		return nil, fmt.Errorf("%w: %s", dateutil.ErrInvalidDate, date)
	}

	year, err := c.getYear(date.Year)
	if err != nil {
		return nil, err
	}

	markers, ok := year.months[date.Month]
	if !ok {
		return nil, fmt.Errorf("month %d not found in calendar data for year %d", date.Month, date.Year)
	}

	return classifyDay(date, markers), nil
}

// classifyDay applies the xmlcalendar rules: listed days are non-working
// unless marked '*', unlisted days are working days.
func classifyDay(date dateutil.CalendarDate, markers map[int]rune) *DayInfo {
	dayInfo := weekdayInfo(date)

	marker, listed := markers[date.Day]
	switch {
	case marker == '*':
		dayInfo.Type = DayTypeShortened
		dayInfo.Note = "shortened"
	case listed:
		if !dayInfo.Weekday.IsWeekend() {
			dayInfo.Type = DayTypeHoliday
		}
		if marker == '+' {
			dayInfo.Note = "transferred"
		}
	default:
		// Includes weekends turned into working days by a transfer.
		dayInfo.Type = DayTypeWorkday
	}

	return dayInfo
}

// getYear returns cached year data, downloading it when missing or stale
func (c *RemoteCalendar) getYear(year int) (*cachedYear, error) {
	c.cacheMu.RLock()
	if cached, ok := c.cache[year]; ok {
		if time.Since(cached.fetchedAt) < c.cacheTTL {
			c.cacheMu.RUnlock()
			return cached, nil
		}
	}
	c.cacheMu.RUnlock()

	yearData, err := c.downloadYear(year)
	if err != nil {
		return nil, fmt.Errorf("failed to download calendar data: %w", err)
	}

	cached := &cachedYear{
		months:    make(map[int]map[int]rune, len(yearData.Months)),
		fetchedAt: time.Now(),
	}
	for _, m := range yearData.Months {
		cached.months[m.Month] = c.parseMonthDays(m.Days)
	}

	c.cacheMu.Lock()
	c.cache[year] = cached
	c.cacheMu.Unlock()

	return cached, nil
}

// downloadYear downloads entire year from the configured URL
func (c *RemoteCalendar) downloadYear(year int) (*xmlCalendarYear, error) {
	url := strings.ReplaceAll(c.urlTemplate, "{year}", strconv.Itoa(year))

	c.logger.Info("Downloading calendar data",
		zap.String("url", url),
		zap.Int("year", year))

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}

	var yearData xmlCalendarYear
	if err := json.NewDecoder(resp.Body).Decode(&yearData); err != nil {
		return nil, fmt.Errorf("failed to parse calendar JSON: %w", err)
	}

	if yearData.Year != 0 && yearData.Year != year {
		return nil, fmt.Errorf("calendar data is for year %d, requested %d", yearData.Year, year)
	}

	c.logger.Info("Calendar data downloaded",
		zap.Int("year", year),
		zap.Int("months", len(yearData.Months)))

	return &yearData, nil
}

// parseMonthDays parses xmlcalendar.ru compact format
// Format: "1*,2,3+,4,8,9,15,16,22,23,29,30"
// * = shortened day, + = transferred day, others = weekends/holidays
func (c *RemoteCalendar) parseMonthDays(days string) map[int]rune {
	markers := make(map[int]rune) // day → marker (* or + or 0)

	for _, part := range strings.Split(days, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		marker := rune(0)
		dayStr := part

		// Check for markers
		if strings.HasSuffix(part, "*") {
			marker = '*'
			dayStr = strings.TrimSuffix(part, "*")
		} else if strings.HasSuffix(part, "+") {
			marker = '+'
			dayStr = strings.TrimSuffix(part, "+")
		}

		day, err := strconv.Atoi(dayStr)
		if err != nil {
			c.logger.Warn("Failed to parse day number",
				zap.String("part", part),
				zap.Error(err))
			continue
		}

		markers[day] = marker
	}

	return markers
}

// ClearCache clears the cache
func (c *RemoteCalendar) ClearCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache = make(map[int]*cachedYear)
	c.logger.Info("Calendar cache cleared")
}
