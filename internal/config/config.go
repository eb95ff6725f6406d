package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Calendar source types
const (
	CalendarWeekend = "weekend"
	CalendarFile    = "file"
	CalendarRemote  = "remote"
)

// Config represents application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Memory    MemoryConfig    `mapstructure:"memory"`
	Countdown CountdownConfig `mapstructure:"countdown"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // rotated JSON log when set
	Level string `mapstructure:"level"`
}

// CalendarConfig represents working-day calendar configuration
type CalendarConfig struct {
	Type         string `mapstructure:"type"` // "weekend", "file" or "remote"
	HolidaysFile string `mapstructure:"holidays_file"`
	URL          string `mapstructure:"url"` // xmlcalendar JSON, {year} is substituted
	CacheTTL     string `mapstructure:"cache_ttl"`
	Timeout      string `mapstructure:"timeout"`
}

// MemoryConfig represents memory report configuration
type MemoryConfig struct {
	ProcPath      string `mapstructure:"proc_path"`
	GraphLength   int    `mapstructure:"graph_length"`
	DecimalPlaces int    `mapstructure:"decimal_places"`
}

// CountdownConfig represents countdown timer configuration
type CountdownConfig struct {
	From     int    `mapstructure:"from"`
	Interval string `mapstructure:"interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("calendar.type", CalendarWeekend)
	v.SetDefault("calendar.holidays_file", "holidays.txt")
	v.SetDefault("calendar.url", "https://xmlcalendar.ru/data/ru/{year}/calendar.json")
	v.SetDefault("calendar.cache_ttl", "24h")
	v.SetDefault("calendar.timeout", "10s")
	v.SetDefault("memory.proc_path", "/proc")
	v.SetDefault("memory.graph_length", 20)
	v.SetDefault("memory.decimal_places", 2)
	v.SetDefault("countdown.from", 3)
	v.SetDefault("countdown.interval", "1s")
}

// Load loads configuration from file. An empty path searches the default
// locations and falls back to built-in defaults when no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.date-tools")
		v.AddConfigPath("/etc/date-tools")
	}

	// Read environment variables, e.g. DATE_TOOLS_CALENDAR_TYPE
	v.SetEnvPrefix("date_tools")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration and reports every problem found
func (c *Config) Validate() error {
	var err error

	switch c.Calendar.Type {
	case CalendarWeekend:
	case CalendarFile:
		if c.Calendar.HolidaysFile == "" {
			err = multierr.Append(err, fmt.Errorf("calendar.holidays_file is required for file type"))
		}
	case CalendarRemote:
		if c.Calendar.URL == "" {
			err = multierr.Append(err, fmt.Errorf("calendar.url is required for remote type"))
		} else if !strings.Contains(c.Calendar.URL, "{year}") {
			err = multierr.Append(err, fmt.Errorf("calendar.url must contain a {year} placeholder"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("calendar.type must be 'weekend', 'file' or 'remote', got '%s'", c.Calendar.Type))
	}

	if c.Memory.ProcPath == "" {
		err = multierr.Append(err, fmt.Errorf("memory.proc_path is required"))
	}
	if c.Memory.GraphLength <= 0 {
		err = multierr.Append(err, fmt.Errorf("memory.graph_length must be positive"))
	}
	if c.Memory.DecimalPlaces < 0 {
		err = multierr.Append(err, fmt.Errorf("memory.decimal_places must not be negative"))
	}

	if c.Countdown.From < 0 {
		err = multierr.Append(err, fmt.Errorf("countdown.from must not be negative"))
	}

	return err
}

// GetCacheTTL returns remote calendar cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	return parseDuration(c.CacheTTL, 24*time.Hour)
}

// GetTimeout returns remote calendar HTTP timeout
func (c *CalendarConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 10*time.Second)
}

// GetInterval returns the countdown tick interval
func (c *CountdownConfig) GetInterval() time.Duration {
	return parseDuration(c.Interval, time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil || duration < 0 {
		return fallback
	}
	return duration
}

// ExpandEnvVars expands environment variables in path-like settings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Memory.ProcPath = os.ExpandEnv(c.Memory.ProcPath)
}
