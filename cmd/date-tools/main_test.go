package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/date-tools/internal/calendar"
	"gopkg.in/yaml.v3"
)

// writeConfig writes a config file with the given extra YAML and returns
// its path.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "log:\n  level: error\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configFile}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestDateCommands(t *testing.T) {
	configFile := writeConfig(t, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"End date forward", []string{"enddate", "31/12/1999", "1"}, "The end date is Sat, 01/01/2000.\n"},
		{"End date backward", []string{"enddate", "01/03/2024", "-1"}, "The end date is Thu, 29/02/2024.\n"},
		{"End date zero", []string{"enddate", "1/1/2000", "0"}, "The end date is Sat, 01/01/2000.\n"},
		{"Weekends", []string{"weekends", "01/01/2024", "07/01/2024"}, "The period between 01/01/2024 and 07/01/2024 includes 2 weekend days.\n"},
		{"Weekends swapped", []string{"weekends", "07/01/2024", "01/01/2024"}, "The period between 01/01/2024 and 07/01/2024 includes 2 weekend days.\n"},
		{"Weekends across years", []string{"weekends", "01/01/2024", "31/12/2023"}, "The period between 31/12/2023 and 01/01/2024 includes 1 weekend days.\n"},
		{"Weekday", []string{"weekday", "29/02/2024"}, "29/02/2024 is a Thu.\n"},
		{"Workdays", []string{"workdays", "01/01/2024", "07/01/2024"}, "The period between 01/01/2024 and 07/01/2024 includes 5 working days.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, configFile, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	configFile := writeConfig(t, "")

	tests := []struct {
		name string
		args []string
	}{
		{"End date missing offset", []string{"enddate", "01/01/2000"}},
		{"End date invalid date", []string{"enddate", "29/02/2023", "1"}},
		{"End date bad offset", []string{"enddate", "01/01/2000", "ten"}},
		{"End date too many", []string{"enddate", "01/01/2000", "1", "2"}},
		{"Weekends malformed", []string{"weekends", "2024-01-01", "07/01/2024"}},
		{"Weekday invalid month", []string{"weekday", "01/13/2024"}},
		{"Workdays one date", []string{"workdays", "01/01/2024"}},
		{"Month malformed", []string{"month", "2024"}},
		{"Month unknown format", []string{"month", "01/2024", "--format", "xml"}},
		{"Countdown not a number", []string{"countdown", "three"}},
		{"Weekday year too large", []string{"weekday", "01/03/9223372036854775807"}},
		{"End date offset smallest int", []string{"enddate", "01/01/2000", "-9223372036854775808"}},
		{"End date before year one", []string{"enddate", "01/01/0001", "-1"}},
		{"Memory graph length", []string{"memory", "--length", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, configFile, tt.args...)
			assert.Error(t, err)
			assert.Contains(t, got, "Usage:")
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.yaml"), "weekday", "01/01/2000")
	assert.Error(t, err)
}

func TestMonthCommand(t *testing.T) {
	configFile := writeConfig(t, "")

	t.Run("Text", func(t *testing.T) {
		got, err := execute(t, configFile, "month", "01/2024")
		require.NoError(t, err)

		lines := strings.Split(got, "\n")
		assert.Equal(t, "01/2024: 23 working days, 8 weekend days, 0 holidays", lines[0])
		assert.Equal(t, "", lines[1])
		assert.Equal(t, "  01/01/2024 Mon workday", lines[2])
		assert.Contains(t, got, "  07/01/2024 Sun weekend\n\n  08/01/2024 Mon workday\n")
	})

	t.Run("JSON", func(t *testing.T) {
		got, err := execute(t, configFile, "month", "02/2024", "--format", "json")
		require.NoError(t, err)

		var view monthView
		require.NoError(t, json.Unmarshal([]byte(got), &view))
		assert.Equal(t, 2024, view.Year)
		assert.Equal(t, 2, view.Month)
		assert.Equal(t, 21, view.WorkDays)
		assert.Len(t, view.Days, 29)
		assert.Equal(t, dayView{Date: "29/02/2024", Weekday: "Thu", Type: "workday"}, view.Days[28])
	})

	t.Run("YAML", func(t *testing.T) {
		got, err := execute(t, configFile, "month", "06/2024", "-f", "yaml")
		require.NoError(t, err)

		var view monthView
		require.NoError(t, yaml.Unmarshal([]byte(got), &view))
		assert.Equal(t, 20, view.WorkDays)
		assert.Equal(t, 10, view.Weekends)
		assert.Len(t, view.Days, 30)
	})
}

var errWriteFailed = errors.New("write failed")

// failingWriter accepts ok writes and fails every write after that
type failingWriter struct {
	ok int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errWriteFailed
	}
	w.ok--
	return len(p), nil
}

func TestWriteMonthText_WriteErrors(t *testing.T) {
	monthInfo, err := calendar.GetMonthInfo(calendar.NewWeekendCalendar(), 2024, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		ok   int
	}{
		{"Header", 0},
		{"Week separator", 1},
		{"Day line", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writeMonthText(&failingWriter{ok: tt.ok}, monthInfo)
			assert.ErrorIs(t, err, errWriteFailed)
		})
	}
}

func TestMonthCommand_HolidayFile(t *testing.T) {
	holidays := filepath.Join(t.TempDir(), "holidays.txt")
	require.NoError(t, os.WriteFile(holidays, []byte("01/01/2024 holiday New Year\n06/01/2024 workday\n"), 0o644))

	configFile := writeConfig(t, fmt.Sprintf("calendar:\n  type: file\n  holidays_file: %s\n", holidays))

	got, err := execute(t, configFile, "month", "01/2024")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "01/2024: 23 working days, 7 weekend days, 1 holidays\n"))
	assert.Contains(t, got, "  01/01/2024 Mon holiday (New Year)\n")

	got, err = execute(t, configFile, "workdays", "01/01/2024", "07/01/2024")
	require.NoError(t, err)
	assert.Equal(t, "The period between 01/01/2024 and 07/01/2024 includes 5 working days.\n", got)
}

func TestMemoryCommand(t *testing.T) {
	proc := t.TempDir()
	meminfo := "MemTotal:           1024 kB\nMemFree:             100 kB\nMemAvailable:        768 kB\n"
	require.NoError(t, os.WriteFile(filepath.Join(proc, "meminfo"), []byte(meminfo), 0o644))

	pidDir := filepath.Join(proc, "42")
	require.NoError(t, os.MkdirAll(pidDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pidDir, "comm"), []byte("editor\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(pidDir, "smaps_rollup"),
		[]byte("00400000-ffffffffff601000 ---p 00000000 00:00 0    [rollup]\nRss:   512 kB\n"), 0o644))

	configFile := writeConfig(t, fmt.Sprintf("memory:\n  proc_path: %s\n  graph_length: 4\n", proc))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"System", []string{"memory"}, "Memory         [#   | 25%] 256/1024\n"},
		{"Length flag", []string{"memory", "-l", "8"}, "Memory         [##      | 25%] 256/1024\n"},
		{"Human", []string{"memory", "-H"}, "Memory         [#   | 25%] 256.00 KiB/1.00 MiB\n"},
		{"Program", []string{"memory", "editor"}, "42         [##  | 50%] 512/1024\neditor     [##  | 50%] 512/1024\n"},
		{"Not found", []string{"memory", "compiler"}, "compiler not found.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, configFile, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountdownCommand(t *testing.T) {
	configFile := writeConfig(t, "countdown:\n  interval: 0s\n")

	got, err := execute(t, configFile, "countdown")
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n1\nblast off!\n", got)

	got, err = execute(t, configFile, "countdown", "--interval", "1ms", "2")
	require.NoError(t, err)
	assert.Equal(t, "2\n1\nblast off!\n", got)
}
