package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	LogLevel    string
	WeekendDays string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults cover local runs with no environment set up.
	env := Config{
		LogLevel:    "info",
		WeekendDays: "Saturday,Sunday",
	}

	envLogLevel := os.Getenv("LEDGER_LOG_LEVEL")
	envWeekendDays := os.Getenv("LEDGER_WEEKEND_DAYS")

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(envWeekendDays) != 0 {
		env.WeekendDays = envWeekendDays
	}

	if _, err := env.Weekend(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Weekend parses WeekendDays into weekday values.
func (c *Config) Weekend() ([]time.Weekday, error) {
	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	var days []time.Weekday
	for _, part := range strings.Split(c.WeekendDays, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		day, ok := names[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, day)
	}
	return days, nil
}
