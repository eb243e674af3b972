package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData accumulates fields and timings for one structured log entry,
// typically one operator action or one audit snapshot.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	fields  map[string]any
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  make(map[string]any),
		logger:  logger,
	}
}

// AddTiming starts a timer; the returned func stops it and records the
// elapsed milliseconds under entryName.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timings[entryName] = elapsed
	}
}

func (l *LogData) AddData(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

// Log builds an entry carrying every accumulated field and timing.
func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, value := range l.fields {
		entry = entry.WithField(key, value)
	}
	for key, value := range l.timings {
		entry = entry.WithField(key, value)
	}

	return entry
}
