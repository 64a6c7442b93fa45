package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData accumulates fields and timings over the life of one request so the
// handler can emit a single structured line at the end instead of scattering
// log statements through the call path.
type LogData struct {
	mu        sync.Mutex
	timingsMs map[string]int64
	fields    map[string]interface{}
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timingsMs: make(map[string]int64),
		fields:    make(map[string]interface{}),
		logger:    logger,
	}
}

// AddTiming starts a timer for entryName and returns the function that stops
// it and records the elapsed milliseconds.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timingsMs[entryName] = elapsed
	}
}

// AddData records a key/value pair for the final log line.
func (l *LogData) AddData(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

// Log returns an entry carrying everything accumulated so far.
func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := logrus.NewEntry(l.logger)
	for key, value := range l.fields {
		entry = entry.WithField(key, value)
	}
	for key, value := range l.timingsMs {
		entry = entry.WithField(key, value)
	}
	return entry
}
