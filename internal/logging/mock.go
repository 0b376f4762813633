package logging

// MockLogger captures log entries for assertion in tests.
type MockLogger struct {
	Entries []LogEntry

	pendingErr    error
	pendingFields []Field
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field{}, m.pendingFields...), fields...),
		Err:     m.pendingErr,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// WithError and WithField share the Entries slice with the parent so tests
// can assert against a single logger regardless of chaining.
func (m *MockLogger) WithError(err error) Logger {
	child := *m
	child.pendingErr = err
	return &withParent{child: child, parent: m}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	child := *m
	child.pendingFields = append(append([]Field{}, m.pendingFields...), Field{Key: key, Value: value})
	return &withParent{child: child, parent: m}
}

// HasEntry reports whether a captured entry matches level and message.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, e := range m.Entries {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}

// withParent forwards records to the root MockLogger while carrying the
// chained error/fields of a derived logger.
type withParent struct {
	child  MockLogger
	parent *MockLogger
}

func (w *withParent) record(level, msg string, fields []Field) {
	w.parent.Entries = append(w.parent.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]Field{}, w.child.pendingFields...), fields...),
		Err:     w.child.pendingErr,
	})
}

func (w *withParent) Debug(msg string, fields ...Field) { w.record("DEBUG", msg, fields) }
func (w *withParent) Info(msg string, fields ...Field)  { w.record("INFO", msg, fields) }
func (w *withParent) Warn(msg string, fields ...Field)  { w.record("WARN", msg, fields) }
func (w *withParent) Error(msg string, fields ...Field) { w.record("ERROR", msg, fields) }

func (w *withParent) WithError(err error) Logger {
	child := w.child
	child.pendingErr = err
	return &withParent{child: child, parent: w.parent}
}

func (w *withParent) WithField(key string, value interface{}) Logger {
	child := w.child
	child.pendingFields = append(append([]Field{}, w.child.pendingFields...), Field{Key: key, Value: value})
	return &withParent{child: child, parent: w.parent}
}
