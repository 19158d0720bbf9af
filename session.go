package perfband

import (
	"io"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const unnamedLabel = "(unnamed)"

// Sample is one recorded region measurement.
type Sample struct {
	// Label is the human-readable name of the region, not required to be unique
	Label string

	// Elapsed is the wall-clock time spent in the region
	Elapsed time.Duration

	// Bytes is the number of bytes processed in the region, meaningful only
	// when HasBytes is set
	Bytes    uint64
	HasBytes bool
}

// Session is an accumulator of samples, bounded by Begin and End calls.
// It is safe for concurrent use: one mutex serializes Begin, Record and End,
// and Record holds it only for a single append.
//
// Recording is best-effort diagnostics. No session operation returns an
// error or panics, so instrumentation can never alter the control flow of
// the host program.
type Session struct {
	mu        sync.Mutex
	active    bool
	startTime time.Time
	samples   []Sample

	out   io.Writer
	unit  TimeUnit
	color bool
	stats bool
}

type SessionOption func(s *Session)

// WithOutput sets the writer EndAndPrint renders the report to.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		s.out = w
	}
}

// WithTimeUnit sets the unit used for elapsed-time columns.
func WithTimeUnit(unit TimeUnit) SessionOption {
	return func(s *Session) {
		s.unit = unit
	}
}

// WithColor enables the colored session banners.
func WithColor(enabled bool) SessionOption {
	return func(s *Session) {
		s.color = enabled
	}
}

// WithStats makes EndAndPrint render the per-label aggregate table after the
// sample table.
func WithStats(enabled bool) SessionOption {
	return func(s *Session) {
		s.stats = enabled
	}
}

// NewSession creates an inactive session. The report is written to stdout
// unless WithOutput overrides it.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		out:  os.Stdout,
		unit: TimeUnitAuto,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Begin activates the session and records its start time.
// Calling Begin on an already active session restarts it, discarding any
// samples not yet reported. This is the documented behavior, not a bug.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && len(s.samples) > 0 {
		log.Debugf("session restarted, discarding %d unreported samples", len(s.samples))
	}

	s.active = true
	s.startTime = time.Now()
	s.samples = nil

	if s.color {
		descSession("begin", s.startTime.Format(time.StampMilli))
	}
}

// Record appends a sample for the given label.
// Recording outside an active session is a silent no-op, so instrumented
// code outside a Begin/End bracket never crashes the host program.
func (s *Session) Record(label string, elapsed time.Duration) {
	s.append(Sample{Label: label, Elapsed: elapsed})
}

// RecordBytes appends a sample with a byte count attached, so the report can
// derive the region's throughput.
func (s *Session) RecordBytes(label string, elapsed time.Duration, bytes uint64) {
	s.append(Sample{Label: label, Elapsed: elapsed, Bytes: bytes, HasBytes: true})
}

func (s *Session) append(sample Sample) {
	if sample.Label == "" {
		sample.Label = unnamedLabel
	}

	if sample.Elapsed < 0 {
		sample.Elapsed = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		log.Debugf("dropping sample %q recorded outside an active session", sample.Label)
		return
	}

	s.samples = append(s.samples, sample)
}

// End deactivates the session and drains its samples into a Report,
// preserving recording order. Ending an inactive session yields an empty
// report.
func (s *Session) End() *Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &Report{Samples: s.samples}
	if s.active {
		r.Span = time.Since(s.startTime)
	}

	s.active = false
	s.samples = nil
	return r
}

// EndAndPrint ends the session and renders the report as a table on the
// session output. This terminates the session: a subsequent EndAndPrint
// with no intervening Begin prints an empty report.
func (s *Session) EndAndPrint() {
	r := s.End()

	if s.color {
		descSession("report", r.Summary())
	}

	r.render(s.out, s.unit)

	if s.stats {
		r.RenderStats(s.out)
	}
}
