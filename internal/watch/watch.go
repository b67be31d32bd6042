// Package watch polls folders of numbered frames on a fixed interval and
// publishes sequence state through logs and metrics. There is no filesystem
// event subscription; render farms commonly write over NFS where inotify is
// unreliable, so a plain poll is the portable choice.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dwikygilang/framecheck/internal/observability"
	"github.com/dwikygilang/framecheck/internal/render"
	"github.com/dwikygilang/framecheck/internal/scan"
	"github.com/dwikygilang/framecheck/pkg/sequence"
)

// defaultInterval is used when the config carries no poll interval.
const defaultInterval = 5 * time.Second

const opWatchCheck = "watch.check"

// ErrNoFolders indicates a watcher configured without any folder to poll.
var ErrNoFolders = errors.New("no folders to watch")

// Status is the settled state of one watched folder.
type Status int

const (
	// StatusIdle means the folder has not been checked yet.
	StatusIdle Status = iota
	// StatusChecking means a check is in progress.
	StatusChecking
	// StatusComplete means the sequence has no gaps.
	StatusComplete
	// StatusMissing means the sequence has at least one gap.
	StatusMissing
	// StatusNoFrames means no frame files matched the format filter.
	StatusNoFrames
	// StatusError means the folder could not be read.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusChecking:
		return "checking"
	case StatusComplete:
		return "complete"
	case StatusMissing:
		return "missing"
	case StatusNoFrames:
		return "no frames"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Slot is the latest observed state of one watched folder.
type Slot struct {
	Path      string
	Status    Status
	Report    sequence.Report
	CheckedAt time.Time
	Err       error
}

// Config assembles a Watcher. Logger, RED and Frames may be nil; a nil
// logger discards and nil metrics record nothing.
type Config struct {
	Folders    []string
	Formats    []string
	AutoDetect bool
	Interval   time.Duration

	Logger *slog.Logger
	RED    *observability.REDMetrics
	Frames *observability.CheckMetrics
}

// Watcher polls a fixed folder set. All checks run on the Run goroutine;
// Snapshot and StatusHandler may be called from any goroutine.
type Watcher struct {
	opts     sequence.Options
	interval time.Duration
	logger   *slog.Logger
	red      *observability.REDMetrics
	frames   *observability.CheckMetrics

	mu    sync.RWMutex
	slots []Slot
}

// New validates the config and builds a Watcher with every folder idle.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Folders) == 0 {
		return nil, ErrNoFolders
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Seed each slot with an empty report so the status endpoint serves a
	// valid document before the first sweep lands.
	slots := make([]Slot, len(cfg.Folders))
	for i, folder := range cfg.Folders {
		slots[i] = Slot{Path: folder, Status: StatusIdle, Report: sequence.Analyze(nil, sequence.Options{})}
	}

	return &Watcher{
		opts: sequence.Options{
			Formats:          cfg.Formats,
			DisableDetection: !cfg.AutoDetect,
		},
		interval: interval,
		logger:   logger,
		red:      cfg.RED,
		frames:   cfg.Frames,
		slots:    slots,
	}, nil
}

// Run sweeps immediately, then on every tick until the context is canceled.
// Cancellation is the normal way to stop and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "watch started",
		"folders", len(w.slots),
		"interval", w.interval.String(),
	)

	w.Sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "watch stopped")

			return nil
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep checks every folder once. Run drives it from the tick loop; it is
// exported so tests and one-shot callers can run a cycle directly.
func (w *Watcher) Sweep(ctx context.Context) {
	for i := range w.slots {
		w.checkSlot(ctx, i)
	}
}

func (w *Watcher) checkSlot(ctx context.Context, i int) {
	w.mu.Lock()
	prev := w.slots[i]
	w.slots[i].Status = StatusChecking
	w.mu.Unlock()

	done := w.red.TrackInflight(ctx, opWatchCheck)
	defer done()

	start := time.Now()

	names, err := scan.List(prev.Path)
	if err != nil {
		w.red.RecordRequest(ctx, opWatchCheck, observability.StatusError, time.Since(start))

		cur := Slot{Path: prev.Path, Status: StatusError, Report: prev.Report, CheckedAt: time.Now(), Err: err}
		w.store(i, cur)

		w.logger.ErrorContext(ctx, "folder check failed", "folder", prev.Path, "error", err)

		return
	}

	report := sequence.Analyze(names, w.opts)

	w.red.RecordRequest(ctx, opWatchCheck, observability.StatusOK, time.Since(start))
	w.frames.RecordReport(ctx, prev.Path, report)

	cur := Slot{Path: prev.Path, Status: statusOf(report), Report: report, CheckedAt: time.Now()}
	w.store(i, cur)

	// State transitions surface at info; steady state stays at debug so a
	// long-running watch does not flood the log.
	level := slog.LevelDebug
	if cur.Status != prev.Status || len(cur.Report.Missing) != len(prev.Report.Missing) {
		level = slog.LevelInfo
	}

	w.logger.Log(ctx, level, "sequence state",
		"folder", cur.Path,
		"status", cur.Status.String(),
		"found", cur.Report.FoundCount,
		"missing", len(cur.Report.Missing),
		"completeness", cur.Report.Completeness,
	)
}

func (w *Watcher) store(i int, s Slot) {
	w.mu.Lock()
	w.slots[i] = s
	w.mu.Unlock()
}

func statusOf(r sequence.Report) Status {
	switch {
	case r.Empty():
		return StatusNoFrames
	case r.Complete():
		return StatusComplete
	default:
		return StatusMissing
	}
}

// Snapshot copies the current state of every watched folder.
func (w *Watcher) Snapshot() []Slot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Slot, len(w.slots))
	copy(out, w.slots)

	return out
}

// StatusHandler serves the latest reports as a check document, one entry per
// watched folder, in the same JSON shape the check command emits.
func (w *Watcher) StatusHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		slots := w.Snapshot()

		entries := make([]render.Entry, 0, len(slots))
		for _, s := range slots {
			entries = append(entries, render.Entry{Folder: s.Path, Report: s.Report, CheckedAt: s.CheckedAt})
		}

		rw.Header().Set("Content-Type", "application/json")

		if err := render.WriteDocument(rw, render.FormatJSON, entries); err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
	})
}
