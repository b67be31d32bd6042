package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/dwikygilang/framecheck/pkg/sequence"
)

const (
	metricFramesFound  = "framecheck.frames.found"
	metricFramesMissed = "framecheck.frames.missing"
	metricCompleteness = "framecheck.sequence.completeness"

	attrFolder = "folder"
)

// CheckMetrics holds OTel instruments describing the latest sequence state
// per watched folder. Gauges overwrite on every poll, so scrapes always see
// the most recent check.
type CheckMetrics struct {
	framesFound  metric.Int64Gauge
	framesMissed metric.Int64Gauge
	completeness metric.Float64Gauge
}

// NewCheckMetrics creates sequence metric instruments from the given meter.
func NewCheckMetrics(mt metric.Meter) (*CheckMetrics, error) {
	b := newMetricBuilder(mt)

	cm := &CheckMetrics{
		framesFound:  b.gauge(metricFramesFound, "Frames present in the folder", "{frame}"),
		framesMissed: b.gauge(metricFramesMissed, "Frames missing from the implied range", "{frame}"),
		completeness: b.float64Gauge(metricCompleteness, "Fraction of the implied range present", "1"),
	}

	if b.err != nil {
		return nil, b.err
	}

	return cm, nil
}

// RecordReport publishes the folder's latest report. Safe to call on a nil
// receiver (no-op).
func (cm *CheckMetrics) RecordReport(ctx context.Context, folder string, report sequence.Report) {
	if cm == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String(attrFolder, folder))

	cm.framesFound.Record(ctx, int64(report.FoundCount), attrs)
	cm.framesMissed.Record(ctx, int64(len(report.Missing)), attrs)
	cm.completeness.Record(ctx, report.Completeness, attrs)
}
