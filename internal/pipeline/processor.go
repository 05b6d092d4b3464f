// Package pipeline turns delivered report events into report lines:
// decode, build the composite request, call it, render and write.
package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	pb "github.com/nochum/df23-data-loss-prevention/gen/eventbus/v1"
	"github.com/nochum/df23-data-loss-prevention/internal/avrodec"
	"github.com/nochum/df23-data-loss-prevention/internal/composite"
	"github.com/nochum/df23-data-loss-prevention/internal/failure"
	"github.com/nochum/df23-data-loss-prevention/internal/graph"
	"github.com/nochum/df23-data-loss-prevention/internal/metrics"
	"github.com/nochum/df23-data-loss-prevention/internal/pubsub"
	"github.com/nochum/df23-data-loss-prevention/internal/report"
)

// Decoder decodes an event payload.
type Decoder interface {
	Decode(ctx context.Context, schemaID string, payload []byte) (map[string]any, error)
}

// Caller submits a composite request.
type Caller interface {
	Call(ctx context.Context, req *graph.CompositeRequest) (*composite.Response, error)
}

// Processor handles one event at a time. It is used from the subscriber's
// receive goroutine only.
type Processor struct {
	decoder Decoder
	builder *graph.Builder
	caller  Caller
	sink    report.Sink
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewProcessor wires the pipeline stages.
func NewProcessor(decoder Decoder, builder *graph.Builder, caller Caller, sink report.Sink, m *metrics.Metrics, logger *zap.Logger) *Processor {
	return &Processor{
		decoder: decoder,
		builder: builder,
		caller:  caller,
		sink:    sink,
		metrics: m,
		logger:  logger.With(zap.String("component", "processor")),
	}
}

var _ pubsub.EventHandler = (*Processor)(nil)

// HandleEvent runs event through every stage. The returned error carries the
// kind of the stage that failed.
func (p *Processor) HandleEvent(ctx context.Context, event *pb.ConsumerEvent) error {
	if event == nil || event.Event == nil {
		return failure.New(failure.KindDecode, failure.Permanent, "decode", errors.New("event has no body"))
	}
	pe := event.Event
	logger := p.logger.With(zap.String("event_id", pe.GetId()), zap.String("schema_id", pe.GetSchemaId()))

	native, err := p.decoder.Decode(ctx, pe.GetSchemaId(), pe.GetPayload())
	if err != nil {
		return failure.New(failure.KindDecode, failure.Permanent, "decode", err)
	}
	re, err := avrodec.EventFromNative(native)
	if err != nil {
		return failure.New(failure.KindDecode, failure.Permanent, "decode", err)
	}

	req, err := p.builder.Build(re)
	if err != nil {
		return failure.New(failure.KindBuild, failure.Permanent, "build", err)
	}
	logger.Debug("built composite request", zap.Int("graphs", len(req.Graphs)))

	// The header goes out in the same batch as the lines, so a failed call
	// writes nothing.
	batch := report.Batch{Header: graph.HeaderLine(re.ColumnHeaders)}
	if len(req.Graphs) > 0 {
		resp, err := p.call(ctx, req)
		if err != nil {
			return err
		}
		batch.Lines = report.Render(resp)
	}
	if err := p.sink.Write(ctx, batch); err != nil {
		return failure.New(failure.KindSink, failure.Permanent, "write report", err)
	}
	p.metrics.ReportLines(len(batch.Lines))

	logger.Info("processed report event", zap.Int("lines", len(batch.Lines)))
	return nil
}

func (p *Processor) call(ctx context.Context, req *graph.CompositeRequest) (*composite.Response, error) {
	start := time.Now()
	resp, err := p.caller.Call(ctx, req)
	p.metrics.CompositeCall(err == nil, time.Since(start))
	if err != nil {
		if failure.KindOf(err) == failure.KindComposite {
			return nil, err
		}
		return nil, failure.New(failure.KindComposite, failure.Permanent, "composite call", err)
	}
	return resp, nil
}
