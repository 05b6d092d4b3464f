package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/linkedin/goavro/v2"
	"go.uber.org/zap/zaptest"

	pb "github.com/nochum/df23-data-loss-prevention/gen/eventbus/v1"
	"github.com/nochum/df23-data-loss-prevention/internal/auth"
	"github.com/nochum/df23-data-loss-prevention/internal/avrodec"
	"github.com/nochum/df23-data-loss-prevention/internal/composite"
	"github.com/nochum/df23-data-loss-prevention/internal/failure"
	"github.com/nochum/df23-data-loss-prevention/internal/graph"
	"github.com/nochum/df23-data-loss-prevention/internal/metrics"
	"github.com/nochum/df23-data-loss-prevention/internal/report"
)

const reportSchema = `{
  "type": "record",
  "name": "ReportEventStream",
  "fields": [
    {"name": "ColumnHeaders", "type": ["null", "string"], "default": null},
    {"name": "Records", "type": ["null", "string"], "default": null}
  ]
}`

type staticSource struct{}

func (staticSource) GetSchema(context.Context, string) (string, error) {
	return reportSchema, nil
}

func encode(t *testing.T, headers, records string) []byte {
	t.Helper()
	codec, err := goavro.NewCodec(reportSchema)
	if err != nil {
		t.Fatal(err)
	}
	b, err := codec.BinaryFromNative(nil, map[string]any{
		"ColumnHeaders": goavro.Union("string", headers),
		"Records":       goavro.Union("string", records),
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

var recordBodies = map[string]string{
	"003000000000001AAA": `{"Salutation":"Ms.","FirstName":"Ada","LastName":"Lovelace","Title":"Analyst","Email":"ada@example.com"}`,
	"001000000000002BBB": `{"Name":"Acme"}`,
	"003000000000009ZZZ": `{"FirstName":"Grace","LastName":"Hopper"}`,
}

// compositeServer answers each sub-request with the canned body for its id.
func compositeServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graph.CompositeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resp := composite.Response{}
		for _, g := range req.Graphs {
			gr := composite.GraphResult{GraphID: g.GraphID, IsSuccessful: true}
			for _, sub := range g.CompositeRequest {
				id := sub.URL[strings.LastIndex(sub.URL, "/")+1:]
				gr.GraphResponse.CompositeResponse = append(gr.GraphResponse.CompositeResponse, composite.SubResponse{
					ReferenceID:    sub.ReferenceID,
					HTTPStatusCode: 200,
					Body:           json.RawMessage(recordBodies[id]),
				})
			}
			resp.Graphs = append(resp.Graphs, gr)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newProcessor(t *testing.T, srv *httptest.Server, buf *bytes.Buffer, m *metrics.Metrics) *Processor {
	logger := zaptest.NewLogger(t)
	dec := avrodec.NewDecoder(staticSource{}, avrodec.CacheKeyed, logger)
	caller := composite.NewClient(srv.Client(), auth.NewSession("00D!tok", srv.URL), "", time.Second, logger)
	return NewProcessor(dec, graph.NewBuilder("", 0), caller, report.NewWriterSink(buf), m, logger)
}

func event(t *testing.T, id, headers, records string) *pb.ConsumerEvent {
	return &pb.ConsumerEvent{
		Event:    &pb.ProducerEvent{Id: id, SchemaId: "s1", Payload: encode(t, headers, records)},
		ReplayId: []byte(id),
	}
}

func TestHandleEventScenario(t *testing.T) {
	srv := compositeServer(t)
	defer srv.Close()

	var buf bytes.Buffer
	m := metrics.NewUnregistered()
	p := newProcessor(t, srv, &buf, m)

	ev := event(t, "e1", "[Name, Account, Title]",
		`{"rows":[{"datacells":["003000000000001AAA","001000000000002BBB"]}]}`)
	if err := p.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output = %q", buf.String())
	}
	if lines[0] != "Name\tAccount\tTitle" {
		t.Errorf("header = %q", lines[0])
	}
	want := "Ms.       \tAda       \tLovelace \tAnalyst                       \tAcme                          \t\t\t\t\t\t\t\t\tada@example.com\t"
	if lines[1] != want {
		t.Errorf("line = %q\nwant   %q", lines[1], want)
	}

	stats := m.Snapshot()
	if stats.CompositeCalls != 1 || stats.ReportLines != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestHandleEventOrdering(t *testing.T) {
	srv := compositeServer(t)
	defer srv.Close()

	var buf bytes.Buffer
	p := newProcessor(t, srv, &buf, metrics.NewUnregistered())

	rows := []string{
		`{"rows":[{"datacells":["003000000000001AAA"]}]}`,
		`{"rows":[{"datacells":["003000000000009ZZZ"]}]}`,
	}
	for i, r := range rows {
		if err := p.HandleEvent(context.Background(), event(t, string(rune('a'+i)), "[Name]", r)); err != nil {
			t.Fatal(err)
		}
	}

	out := buf.String()
	ada := strings.Index(out, "Ada")
	grace := strings.Index(out, "Grace")
	if ada < 0 || grace < 0 || ada > grace {
		t.Errorf("lines out of order: %q", out)
	}
}

type stubDecoder struct{ err error }

func (s stubDecoder) Decode(context.Context, string, []byte) (map[string]any, error) {
	if s.err != nil {
		return nil, s.err
	}
	return map[string]any{"Records": "not json"}, nil
}

type stubCaller struct{ err error }

func (s stubCaller) Call(context.Context, *graph.CompositeRequest) (*composite.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &composite.Response{}, nil
}

type stubSink struct{ err error }

func (s stubSink) Write(context.Context, report.Batch) error { return s.err }

// okDecoder yields a fixed event; an empty records value means one row.
type okDecoder struct{ records string }

func (d okDecoder) Decode(context.Context, string, []byte) (map[string]any, error) {
	records := d.records
	if records == "" {
		records = `{"rows":[{"datacells":["003000000000001AAA"]}]}`
	}
	return map[string]any{"ColumnHeaders": "[Name]", "Records": records}, nil
}

func TestHandleEventFailureKinds(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		decoder Decoder
		caller  Caller
		sink    report.Sink
		want    failure.Kind
	}{
		{"decode", stubDecoder{err: boom}, stubCaller{}, stubSink{}, failure.KindDecode},
		{"build", stubDecoder{}, stubCaller{}, stubSink{}, failure.KindBuild},
		{"composite", okDecoder{}, stubCaller{err: boom}, stubSink{}, failure.KindComposite},
		{"sink", okDecoder{}, stubCaller{}, stubSink{err: boom}, failure.KindSink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(tt.decoder, graph.NewBuilder("", 0), tt.caller, tt.sink, metrics.NewUnregistered(), zaptest.NewLogger(t))
			ev := &pb.ConsumerEvent{Event: &pb.ProducerEvent{Id: "e", SchemaId: "s"}}
			err := p.HandleEvent(context.Background(), ev)
			if got := failure.KindOf(err); got != tt.want {
				t.Errorf("kind = %v, want %v (err = %v)", got, tt.want, err)
			}
		})
	}
}

func TestHandleEventWithoutBody(t *testing.T) {
	p := NewProcessor(okDecoder{}, graph.NewBuilder("", 0), stubCaller{}, stubSink{}, metrics.NewUnregistered(), zaptest.NewLogger(t))
	if err := p.HandleEvent(context.Background(), &pb.ConsumerEvent{}); !failure.Is(err, failure.KindDecode) {
		t.Errorf("err = %v", err)
	}
}

type countingCaller struct{ calls int }

func (c *countingCaller) Call(context.Context, *graph.CompositeRequest) (*composite.Response, error) {
	c.calls++
	return &composite.Response{}, nil
}

type recordingSink struct{ batches []report.Batch }

func (s *recordingSink) Write(_ context.Context, b report.Batch) error {
	s.batches = append(s.batches, b)
	return nil
}

func TestHandleEventWithoutRowsSkipsCall(t *testing.T) {
	caller := &countingCaller{}
	sink := &recordingSink{}
	m := metrics.NewUnregistered()
	p := NewProcessor(okDecoder{records: `{"rows":[]}`}, graph.NewBuilder("", 0), caller, sink, m, zaptest.NewLogger(t))

	ev := &pb.ConsumerEvent{Event: &pb.ProducerEvent{Id: "e", SchemaId: "s"}}
	if err := p.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if caller.calls != 0 {
		t.Errorf("composite called %d times for an empty report", caller.calls)
	}
	if len(sink.batches) != 1 {
		t.Fatalf("wrote %d batches, want 1", len(sink.batches))
	}
	if b := sink.batches[0]; b.Header != "Name" || len(b.Lines) != 0 {
		t.Errorf("batch = %+v", b)
	}
	if stats := m.Snapshot(); stats.CompositeCalls != 0 {
		t.Errorf("CompositeCalls = %d", stats.CompositeCalls)
	}
}

func TestHandleEventCompositeFailureWritesNothing(t *testing.T) {
	sink := &recordingSink{}
	p := NewProcessor(okDecoder{}, graph.NewBuilder("", 0), stubCaller{err: errors.New("boom")}, sink, metrics.NewUnregistered(), zaptest.NewLogger(t))

	ev := &pb.ConsumerEvent{Event: &pb.ProducerEvent{Id: "e", SchemaId: "s"}}
	if err := p.HandleEvent(context.Background(), ev); !failure.Is(err, failure.KindComposite) {
		t.Fatalf("HandleEvent() error = %v, want composite failure", err)
	}
	if len(sink.batches) != 0 {
		t.Errorf("wrote %+v after a failed call", sink.batches)
	}
}
