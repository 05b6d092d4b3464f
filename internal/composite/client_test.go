package composite

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/nochum/df23-data-loss-prevention/internal/auth"
	"github.com/nochum/df23-data-loss-prevention/internal/failure"
	"github.com/nochum/df23-data-loss-prevention/internal/graph"
)

func TestCall(t *testing.T) {
	var got graph.CompositeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/services/data/v57.0/composite/graph" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer 00D!tok" {
			t.Errorf("Authorization = %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"graphs":[{"graphId":"1","isSuccessful":true,"graphResponse":{"compositeResponse":[
			{"referenceId":"reference_id_contact_1","httpStatusCode":200,"body":{"FirstName":"Ada"}}
		]}}]}`))
	}))
	defer srv.Close()

	session := auth.NewSession("00D!tok", srv.URL)
	client := NewClient(srv.Client(), session, "v57.0", time.Second, zaptest.NewLogger(t))

	req := &graph.CompositeRequest{Graphs: []graph.Graph{{
		GraphID: "1",
		CompositeRequest: []graph.SubRequest{{
			URL: "/services/data/v57.0/sobjects/Contact/003000000000001AAA", Method: "GET", ReferenceID: "reference_id_contact_1",
		}},
	}}}

	resp, err := client.Call(context.Background(), req)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if len(got.Graphs) != 1 || got.Graphs[0].CompositeRequest[0].ReferenceID != "reference_id_contact_1" {
		t.Errorf("server received %+v", got)
	}
	if len(resp.Graphs) != 1 || !resp.Graphs[0].IsSuccessful {
		t.Fatalf("response = %+v", resp)
	}
	sub := resp.Graphs[0].GraphResponse.CompositeResponse[0]
	if sub.ReferenceID != "reference_id_contact_1" || string(sub.Body) != `{"FirstName":"Ada"}` {
		t.Errorf("sub-response = %+v (%s)", sub, sub.Body)
	}
}

func TestCallNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"errorCode":"INVALID_GRAPH"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), auth.NewSession("t", srv.URL), "", time.Second, zaptest.NewLogger(t))
	_, err := client.Call(context.Background(), &graph.CompositeRequest{Graphs: []graph.Graph{}})
	if err == nil {
		t.Fatal("Call() expected error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadRequest || statusErr.Reason != "Bad Request" {
		t.Errorf("status error = %+v", statusErr)
	}
	if statusErr.Body != `[{"errorCode":"INVALID_GRAPH"}]` {
		t.Errorf("body = %q", statusErr.Body)
	}
	if !failure.Is(err, failure.KindComposite) || failure.IsTransient(err) {
		t.Errorf("error should be a permanent composite failure: %v", err)
	}
}

func TestCallMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"graphs":`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), auth.NewSession("t", srv.URL), "", time.Second, zaptest.NewLogger(t))
	if _, err := client.Call(context.Background(), &graph.CompositeRequest{}); !failure.Is(err, failure.KindComposite) {
		t.Fatalf("Call() error = %v, want composite failure", err)
	}
}
