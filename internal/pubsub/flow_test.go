package pubsub

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/nochum/df23-data-loss-prevention/gen/eventbus/v1"
)

func TestCreditBlocksUntilReleased(t *testing.T) {
	credit := NewCredit(1)
	ctx := context.Background()

	if err := credit.Acquire(ctx); err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}

	acquired := make(chan error, 1)
	go func() { acquired <- credit.Acquire(ctx) }()

	select {
	case <-acquired:
		t.Fatal("second Acquire() returned before Release()")
	case <-time.After(50 * time.Millisecond):
	}

	if !credit.Release() {
		t.Fatal("Release() = false with a permit outstanding")
	}

	select {
	case err := <-acquired:
		if err != nil {
			t.Fatalf("second Acquire() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second Acquire() did not unblock")
	}
}

func TestCreditAcquireCancellable(t *testing.T) {
	credit := NewCredit(1)
	if err := credit.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := credit.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Acquire() error = %v, want deadline exceeded", err)
	}
	if got := credit.Outstanding(); got != 1 {
		t.Errorf("Outstanding() = %d, want 1", got)
	}
}

// After N requests no further request may be issued until N releases have taken effect.
func TestCreditConservation(t *testing.T) {
	const capacity = 3
	credit := NewCredit(capacity)
	ctx := context.Background()

	for i := 0; i < capacity; i++ {
		if err := credit.Acquire(ctx); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < capacity; i++ {
		if !credit.Release() {
			t.Fatalf("Release() #%d = false", i+1)
		}
	}
	// Extra releases from keepalives must not create capacity.
	for i := 0; i < 5; i++ {
		if credit.Release() {
			t.Fatalf("excess Release() took effect")
		}
	}

	for i := 0; i < capacity; i++ {
		if err := credit.Acquire(ctx); err != nil {
			t.Fatal(err)
		}
	}
	tctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	if err := credit.Acquire(tctx); err == nil {
		t.Fatal("Acquire() beyond capacity succeeded")
	}
}

func TestRequestGeneratorLatest(t *testing.T) {
	credit := NewCredit(1)
	gen := NewRequestGenerator(credit, "/event/ReportEventStream", 4, nil)

	req, err := gen.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if req.TopicName != "/event/ReportEventStream" || req.NumRequested != 4 {
		t.Errorf("request = %+v", req)
	}
	if req.ReplayPreset != pb.ReplayPreset_LATEST || req.ReplayId != nil {
		t.Errorf("preset = %v replay = %x, want LATEST with no id", req.ReplayPreset, req.ReplayId)
	}
}

func TestRequestGeneratorResume(t *testing.T) {
	credit := NewCredit(2)
	gen := NewRequestGenerator(credit, "/event/X", 4, []byte{1, 2, 3})
	ctx := context.Background()

	first, err := gen.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first.ReplayPreset != pb.ReplayPreset_CUSTOM || !bytes.Equal(first.ReplayId, []byte{1, 2, 3}) {
		t.Errorf("first request = %+v", first)
	}

	second, err := gen.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if second.ReplayId != nil {
		t.Errorf("second request carried replay id %x", second.ReplayId)
	}
}

func TestRequestGeneratorRunStopsOnSendError(t *testing.T) {
	credit := NewCredit(5)
	gen := NewRequestGenerator(credit, "/event/X", 4, nil)
	sendErr := errors.New("stream closed")

	calls := 0
	err := gen.Run(context.Background(), func(*pb.FetchRequest) error {
		calls++
		if calls == 3 {
			return sendErr
		}
		return nil
	})
	if !errors.Is(err, sendErr) {
		t.Fatalf("Run() error = %v, want %v", err, sendErr)
	}
	if calls != 3 {
		t.Errorf("send called %d times, want 3", calls)
	}
}
