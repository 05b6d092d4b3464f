package pubsub

import (
	"bytes"
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	pb "github.com/nochum/df23-data-loss-prevention/gen/eventbus/v1"
)

// Credit bounds how many fetch requests may be outstanding on a stream. A
// permit is taken before each request and returned when the server reports
// that nothing it was asked for is still pending.
type Credit struct {
	sem *semaphore.Weighted

	mu          sync.Mutex
	outstanding int64
}

// NewCredit creates a credit pool with capacity permits.
func NewCredit(capacity int64) *Credit {
	if capacity < 1 {
		capacity = 1
	}
	return &Credit{sem: semaphore.NewWeighted(capacity)}
}

// Acquire blocks until a permit is free or ctx is done.
func (c *Credit) Acquire(ctx context.Context) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.mu.Lock()
	c.outstanding++
	c.mu.Unlock()
	return nil
}

// Release returns one permit. It reports false, and does nothing, when no
// permit is outstanding, so keepalives cannot inflate the pool.
func (c *Credit) Release() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.outstanding == 0 {
		return false
	}
	c.outstanding--
	c.sem.Release(1)
	return true
}

// Outstanding returns the number of permits currently held.
func (c *Credit) Outstanding() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outstanding
}

// RequestGenerator produces an unbounded sequence of fetch requests, each
// gated on one unit of credit.
type RequestGenerator struct {
	credit    *Credit
	topic     string
	batchSize int32

	// Only the first request of a stream carries the replay position.
	preset   pb.ReplayPreset
	replayID []byte
	sent     bool
}

// NewRequestGenerator creates a generator for topic. A non-empty replayID
// resumes from that position, otherwise delivery starts at the latest event.
func NewRequestGenerator(credit *Credit, topic string, batchSize int32, replayID []byte) *RequestGenerator {
	g := &RequestGenerator{
		credit:    credit,
		topic:     topic,
		batchSize: batchSize,
		preset:    pb.ReplayPreset_LATEST,
	}
	if len(replayID) > 0 {
		g.preset = pb.ReplayPreset_CUSTOM
		g.replayID = bytes.Clone(replayID)
	}
	return g
}

// Next waits for credit and returns the next request.
func (g *RequestGenerator) Next(ctx context.Context) (*pb.FetchRequest, error) {
	if err := g.credit.Acquire(ctx); err != nil {
		return nil, err
	}
	req := &pb.FetchRequest{
		TopicName:    g.topic,
		ReplayPreset: g.preset,
		NumRequested: g.batchSize,
	}
	if !g.sent && g.preset == pb.ReplayPreset_CUSTOM {
		req.ReplayId = g.replayID
	}
	g.sent = true
	return req, nil
}

// Run feeds requests to send until ctx is done or send fails.
func (g *RequestGenerator) Run(ctx context.Context, send func(*pb.FetchRequest) error) error {
	for {
		req, err := g.Next(ctx)
		if err != nil {
			return err
		}
		if err := send(req); err != nil {
			return err
		}
	}
}
