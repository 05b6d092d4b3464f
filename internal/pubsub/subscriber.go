package pubsub

import (
	"bytes"
	"context"
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/juju/retry"
	"go.uber.org/zap"

	pb "github.com/nochum/df23-data-loss-prevention/gen/eventbus/v1"
	"github.com/nochum/df23-data-loss-prevention/internal/config"
	"github.com/nochum/df23-data-loss-prevention/internal/failure"
	"github.com/nochum/df23-data-loss-prevention/internal/metrics"
)

// EventHandler processes one delivered event. Errors are logged and counted by
// the subscriber; they never end the stream.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *pb.ConsumerEvent) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *pb.ConsumerEvent) error

func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *pb.ConsumerEvent) error {
	return f(ctx, event)
}

// SessionState is what survives across streams within one process: the last
// replay position seen and a few counters.
type SessionState struct {
	mu             sync.RWMutex
	replayID       []byte
	responses      int64
	eventsReceived int64
	heartbeats     int64
}

// ReplayID returns a copy of the last replay position, or nil.
func (s *SessionState) ReplayID() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.replayID)
}

func (s *SessionState) observe(resp *pb.FetchResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses++
	s.eventsReceived += int64(len(resp.Events))
	if len(resp.Events) == 0 {
		s.heartbeats++
	}
	if len(resp.LatestReplayId) > 0 {
		s.replayID = bytes.Clone(resp.LatestReplayId)
	}
}

// Counts returns responses, events and heartbeats seen so far.
func (s *SessionState) Counts() (responses, events, heartbeats int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.responses, s.eventsReceived, s.heartbeats
}

// Options configures a Subscriber.
type Options struct {
	Topic       string
	BatchSize   int32
	MaxInFlight int64
	Reconnect   config.Reconnect
}

// OptionsFromConfig builds subscriber options from the pubsub config section.
func OptionsFromConfig(cfg config.PubSub) Options {
	return Options{
		Topic:       cfg.Topic,
		BatchSize:   int32(cfg.BatchSize),
		MaxInFlight: int64(cfg.MaxInFlight),
		Reconnect:   cfg.Reconnect,
	}
}

// Subscriber owns the subscription: it drives the request generator, consumes
// responses in order and keeps the session state current.
type Subscriber struct {
	client  Client
	handler EventHandler
	opts    Options
	state   *SessionState
	metrics *metrics.Metrics
	clock   clock.Clock
	logger  *zap.Logger
}

// NewSubscriber creates a subscriber with a fresh session state.
func NewSubscriber(client Client, handler EventHandler, opts Options, m *metrics.Metrics, logger *zap.Logger) *Subscriber {
	return &Subscriber{
		client:  client,
		handler: handler,
		opts:    opts,
		state:   &SessionState{},
		metrics: m,
		clock:   clock.WallClock,
		logger:  logger.With(zap.String("component", "subscriber"), zap.String("topic", opts.Topic)),
	}
}

// State exposes the session state.
func (s *Subscriber) State() *SessionState {
	return s.state
}

// Run consumes a single stream until it fails or ctx is done. The returned
// error is classified; see failure.FromGRPC.
func (s *Subscriber) Run(ctx context.Context) error {
	_, err := s.run(ctx)
	return err
}

// run returns the number of events the stream delivered before it ended.
// Keepalives are not counted.
func (s *Subscriber) run(parent context.Context) (int, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	logger := s.logger.With(zap.String("stream_id", uuid.New().String()))

	stream, err := s.client.Subscribe(ctx)
	if err != nil {
		return 0, failure.FromGRPC("subscribe", err)
	}

	replayID := s.state.ReplayID()
	logger.Info("subscribing",
		zap.Int32("batch_size", s.opts.BatchSize),
		zap.Bool("resume", len(replayID) > 0),
		zap.String("replay_id", hex.EncodeToString(replayID)))

	credit := NewCredit(s.opts.MaxInFlight)
	gen := NewRequestGenerator(credit, s.opts.Topic, s.opts.BatchSize, replayID)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := gen.Run(ctx, func(req *pb.FetchRequest) error {
			if err := stream.Send(req); err != nil {
				return err
			}
			s.metrics.FetchRequestSent()
			logger.Debug("sent fetch request", zap.Int32("num_requested", req.NumRequested))
			return nil
		})
		if err != nil && ctx.Err() == nil {
			logger.Warn("request generator stopped", zap.Error(err))
		}
	}()
	defer wg.Wait()
	defer cancel()

	delivered := 0
	for {
		resp, err := stream.Recv()
		if err != nil {
			if parent.Err() != nil {
				return delivered, parent.Err()
			}
			logger.Error("stream receive failed", zap.Error(err))
			return delivered, failure.FromGRPC("receive", err)
		}
		delivered += len(resp.Events)
		s.handleResponse(ctx, logger, credit, resp)
	}
}

func (s *Subscriber) handleResponse(ctx context.Context, logger *zap.Logger, credit *Credit, resp *pb.FetchResponse) {
	if resp.PendingNumRequested == 0 && credit.Release() {
		s.metrics.CreditReleased()
	}

	if len(resp.Events) == 0 {
		s.metrics.Heartbeat()
		logger.Info("subscription is active", zap.Time("at", s.clock.Now()))
	}

	for _, event := range resp.Events {
		s.metrics.EventReceived()
		if err := s.handler.HandleEvent(ctx, event); err != nil {
			kind := failure.KindOf(err)
			s.metrics.EventFailed(kind.String())
			fields := []zap.Field{zap.String("kind", kind.String()), zap.Error(err)}
			if event.Event != nil {
				fields = append(fields, zap.String("event_id", event.Event.Id))
			}
			logger.Error("event processing failed", fields...)
		}
	}

	s.state.observe(resp)
}

// RunWithReconnect runs the subscription, resuming from the last replay
// position after transient transport failures. The attempt count and backoff
// restart only after a stream has delivered events; a stream that only sent
// keepalives counts as a failed attempt. Every reconnect waits at least
// InitialBackoff.
func (s *Subscriber) RunWithReconnect(ctx context.Context) error {
	if !s.opts.Reconnect.IsEnabled() {
		return s.Run(ctx)
	}

	for {
		served := false
		err := retry.Call(retry.CallArgs{
			Func: func() error {
				n, err := s.run(ctx)
				served = n > 0
				return err
			},
			IsFatalError: func(err error) bool {
				return served || !failure.IsTransient(err)
			},
			NotifyFunc: func(lastErr error, attempt int) {
				s.metrics.Reconnected()
				s.logger.Warn("stream failed, reconnecting",
					zap.Int("attempt", attempt),
					zap.Error(lastErr))
			},
			Attempts:    s.opts.Reconnect.MaxAttempts,
			Delay:       s.opts.Reconnect.InitialBackoff,
			MaxDelay:    s.opts.Reconnect.MaxBackoff,
			BackoffFunc: retry.DoubleDelay,
			Clock:       s.clock,
			Stop:        ctx.Done(),
		})

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if served && failure.IsTransient(err) {
			s.metrics.Reconnected()
			s.logger.Warn("stream dropped, reconnecting from last replay position",
				zap.Duration("backoff", s.opts.Reconnect.InitialBackoff),
				zap.Error(err))
			select {
			case <-s.clock.After(s.opts.Reconnect.InitialBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		if retry.IsAttemptsExceeded(err) {
			return retry.LastError(err)
		}
		return err
	}
}

// SetClock replaces the clock used for heartbeat timestamps and backoff waits.
func (s *Subscriber) SetClock(c clock.Clock) {
	s.clock = c
}
