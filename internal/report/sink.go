package report

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Batch is the output of one event: the header line followed by its lines.
type Batch struct {
	Header string
	Lines  []Line
}

// Sink receives rendered batches.
type Sink interface {
	Write(ctx context.Context, b Batch) error
}

// WriterSink writes batches as newline delimited text.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(_ context.Context, b Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bw := bufio.NewWriter(s.w)
	if _, err := bw.WriteString(b.Header + "\n"); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, line := range b.Lines {
		if _, err := bw.WriteString(line.String() + "\n"); err != nil {
			return errors.Wrap(err, "failed to write line")
		}
	}
	return errors.Wrap(bw.Flush(), "failed to flush report")
}

// DB is the subset of a pgx pool or connection used by PostgresSink.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresSink stores one row per report line.
type PostgresSink struct {
	db     DB
	table  string
	now    func() time.Time
	logger *zap.Logger
}

// NewPostgresSink creates a sink writing into table.
func NewPostgresSink(db DB, table string, logger *zap.Logger) *PostgresSink {
	return &PostgresSink{
		db:     db,
		table:  table,
		now:    time.Now,
		logger: logger.With(zap.String("component", "postgres_sink"), zap.String("table", table)),
	}
}

func (s *PostgresSink) ident() string {
	return pgx.Identifier{s.table}.Sanitize()
}

// EnsureTable creates the report table if it does not exist.
func (s *PostgresSink) EnsureTable(ctx context.Context) error {
	ddl := `CREATE TABLE IF NOT EXISTS ` + s.ident() + ` (
		id BIGSERIAL PRIMARY KEY,
		received_at TIMESTAMPTZ NOT NULL,
		graph_id TEXT NOT NULL,
		header TEXT NOT NULL,
		salutation TEXT, first_name TEXT, last_name TEXT, title TEXT, account_name TEXT,
		mailing_street TEXT, mailing_city TEXT, mailing_state TEXT, mailing_postal_code TEXT,
		mailing_country TEXT, phone TEXT, fax TEXT, mobile_phone TEXT, email TEXT, user_name TEXT
	)`
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return errors.Wrapf(err, "failed to create table %s", s.table)
	}
	return nil
}

func (s *PostgresSink) insertSQL() string {
	return `INSERT INTO ` + s.ident() + ` (
		received_at, graph_id, header,
		salutation, first_name, last_name, title, account_name,
		mailing_street, mailing_city, mailing_state, mailing_postal_code,
		mailing_country, phone, fax, mobile_phone, email, user_name
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
}

func (s *PostgresSink) Write(ctx context.Context, b Batch) error {
	if len(b.Lines) == 0 {
		return nil
	}

	at := s.now().UTC()
	sql := s.insertSQL()
	batch := &pgx.Batch{}
	for _, line := range b.Lines {
		args := make([]any, 0, 3+NumFields)
		args = append(args, at, line.GraphID, b.Header)
		for _, v := range line.Fields {
			args = append(args, v)
		}
		batch.Queue(sql, args...)
	}

	results := s.db.SendBatch(ctx, batch)
	for i := range b.Lines {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return errors.Wrapf(err, "failed to insert report line %d", i)
		}
	}
	if err := results.Close(); err != nil {
		return errors.Wrap(err, "failed to close insert batch")
	}

	s.logger.Debug("stored report lines", zap.Int("count", len(b.Lines)))
	return nil
}

// MultiSink writes every batch to each sink in order, stopping at the first
// error.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, b Batch) error {
	for _, s := range m {
		if err := s.Write(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
