// Package pubsub subscribes to the event bus over a long-lived bidirectional
// gRPC stream and hands each delivered event to an EventHandler.
package pubsub

import (
	"context"
	"crypto/tls"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pb "github.com/nochum/df23-data-loss-prevention/gen/eventbus/v1"
	"github.com/nochum/df23-data-loss-prevention/internal/auth"
)

// Client is the subset of the event bus API the subscriber needs.
type Client interface {
	Subscribe(ctx context.Context) (Stream, error)
	GetSchema(ctx context.Context, schemaID string) (string, error)
}

// Stream is one open Subscribe call. Send and Recv may be used from two
// different goroutines, but neither from more than one.
type Stream interface {
	Send(*pb.FetchRequest) error
	Recv() (*pb.FetchResponse, error)
	CloseSend() error
}

// GRPCClient talks to the event bus over a gRPC connection.
type GRPCClient struct {
	conn    *grpc.ClientConn
	pubsub  pb.PubSubClient
	session *auth.Session
	logger  *zap.Logger
}

// DialOptions returns the options needed to reach the event bus.
func DialOptions(insecureTransport bool) []grpc.DialOption {
	creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	if insecureTransport {
		creds = insecure.NewCredentials()
	}
	return []grpc.DialOption{grpc.WithTransportCredentials(creds)}
}

// Dial opens a connection to endpoint. The connection is established lazily
// on the first call.
func Dial(endpoint string, insecureTransport bool, session *auth.Session, logger *zap.Logger) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpoint, DialOptions(insecureTransport)...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create client for %s", endpoint)
	}
	logger.Info("created event bus client",
		zap.String("endpoint", endpoint),
		zap.Bool("insecure", insecureTransport))
	return NewGRPCClient(conn, session, logger), nil
}

// NewGRPCClient wraps an existing connection.
func NewGRPCClient(conn *grpc.ClientConn, session *auth.Session, logger *zap.Logger) *GRPCClient {
	return &GRPCClient{
		conn:    conn,
		pubsub:  pb.NewPubSubClient(conn),
		session: session,
		logger:  logger.With(zap.String("component", "pubsub_client")),
	}
}

// Close closes the underlying connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// withAuth attaches the session headers every event bus call requires.
func (c *GRPCClient) withAuth(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		"accesstoken", c.session.AccessToken,
		"instanceurl", c.session.InstanceURL,
		"tenantid", c.session.TenantID,
	)
}

// Subscribe opens the bidirectional event stream.
func (c *GRPCClient) Subscribe(ctx context.Context) (Stream, error) {
	return c.pubsub.Subscribe(c.withAuth(ctx))
}

// GetSchema resolves a schema id to its JSON Avro schema.
func (c *GRPCClient) GetSchema(ctx context.Context, schemaID string) (string, error) {
	info, err := c.pubsub.GetSchema(c.withAuth(ctx), &pb.SchemaRequest{SchemaId: schemaID})
	if err != nil {
		return "", err
	}
	c.logger.Info("fetched schema",
		zap.String("schema_id", schemaID),
		zap.String("rpc_id", info.GetRpcId()))
	return info.GetSchemaJson(), nil
}
