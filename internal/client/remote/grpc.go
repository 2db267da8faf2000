// Package remote is the gRPC transport behind the sync engine: it turns
// engine pushes, deletes and subscriptions into calls against the Ancora
// sync service, stamping every call with the current access token.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/avoganov/ancora/internal/client/repositories/envelope"
	"github.com/avoganov/ancora/internal/client/sync"
	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/logging"
	pb "github.com/avoganov/ancora/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var ErrUnavailable = errors.New("server unavailable")

// GRPCRemote implements the engine's Remote over one client connection.
type GRPCRemote struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AncoraSyncServiceClient
	accessToken string
	log         logging.Logger
}

func New(endpointURL string, log logging.Logger) (*GRPCRemote, error) {
	if log == nil {
		log = logging.NopLogger{}
	}
	r := &GRPCRemote{endpointURL: endpointURL, log: log}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(r.accessTokenInterceptor),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial sync server: %w", err)
	}
	r.conn = conn
	r.client = pb.NewAncoraSyncServiceClient(conn)
	return r, nil
}

// SetAccessToken installs the token the identity gate obtained. Must be
// called before the engine starts.
func (r *GRPCRemote) SetAccessToken(token string) {
	r.accessToken = token
}

func (r *GRPCRemote) Close() error {
	return r.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (r *GRPCRemote) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withAccessToken(ctx, r.accessToken), method, req, reply, cc, opts...)
}

func (r *GRPCRemote) PushBatch(ctx context.Context, _ string, collection string, docs []envelope.Doc) error {
	req := &pb.PushRequest{Collection: collection}
	for _, doc := range docs {
		req.Documents = append(req.Documents, toWire(doc))
	}
	if _, err := r.client.Push(ctx, req); err != nil {
		return r.mapError(err)
	}
	return nil
}

func (r *GRPCRemote) Delete(ctx context.Context, _ string, collection, id string) error {
	req := &pb.DeleteRequest{Collection: collection, Id: id}
	if _, err := r.client.Delete(ctx, req); err != nil {
		return r.mapError(err)
	}
	return nil
}

// Subscribe opens a server stream for one collection and pumps its events
// into apply until the stream ends or the returned cancel fires. Receive
// errors terminate the pump; the engine treats sync as best effort, so
// they are logged, not escalated.
func (r *GRPCRemote) Subscribe(ctx context.Context, _ string, collection string, apply func(sync.Change)) (func(), error) {
	streamCtx, cancel := context.WithCancel(withAccessToken(ctx, r.accessToken))

	stream, err := r.client.Subscribe(streamCtx, &pb.SubscribeRequest{Collection: collection})
	if err != nil {
		cancel()
		return nil, r.mapError(err)
	}

	go func() {
		for {
			ev, err := stream.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) && streamCtx.Err() == nil {
					r.log.Error(streamCtx, "subscription closed", "collection", collection, "error", err)
				}
				return
			}
			ch, err := fromWireEvent(ev)
			if err != nil {
				r.log.Error(streamCtx, "dropping malformed change", "collection", collection, "error", err)
				continue
			}
			apply(ch)
		}
	}()

	return cancel, nil
}

func (r *GRPCRemote) Ping(ctx context.Context) error {
	resp, err := r.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return r.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// GetAudioUploadURL asks the server for a presigned PUT URL for a session
// voice memo and returns the storage key plus the URL.
func (r *GRPCRemote) GetAudioUploadURL(ctx context.Context, sessionID string) (string, string, error) {
	resp, err := r.client.GetAudioUploadUrl(ctx, &pb.GetAudioUploadUrlRequest{SessionId: sessionID})
	if err != nil {
		return "", "", r.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (r *GRPCRemote) GetAudioDownloadURL(ctx context.Context, key string) (string, error) {
	resp, err := r.client.GetAudioDownloadUrl(ctx, &pb.GetAudioDownloadUrlRequest{Key: key})
	if err != nil {
		return "", r.mapError(err)
	}
	return resp.Url, nil
}

func (r *GRPCRemote) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func toWire(doc envelope.Doc) *pb.Document {
	return &pb.Document{
		Id:        doc.ID,
		Data:      doc.Data,
		CreatedAt: doc.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: doc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWireEvent(ev *pb.ChangeEvent) (sync.Change, error) {
	ch := sync.Change{}
	switch ev.Type {
	case pb.ChangeEvent_ADDED:
		ch.Type = sync.ChangeAdded
	case pb.ChangeEvent_MODIFIED:
		ch.Type = sync.ChangeModified
	case pb.ChangeEvent_REMOVED:
		ch.Type = sync.ChangeRemoved
	default:
		return ch, fmt.Errorf("unknown change type %v", ev.Type)
	}

	doc := ev.Document
	if doc == nil {
		return ch, errors.New("change event without document")
	}
	ch.Doc.ID = doc.Id

	if ch.Type == sync.ChangeRemoved {
		return ch, nil
	}

	data, err := sync.NormalizeTimestamps(doc.Data)
	if err != nil {
		return ch, err
	}
	ch.Doc.Data = data

	if ch.Doc.CreatedAt, err = time.Parse(time.RFC3339Nano, doc.CreatedAt); err != nil {
		return ch, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if ch.Doc.UpdatedAt, err = time.Parse(time.RFC3339Nano, doc.UpdatedAt); err != nil {
		return ch, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return ch, nil
}
