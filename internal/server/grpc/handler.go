package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/avoganov/ancora/internal/proto"
	"github.com/avoganov/ancora/internal/server/hub"
	"github.com/avoganov/ancora/internal/server/models"
)

func docFromWire(collection string, d *pb.Document) (*models.Document, error) {
	if d.Id == "" {
		return nil, fmt.Errorf("document without id")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}

	return &models.Document{
		Collection: collection,
		ID:         d.Id,
		Data:       d.Data,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

func docToWire(d *models.Document) *pb.Document {
	return &pb.Document{
		Id:        d.ID,
		Data:      d.Data,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (s *GRPCServer) Push(ctx context.Context, req *pb.PushRequest) (*pb.PushResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]*models.Document, 0, len(req.Documents))
	for _, d := range req.Documents {
		doc, err := docFromWire(req.Collection, d)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		docs = append(docs, doc)
	}

	if err := s.store.PushBatch(ctx, userID, docs); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "failed to store batch")
	}

	return &pb.PushResponse{}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, userID, req.Collection, req.Id); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "failed to delete document")
	}

	return &pb.DeleteResponse{}, nil
}

// Subscribe streams the user's current collection state followed by live
// changes. The hub registration happens before the snapshot read so no
// change committed in between is lost.
func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream pb.AncoraSyncService_SubscribeServer) error {

	ctx := stream.Context()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	events, cancel := s.hub.Subscribe(userID, req.Collection)
	defer cancel()

	snapshot, err := s.store.Snapshot(ctx, userID, req.Collection)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "failed to load snapshot")
	}

	for _, d := range snapshot {
		ev := &pb.ChangeEvent{
			Type:       pb.ChangeEvent_ADDED,
			Collection: req.Collection,
			Document:   docToWire(d),
		}
		if err := stream.Send(ev); err != nil {
			return err
		}
	}

	s.logger.Debug(ctx, "subscriber attached", "collection", req.Collection, "snapshot", len(snapshot))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			wireType := pb.ChangeEvent_MODIFIED
			if ev.Type == hub.EventRemoved {
				wireType = pb.ChangeEvent_REMOVED
			}

			change := &pb.ChangeEvent{
				Type:       wireType,
				Collection: req.Collection,
				Document:   docToWire(ev.Doc),
			}
			if err := stream.Send(change); err != nil {
				return err
			}
		}
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) GetAudioUploadUrl(ctx context.Context, req *pb.GetAudioUploadUrlRequest) (*pb.GetAudioUploadUrlResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key, url, err := s.audio.GetUploadURL(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "failed to presign upload")
	}

	return &pb.GetAudioUploadUrlResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) GetAudioDownloadUrl(ctx context.Context, req *pb.GetAudioDownloadUrlRequest) (*pb.GetAudioDownloadUrlResponse, error) {

	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	url, err := s.audio.GetDownloadURL(ctx, req.Key)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "failed to presign download")
	}

	return &pb.GetAudioDownloadUrlResponse{Url: url}, nil
}
