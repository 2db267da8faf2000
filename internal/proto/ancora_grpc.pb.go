// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: ancora.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	AncoraSyncService_Push_FullMethodName                = "/ancora.AncoraSyncService/Push"
	AncoraSyncService_Delete_FullMethodName              = "/ancora.AncoraSyncService/Delete"
	AncoraSyncService_Subscribe_FullMethodName           = "/ancora.AncoraSyncService/Subscribe"
	AncoraSyncService_Ping_FullMethodName                = "/ancora.AncoraSyncService/Ping"
	AncoraSyncService_GetAudioUploadUrl_FullMethodName   = "/ancora.AncoraSyncService/GetAudioUploadUrl"
	AncoraSyncService_GetAudioDownloadUrl_FullMethodName = "/ancora.AncoraSyncService/GetAudioDownloadUrl"
)

// AncoraSyncServiceClient is the client API for AncoraSyncService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type AncoraSyncServiceClient interface {
	Push(ctx context.Context, in *PushRequest, opts ...grpc.CallOption) (*PushResponse, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (AncoraSyncService_SubscribeClient, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	GetAudioUploadUrl(ctx context.Context, in *GetAudioUploadUrlRequest, opts ...grpc.CallOption) (*GetAudioUploadUrlResponse, error)
	GetAudioDownloadUrl(ctx context.Context, in *GetAudioDownloadUrlRequest, opts ...grpc.CallOption) (*GetAudioDownloadUrlResponse, error)
}

type ancoraSyncServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAncoraSyncServiceClient(cc grpc.ClientConnInterface) AncoraSyncServiceClient {
	return &ancoraSyncServiceClient{cc}
}

func (c *ancoraSyncServiceClient) Push(ctx context.Context, in *PushRequest, opts ...grpc.CallOption) (*PushResponse, error) {
	out := new(PushResponse)
	err := c.cc.Invoke(ctx, AncoraSyncService_Push_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ancoraSyncServiceClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	err := c.cc.Invoke(ctx, AncoraSyncService_Delete_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ancoraSyncServiceClient) Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (AncoraSyncService_SubscribeClient, error) {
	stream, err := c.cc.NewStream(ctx, &AncoraSyncService_ServiceDesc.Streams[0], AncoraSyncService_Subscribe_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &ancoraSyncServiceSubscribeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type AncoraSyncService_SubscribeClient interface {
	Recv() (*ChangeEvent, error)
	grpc.ClientStream
}

type ancoraSyncServiceSubscribeClient struct {
	grpc.ClientStream
}

func (x *ancoraSyncServiceSubscribeClient) Recv() (*ChangeEvent, error) {
	m := new(ChangeEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *ancoraSyncServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, AncoraSyncService_Ping_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ancoraSyncServiceClient) GetAudioUploadUrl(ctx context.Context, in *GetAudioUploadUrlRequest, opts ...grpc.CallOption) (*GetAudioUploadUrlResponse, error) {
	out := new(GetAudioUploadUrlResponse)
	err := c.cc.Invoke(ctx, AncoraSyncService_GetAudioUploadUrl_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ancoraSyncServiceClient) GetAudioDownloadUrl(ctx context.Context, in *GetAudioDownloadUrlRequest, opts ...grpc.CallOption) (*GetAudioDownloadUrlResponse, error) {
	out := new(GetAudioDownloadUrlResponse)
	err := c.cc.Invoke(ctx, AncoraSyncService_GetAudioDownloadUrl_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AncoraSyncServiceServer is the server API for AncoraSyncService service.
// All implementations must embed UnimplementedAncoraSyncServiceServer
// for forward compatibility
type AncoraSyncServiceServer interface {
	Push(context.Context, *PushRequest) (*PushResponse, error)
	Delete(context.Context, *DeleteRequest) (*DeleteResponse, error)
	Subscribe(*SubscribeRequest, AncoraSyncService_SubscribeServer) error
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	GetAudioUploadUrl(context.Context, *GetAudioUploadUrlRequest) (*GetAudioUploadUrlResponse, error)
	GetAudioDownloadUrl(context.Context, *GetAudioDownloadUrlRequest) (*GetAudioDownloadUrlResponse, error)
	mustEmbedUnimplementedAncoraSyncServiceServer()
}

// UnimplementedAncoraSyncServiceServer must be embedded to have forward compatible implementations.
type UnimplementedAncoraSyncServiceServer struct {
}

func (UnimplementedAncoraSyncServiceServer) Push(context.Context, *PushRequest) (*PushResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Push not implemented")
}
func (UnimplementedAncoraSyncServiceServer) Delete(context.Context, *DeleteRequest) (*DeleteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedAncoraSyncServiceServer) Subscribe(*SubscribeRequest, AncoraSyncService_SubscribeServer) error {
	return status.Errorf(codes.Unimplemented, "method Subscribe not implemented")
}
func (UnimplementedAncoraSyncServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedAncoraSyncServiceServer) GetAudioUploadUrl(context.Context, *GetAudioUploadUrlRequest) (*GetAudioUploadUrlResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAudioUploadUrl not implemented")
}
func (UnimplementedAncoraSyncServiceServer) GetAudioDownloadUrl(context.Context, *GetAudioDownloadUrlRequest) (*GetAudioDownloadUrlResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAudioDownloadUrl not implemented")
}
func (UnimplementedAncoraSyncServiceServer) mustEmbedUnimplementedAncoraSyncServiceServer() {}

// UnsafeAncoraSyncServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AncoraSyncServiceServer will
// result in compilation errors.
type UnsafeAncoraSyncServiceServer interface {
	mustEmbedUnimplementedAncoraSyncServiceServer()
}

func RegisterAncoraSyncServiceServer(s grpc.ServiceRegistrar, srv AncoraSyncServiceServer) {
	s.RegisterService(&AncoraSyncService_ServiceDesc, srv)
}

func _AncoraSyncService_Push_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PushRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AncoraSyncServiceServer).Push(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AncoraSyncService_Push_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AncoraSyncServiceServer).Push(ctx, req.(*PushRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AncoraSyncService_Delete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AncoraSyncServiceServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AncoraSyncService_Delete_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AncoraSyncServiceServer).Delete(ctx, req.(*DeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AncoraSyncService_Subscribe_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AncoraSyncServiceServer).Subscribe(m, &ancoraSyncServiceSubscribeServer{stream})
}

type AncoraSyncService_SubscribeServer interface {
	Send(*ChangeEvent) error
	grpc.ServerStream
}

type ancoraSyncServiceSubscribeServer struct {
	grpc.ServerStream
}

func (x *ancoraSyncServiceSubscribeServer) Send(m *ChangeEvent) error {
	return x.ServerStream.SendMsg(m)
}

func _AncoraSyncService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AncoraSyncServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AncoraSyncService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AncoraSyncServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AncoraSyncService_GetAudioUploadUrl_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAudioUploadUrlRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AncoraSyncServiceServer).GetAudioUploadUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AncoraSyncService_GetAudioUploadUrl_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AncoraSyncServiceServer).GetAudioUploadUrl(ctx, req.(*GetAudioUploadUrlRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AncoraSyncService_GetAudioDownloadUrl_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAudioDownloadUrlRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AncoraSyncServiceServer).GetAudioDownloadUrl(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AncoraSyncService_GetAudioDownloadUrl_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AncoraSyncServiceServer).GetAudioDownloadUrl(ctx, req.(*GetAudioDownloadUrlRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AncoraSyncService_ServiceDesc is the grpc.ServiceDesc for AncoraSyncService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AncoraSyncService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ancora.AncoraSyncService",
	HandlerType: (*AncoraSyncServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Push",
			Handler:    _AncoraSyncService_Push_Handler,
		},
		{
			MethodName: "Delete",
			Handler:    _AncoraSyncService_Delete_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _AncoraSyncService_Ping_Handler,
		},
		{
			MethodName: "GetAudioUploadUrl",
			Handler:    _AncoraSyncService_GetAudioUploadUrl_Handler,
		},
		{
			MethodName: "GetAudioDownloadUrl",
			Handler:    _AncoraSyncService_GetAudioDownloadUrl_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       _AncoraSyncService_Subscribe_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "ancora.proto",
}
