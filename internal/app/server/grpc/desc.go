package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full method names of the brain.v1.Brain service.
const (
	ServiceName = "brain.v1.Brain"

	ListContentsMethod = "/" + ServiceName + "/ListContents"
	EnableShareMethod  = "/" + ServiceName + "/EnableShare"
	DisableShareMethod = "/" + ServiceName + "/DisableShare"
	ResolveShareMethod = "/" + ServiceName + "/ResolveShare"
	GetStatsMethod     = "/" + ServiceName + "/GetStats"
)

// BrainServiceServer is the server side of brain.v1.Brain. Messages are
// protobuf well-known types so no generated code is needed.
type BrainServiceServer interface {
	ListContents(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	EnableShare(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	DisableShare(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	ResolveShare(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// BrainServiceDesc describes brain.v1.Brain for grpc.Server.RegisterService.
var BrainServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BrainServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListContents", Handler: unaryHandler(ListContentsMethod, BrainServiceServer.ListContents)},
		{MethodName: "EnableShare", Handler: unaryHandler(EnableShareMethod, BrainServiceServer.EnableShare)},
		{MethodName: "DisableShare", Handler: unaryHandler(DisableShareMethod, BrainServiceServer.DisableShare)},
		{MethodName: "ResolveShare", Handler: unaryHandler(ResolveShareMethod, BrainServiceServer.ResolveShare)},
		{MethodName: "GetStats", Handler: unaryHandler(GetStatsMethod, BrainServiceServer.GetStats)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "brain/v1/brain.proto",
}

// unaryHandler builds the grpc.MethodDesc handler for one method, the same
// shape protoc-gen-go-grpc emits per method.
func unaryHandler[Req any, Resp any](fullMethod string, call func(BrainServiceServer, context.Context, *Req) (Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(BrainServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BrainServiceServer), ctx, req.(*Req))
		}

		return interceptor(ctx, in, info, handler)
	}
}

// BrainClient is a thin client for brain.v1.Brain.
type BrainClient struct {
	cc grpc.ClientConnInterface
}

func NewBrainClient(cc grpc.ClientConnInterface) *BrainClient {
	return &BrainClient{cc: cc}
}

func (c *BrainClient) ListContents(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListContentsMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainClient) EnableShare(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, EnableShareMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func (c *BrainClient) DisableShare(ctx context.Context, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, DisableShareMethod, &emptypb.Empty{}, new(emptypb.Empty), opts...)
}

func (c *BrainClient) ResolveShare(ctx context.Context, hash string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ResolveShareMethod, wrapperspb.String(hash), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainClient) GetStats(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetStatsMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
