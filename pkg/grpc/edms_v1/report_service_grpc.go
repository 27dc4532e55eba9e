// Package edms_v1 holds the client and server bindings of the edms.v1
// ReportService declared in report_service.proto. Both messages are
// google.protobuf.Struct, so no message code is generated.
package edms_v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ReportService_SubmitReport_FullMethodName = "/edms.v1.ReportService/SubmitReport"
	ReportService_SetLimiter_FullMethodName   = "/edms.v1.ReportService/SetLimiter"
)

type ReportServiceClient interface {
	SubmitReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type reportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportServiceClient(cc grpc.ClientConnInterface) ReportServiceClient {
	return &reportServiceClient{cc}
}

func (c *reportServiceClient) SubmitReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, ReportService_SubmitReport_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportServiceClient) SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, ReportService_SetLimiter_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReportServiceServer must embed UnimplementedReportServiceServer.
type ReportServiceServer interface {
	SubmitReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedReportServiceServer()
}

type UnimplementedReportServiceServer struct{}

func (UnimplementedReportServiceServer) SubmitReport(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitReport not implemented")
}

func (UnimplementedReportServiceServer) SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetLimiter not implemented")
}

func (UnimplementedReportServiceServer) mustEmbedUnimplementedReportServiceServer() {}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

func _ReportService_SubmitReport_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).SubmitReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_SubmitReport_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReportServiceServer).SubmitReport(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportService_SetLimiter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).SetLimiter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportService_SetLimiter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReportServiceServer).SetLimiter(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "edms.v1.ReportService",
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitReport",
			Handler:    _ReportService_SubmitReport_Handler,
		},
		{
			MethodName: "SetLimiter",
			Handler:    _ReportService_SetLimiter_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "report_service.proto",
}
