// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: dtr/v1/dtr.proto

package dtrpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DtrService_ParseText_FullMethodName          = "/dtr.v1.DtrService/ParseText"
	DtrService_ParseDocument_FullMethodName      = "/dtr.v1.DtrService/ParseDocument"
	DtrService_ListFormats_FullMethodName        = "/dtr.v1.DtrService/ListFormats"
	DtrService_CreateFormat_FullMethodName       = "/dtr.v1.DtrService/CreateFormat"
	DtrService_SetFormatActive_FullMethodName    = "/dtr.v1.DtrService/SetFormatActive"
	DtrService_ListPendingIntakes_FullMethodName = "/dtr.v1.DtrService/ListPendingIntakes"
	DtrService_ApproveIntake_FullMethodName      = "/dtr.v1.DtrService/ApproveIntake"
	DtrService_ExportAttendance_FullMethodName   = "/dtr.v1.DtrService/ExportAttendance"
)

// DtrServiceClient is the client API for DtrService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DtrService parses scanned time sheets into structured attendance
// predictions and manages the registry of recognition formats plus the
// unknown-format review queue.
type DtrServiceClient interface {
	ParseText(ctx context.Context, in *ParseTextRequest, opts ...grpc.CallOption) (*ParseResponse, error)
	ParseDocument(ctx context.Context, in *ParseDocumentRequest, opts ...grpc.CallOption) (*ParseResponse, error)
	ListFormats(ctx context.Context, in *ListFormatsRequest, opts ...grpc.CallOption) (*ListFormatsResponse, error)
	CreateFormat(ctx context.Context, in *CreateFormatRequest, opts ...grpc.CallOption) (*CreateFormatResponse, error)
	SetFormatActive(ctx context.Context, in *SetFormatActiveRequest, opts ...grpc.CallOption) (*SetFormatActiveResponse, error)
	ListPendingIntakes(ctx context.Context, in *ListPendingIntakesRequest, opts ...grpc.CallOption) (*ListPendingIntakesResponse, error)
	ApproveIntake(ctx context.Context, in *ApproveIntakeRequest, opts ...grpc.CallOption) (*ApproveIntakeResponse, error)
	ExportAttendance(ctx context.Context, in *ExportAttendanceRequest, opts ...grpc.CallOption) (*ExportAttendanceResponse, error)
}

type dtrServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDtrServiceClient(cc grpc.ClientConnInterface) DtrServiceClient {
	return &dtrServiceClient{cc}
}

func (c *dtrServiceClient) ParseText(ctx context.Context, in *ParseTextRequest, opts ...grpc.CallOption) (*ParseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseResponse)
	err := c.cc.Invoke(ctx, DtrService_ParseText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dtrServiceClient) ParseDocument(ctx context.Context, in *ParseDocumentRequest, opts ...grpc.CallOption) (*ParseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseResponse)
	err := c.cc.Invoke(ctx, DtrService_ParseDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dtrServiceClient) ListFormats(ctx context.Context, in *ListFormatsRequest, opts ...grpc.CallOption) (*ListFormatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFormatsResponse)
	err := c.cc.Invoke(ctx, DtrService_ListFormats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dtrServiceClient) CreateFormat(ctx context.Context, in *CreateFormatRequest, opts ...grpc.CallOption) (*CreateFormatResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateFormatResponse)
	err := c.cc.Invoke(ctx, DtrService_CreateFormat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dtrServiceClient) SetFormatActive(ctx context.Context, in *SetFormatActiveRequest, opts ...grpc.CallOption) (*SetFormatActiveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetFormatActiveResponse)
	err := c.cc.Invoke(ctx, DtrService_SetFormatActive_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dtrServiceClient) ListPendingIntakes(ctx context.Context, in *ListPendingIntakesRequest, opts ...grpc.CallOption) (*ListPendingIntakesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPendingIntakesResponse)
	err := c.cc.Invoke(ctx, DtrService_ListPendingIntakes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dtrServiceClient) ApproveIntake(ctx context.Context, in *ApproveIntakeRequest, opts ...grpc.CallOption) (*ApproveIntakeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveIntakeResponse)
	err := c.cc.Invoke(ctx, DtrService_ApproveIntake_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dtrServiceClient) ExportAttendance(ctx context.Context, in *ExportAttendanceRequest, opts ...grpc.CallOption) (*ExportAttendanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportAttendanceResponse)
	err := c.cc.Invoke(ctx, DtrService_ExportAttendance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DtrServiceServer is the server API for DtrService service.
// All implementations must embed UnimplementedDtrServiceServer
// for forward compatibility.
//
// DtrService parses scanned time sheets into structured attendance
// predictions and manages the registry of recognition formats plus the
// unknown-format review queue.
type DtrServiceServer interface {
	ParseText(context.Context, *ParseTextRequest) (*ParseResponse, error)
	ParseDocument(context.Context, *ParseDocumentRequest) (*ParseResponse, error)
	ListFormats(context.Context, *ListFormatsRequest) (*ListFormatsResponse, error)
	CreateFormat(context.Context, *CreateFormatRequest) (*CreateFormatResponse, error)
	SetFormatActive(context.Context, *SetFormatActiveRequest) (*SetFormatActiveResponse, error)
	ListPendingIntakes(context.Context, *ListPendingIntakesRequest) (*ListPendingIntakesResponse, error)
	ApproveIntake(context.Context, *ApproveIntakeRequest) (*ApproveIntakeResponse, error)
	ExportAttendance(context.Context, *ExportAttendanceRequest) (*ExportAttendanceResponse, error)
	mustEmbedUnimplementedDtrServiceServer()
}

// UnimplementedDtrServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDtrServiceServer struct{}

func (UnimplementedDtrServiceServer) ParseText(context.Context, *ParseTextRequest) (*ParseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseText not implemented")
}
func (UnimplementedDtrServiceServer) ParseDocument(context.Context, *ParseDocumentRequest) (*ParseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseDocument not implemented")
}
func (UnimplementedDtrServiceServer) ListFormats(context.Context, *ListFormatsRequest) (*ListFormatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFormats not implemented")
}
func (UnimplementedDtrServiceServer) CreateFormat(context.Context, *CreateFormatRequest) (*CreateFormatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFormat not implemented")
}
func (UnimplementedDtrServiceServer) SetFormatActive(context.Context, *SetFormatActiveRequest) (*SetFormatActiveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetFormatActive not implemented")
}
func (UnimplementedDtrServiceServer) ListPendingIntakes(context.Context, *ListPendingIntakesRequest) (*ListPendingIntakesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPendingIntakes not implemented")
}
func (UnimplementedDtrServiceServer) ApproveIntake(context.Context, *ApproveIntakeRequest) (*ApproveIntakeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveIntake not implemented")
}
func (UnimplementedDtrServiceServer) ExportAttendance(context.Context, *ExportAttendanceRequest) (*ExportAttendanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportAttendance not implemented")
}
func (UnimplementedDtrServiceServer) mustEmbedUnimplementedDtrServiceServer() {}
func (UnimplementedDtrServiceServer) testEmbeddedByValue()                    {}

// UnsafeDtrServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DtrServiceServer will
// result in compilation errors.
type UnsafeDtrServiceServer interface {
	mustEmbedUnimplementedDtrServiceServer()
}

func RegisterDtrServiceServer(s grpc.ServiceRegistrar, srv DtrServiceServer) {
	// If the following call pancis, it indicates UnimplementedDtrServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DtrService_ServiceDesc, srv)
}

func _DtrService_ParseText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).ParseText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_ParseText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).ParseText(ctx, req.(*ParseTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DtrService_ParseDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).ParseDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_ParseDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).ParseDocument(ctx, req.(*ParseDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DtrService_ListFormats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFormatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).ListFormats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_ListFormats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).ListFormats(ctx, req.(*ListFormatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DtrService_CreateFormat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFormatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).CreateFormat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_CreateFormat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).CreateFormat(ctx, req.(*CreateFormatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DtrService_SetFormatActive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetFormatActiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).SetFormatActive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_SetFormatActive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).SetFormatActive(ctx, req.(*SetFormatActiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DtrService_ListPendingIntakes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPendingIntakesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).ListPendingIntakes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_ListPendingIntakes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).ListPendingIntakes(ctx, req.(*ListPendingIntakesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DtrService_ApproveIntake_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveIntakeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).ApproveIntake(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_ApproveIntake_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).ApproveIntake(ctx, req.(*ApproveIntakeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DtrService_ExportAttendance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportAttendanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DtrServiceServer).ExportAttendance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DtrService_ExportAttendance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DtrServiceServer).ExportAttendance(ctx, req.(*ExportAttendanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DtrService_ServiceDesc is the grpc.ServiceDesc for DtrService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DtrService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dtr.v1.DtrService",
	HandlerType: (*DtrServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseText",
			Handler:    _DtrService_ParseText_Handler,
		},
		{
			MethodName: "ParseDocument",
			Handler:    _DtrService_ParseDocument_Handler,
		},
		{
			MethodName: "ListFormats",
			Handler:    _DtrService_ListFormats_Handler,
		},
		{
			MethodName: "CreateFormat",
			Handler:    _DtrService_CreateFormat_Handler,
		},
		{
			MethodName: "SetFormatActive",
			Handler:    _DtrService_SetFormatActive_Handler,
		},
		{
			MethodName: "ListPendingIntakes",
			Handler:    _DtrService_ListPendingIntakes_Handler,
		},
		{
			MethodName: "ApproveIntake",
			Handler:    _DtrService_ApproveIntake_Handler,
		},
		{
			MethodName: "ExportAttendance",
			Handler:    _DtrService_ExportAttendance_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dtr/v1/dtr.proto",
}
