package grpc

// proto.go defines the gRPC server interface derived from churn/v1/churn.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is
// run, replace this file with the import from the generated churn/v1 package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ChurnServiceServer is the server API for ChurnService.
type ChurnServiceServer interface {
	Predict(context.Context, *PredictRequest) (*PredictResponse, error)
	Explain(context.Context, *ExplainRequest) (*ExplainResponse, error)
	CompareImportances(context.Context, *CompareImportancesRequest) (*CompareImportancesResponse, error)
	RunBatch(context.Context, *RunBatchRequest) (*RunBatchResponse, error)
	GetModelInfo(context.Context, *GetModelInfoRequest) (*GetModelInfoResponse, error)
	GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error)
	mustEmbedUnimplementedChurnServiceServer()
}

// UnimplementedChurnServiceServer provides forward-compatible default implementations.
type UnimplementedChurnServiceServer struct{}

func (UnimplementedChurnServiceServer) Predict(context.Context, *PredictRequest) (*PredictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Predict not implemented")
}
func (UnimplementedChurnServiceServer) Explain(context.Context, *ExplainRequest) (*ExplainResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Explain not implemented")
}
func (UnimplementedChurnServiceServer) CompareImportances(context.Context, *CompareImportancesRequest) (*CompareImportancesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareImportances not implemented")
}
func (UnimplementedChurnServiceServer) RunBatch(context.Context, *RunBatchRequest) (*RunBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunBatch not implemented")
}
func (UnimplementedChurnServiceServer) GetModelInfo(context.Context, *GetModelInfoRequest) (*GetModelInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetModelInfo not implemented")
}
func (UnimplementedChurnServiceServer) GetTemplate(context.Context, *GetTemplateRequest) (*GetTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTemplate not implemented")
}
func (UnimplementedChurnServiceServer) mustEmbedUnimplementedChurnServiceServer() {}

// RegisterChurnServiceServer registers the ChurnServiceServer with the gRPC server.
func RegisterChurnServiceServer(s *grpclib.Server, srv ChurnServiceServer) {
	s.RegisterService(&_ChurnService_serviceDesc, srv)
}

var _ChurnService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "churn.v1.ChurnService",
	HandlerType: (*ChurnServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Predict", Handler: _ChurnService_Predict_Handler},
		{MethodName: "Explain", Handler: _ChurnService_Explain_Handler},
		{MethodName: "CompareImportances", Handler: _ChurnService_CompareImportances_Handler},
		{MethodName: "RunBatch", Handler: _ChurnService_RunBatch_Handler},
		{MethodName: "GetModelInfo", Handler: _ChurnService_GetModelInfo_Handler},
		{MethodName: "GetTemplate", Handler: _ChurnService_GetTemplate_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _ChurnService_Predict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(PredictRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChurnServiceServer).Predict(ctx, req)
}

func _ChurnService_Explain_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ExplainRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChurnServiceServer).Explain(ctx, req)
}

func _ChurnService_CompareImportances_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(CompareImportancesRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChurnServiceServer).CompareImportances(ctx, req)
}

func _ChurnService_RunBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(RunBatchRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChurnServiceServer).RunBatch(ctx, req)
}

func _ChurnService_GetModelInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetModelInfoRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChurnServiceServer).GetModelInfo(ctx, req)
}

func _ChurnService_GetTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetTemplateRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ChurnServiceServer).GetTemplate(ctx, req)
}
