package moderation

import (
	"context"
	"strings"

	"socialfeed/internal/common"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName               = "moderation.v1.ModerationService"
	VerifyFullMethod          = "/" + ServiceName + "/Verify"
	VerifyCommunityFullMethod = "/" + ServiceName + "/VerifyCommunity"
)

// ModerationServer exposes the engine over gRPC using well-known Struct messages.
type ModerationServer interface {
	Verify(context.Context, *structpb.Struct) (*structpb.Struct, error)
	VerifyCommunity(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// CrisisAlerter receives crisis-flagged community submissions.
type CrisisAlerter interface {
	RaiseCrisisAlert(contextID string, kind common.ContentKind, authorID string)
}

type GRPCServer struct {
	engine *Engine
	alerts CrisisAlerter
}

func NewGRPCServer(engine *Engine, alerts CrisisAlerter) *GRPCServer {
	return &GRPCServer{engine: engine, alerts: alerts}
}

func (s *GRPCServer) Verify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	v := s.engine.Verify(stringField(req, "text"))
	return structpb.NewStruct(map[string]interface{}{
		"safe":   v.Safe,
		"reason": v.Reason,
		"crisis": v.Crisis,
	})
}

func (s *GRPCServer) VerifyCommunity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	meta := CommunityMetadata{
		Name:        stringField(req, "name"),
		Description: stringField(req, "description"),
		Category:    stringField(req, "category"),
	}
	if strings.TrimSpace(meta.Name) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	v := s.engine.VerifyCommunityMetadata(meta)
	if v.Crisis && s.alerts != nil {
		s.alerts.RaiseCrisisAlert(meta.Name, common.ContentCommunity, stringField(req, "author_id"))
	}
	return structpb.NewStruct(map[string]interface{}{
		"valid":  v.Valid,
		"reason": v.Reason,
		"crisis": v.Crisis,
	})
}

func stringField(s *structpb.Struct, key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s.GetFields()[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func RegisterModerationServer(s grpc.ServiceRegistrar, srv ModerationServer) {
	s.RegisterService(&ModerationServiceDesc, srv)
}

func _ModerationService_Verify_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModerationServer).Verify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifyFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModerationServer).Verify(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModerationService_VerifyCommunity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModerationServer).VerifyCommunity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifyCommunityFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModerationServer).VerifyCommunity(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ModerationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ModerationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Verify",
			Handler:    _ModerationService_Verify_Handler,
		},
		{
			MethodName: "VerifyCommunity",
			Handler:    _ModerationService_VerifyCommunity_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moderation/v1/moderation.proto",
}
