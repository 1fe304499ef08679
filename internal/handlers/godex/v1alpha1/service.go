package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Fully qualified service names
const (
	DexServiceName = "godex.v1alpha1.DexService"
	GymServiceName = "godex.v1alpha1.GymService"
)

// DexService method names
const (
	DexServiceGetCreature    = "GetCreature"
	DexServiceEvaluateMove   = "EvaluateMove"
	DexServiceListCreatures  = "ListCreatures"
	DexServiceCalculateStats = "CalculateStats"
	DexServiceRollIVs        = "RollIVs"
	DexServiceGetFamilyTree  = "GetFamilyTree"
	DexServiceCanEvolve      = "CanEvolve"
)

// GymService method names
const (
	GymServiceCreateRoster = "CreateRoster"
	GymServiceAddMember    = "AddMember"
	GymServiceRemoveMember = "RemoveMember"
	GymServiceGetReport    = "GetReport"
	GymServiceDeleteRoster = "DeleteRoster"
)

// FullMethod returns the gRPC method path for a service method
func FullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// DexServiceServer is the server API for the dex service
type DexServiceServer interface {
	GetCreature(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EvaluateMove(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCreatures(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculateStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollIVs(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFamilyTree(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CanEvolve(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// GymServiceServer is the server API for the gym service
type GymServiceServer interface {
	CreateRoster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddMember(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveMember(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteRoster(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a typed call to grpc.MethodHandler, running it
// through the server interceptor chain when one is installed.
func unaryHandler(service, method string, call unaryCall) grpc.MethodHandler {
	fullMethod := FullMethod(service, method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func dexMethod(name string, call func(DexServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: unaryHandler(DexServiceName, name, func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return call(srv.(DexServiceServer), ctx, req)
		}),
	}
}

func gymMethod(name string, call func(GymServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: unaryHandler(GymServiceName, name, func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return call(srv.(GymServiceServer), ctx, req)
		}),
	}
}

// DexServiceDesc is the grpc.ServiceDesc for the dex service
var DexServiceDesc = grpc.ServiceDesc{
	ServiceName: DexServiceName,
	HandlerType: (*DexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		dexMethod(DexServiceGetCreature, DexServiceServer.GetCreature),
		dexMethod(DexServiceEvaluateMove, DexServiceServer.EvaluateMove),
		dexMethod(DexServiceListCreatures, DexServiceServer.ListCreatures),
		dexMethod(DexServiceCalculateStats, DexServiceServer.CalculateStats),
		dexMethod(DexServiceRollIVs, DexServiceServer.RollIVs),
		dexMethod(DexServiceGetFamilyTree, DexServiceServer.GetFamilyTree),
		dexMethod(DexServiceCanEvolve, DexServiceServer.CanEvolve),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "godex/v1alpha1/dex.proto",
}

// GymServiceDesc is the grpc.ServiceDesc for the gym service
var GymServiceDesc = grpc.ServiceDesc{
	ServiceName: GymServiceName,
	HandlerType: (*GymServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		gymMethod(GymServiceCreateRoster, GymServiceServer.CreateRoster),
		gymMethod(GymServiceAddMember, GymServiceServer.AddMember),
		gymMethod(GymServiceRemoveMember, GymServiceServer.RemoveMember),
		gymMethod(GymServiceGetReport, GymServiceServer.GetReport),
		gymMethod(GymServiceDeleteRoster, GymServiceServer.DeleteRoster),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "godex/v1alpha1/gym.proto",
}

// RegisterDexServiceServer registers the dex service with a gRPC server
func RegisterDexServiceServer(s grpc.ServiceRegistrar, srv DexServiceServer) {
	s.RegisterService(&DexServiceDesc, srv)
}

// RegisterGymServiceServer registers the gym service with a gRPC server
func RegisterGymServiceServer(s grpc.ServiceRegistrar, srv GymServiceServer) {
	s.RegisterService(&GymServiceDesc, srv)
}

// ServiceClient invokes methods of either service over a client connection
type ServiceClient struct {
	cc      grpc.ClientConnInterface
	service string
}

// NewDexServiceClient creates a client for the dex service
func NewDexServiceClient(cc grpc.ClientConnInterface) *ServiceClient {
	return &ServiceClient{cc: cc, service: DexServiceName}
}

// NewGymServiceClient creates a client for the gym service
func NewGymServiceClient(cc grpc.ClientConnInterface) *ServiceClient {
	return &ServiceClient{cc: cc, service: GymServiceName}
}

// Call invokes a unary method by name
func (c *ServiceClient) Call(
	ctx context.Context,
	method string,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(c.service, method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
