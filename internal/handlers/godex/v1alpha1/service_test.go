package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/handlers/godex/v1alpha1"
	"github.com/KirkDiggler/godex/internal/orchestrators/dex"
	dexmock "github.com/KirkDiggler/godex/internal/orchestrators/dex/mock"
	gymmock "github.com/KirkDiggler/godex/internal/orchestrators/gym/mock"
)

func TestFullMethod(t *testing.T) {
	assert.Equal(t, "/godex.v1alpha1.DexService/CanEvolve",
		v1alpha1.FullMethod(v1alpha1.DexServiceName, v1alpha1.DexServiceCanEvolve))
}

func TestServiceDescsCoverEveryMethod(t *testing.T) {
	names := func(desc grpc.ServiceDesc) []string {
		var out []string
		for _, m := range desc.Methods {
			out = append(out, m.MethodName)
		}
		return out
	}

	assert.ElementsMatch(t, []string{
		"GetCreature", "EvaluateMove", "ListCreatures", "CalculateStats",
		"RollIVs", "GetFamilyTree", "CanEvolve",
	}, names(v1alpha1.DexServiceDesc))
	assert.ElementsMatch(t, []string{
		"CreateRoster", "AddMember", "RemoveMember", "GetReport", "DeleteRoster",
	}, names(v1alpha1.GymServiceDesc))
}

func TestServiceRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDex := dexmock.NewMockService(ctrl)

	dexHandler, err := v1alpha1.NewDexHandler(&v1alpha1.DexHandlerConfig{DexService: mockDex})
	require.NoError(t, err)
	gymHandler, err := v1alpha1.NewGymHandler(&v1alpha1.GymHandlerConfig{GymService: gymmock.NewMockService(ctrl)})
	require.NoError(t, err)

	var intercepted []string
	server := grpc.NewServer(grpc.UnaryInterceptor(
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			intercepted = append(intercepted, info.FullMethod)
			return handler(ctx, req)
		},
	))
	v1alpha1.RegisterDexServiceServer(server, dexHandler)
	v1alpha1.RegisterGymServiceServer(server, gymHandler)

	listener := bufconn.Listen(1 << 20)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	mockDex.EXPECT().
		GetFamilyTree(gomock.Any(), &dex.GetFamilyTreeInput{Search: "eevee"}).
		Return(&dex.GetFamilyTreeOutput{
			Creature: &godex.CreatureDef{Key: "eevee", Name: "Eevee", Types: []string{"normal"}},
			Family: &godex.FamilyTree{
				StagesTotal:  2,
				CurrentStage: 1,
				NextStages:   []godex.Branch{{Key: "vaporeon"}, {Key: "jolteon"}},
			},
		}, nil)

	client := v1alpha1.NewDexServiceClient(conn)
	req, err := structpb.NewStruct(map[string]any{"search": "eevee"})
	require.NoError(t, err)

	resp, err := client.Call(context.Background(), v1alpha1.DexServiceGetFamilyTree, req)
	require.NoError(t, err)

	family := resp.GetFields()["family"].GetStructValue()
	assert.True(t, family.GetFields()["branching"].GetBoolValue())
	assert.Len(t, family.GetFields()["next_stages"].GetListValue().GetValues(), 2)
	assert.Equal(t, []string{"/godex.v1alpha1.DexService/GetFamilyTree"}, intercepted)

	// Validation failures surface as status errors on the client side
	_, err = v1alpha1.NewGymServiceClient(conn).Call(context.Background(), v1alpha1.GymServiceGetReport, nil)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
