package types

import (
	"context"
	"fmt"

	gogogrpc "github.com/cosmos/gogoproto/grpc"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

const queryServiceName = ProtoPackage + ".Query"

// QueryServer serves farm reads that need keeper logic. Plain records
// (registry, pools) are read straight from the store.
type QueryServer interface {
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	Positions(context.Context, *QueryPositionsRequest) (*QueryPositionsResponse, error)
	PendingReward(context.Context, *QueryPendingRewardRequest) (*QueryPendingRewardResponse, error)
	Vaults(context.Context, *QueryVaultsRequest) (*QueryVaultsResponse, error)
}

// PoolVaults lists the escrow accounts of a pool with their balances
type PoolVaults struct {
	Authority     string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority"`
	StakedVault   string `protobuf:"bytes,2,opt,name=staked_vault,json=stakedVault,proto3" json:"staked_vault"`
	StakedBalance uint64 `protobuf:"varint,3,opt,name=staked_balance,json=stakedBalance,proto3" json:"staked_balance"`
	RewardVault   string `protobuf:"bytes,4,opt,name=reward_vault,json=rewardVault,proto3" json:"reward_vault"`
	RewardBalance uint64 `protobuf:"varint,5,opt,name=reward_balance,json=rewardBalance,proto3" json:"reward_balance"`
}

type QueryPositionRequest struct {
	PoolIndex uint64 `protobuf:"varint,1,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	Depositor string `protobuf:"bytes,2,opt,name=depositor,proto3" json:"depositor"`
}

type QueryPositionResponse struct {
	Position *Position `protobuf:"bytes,1,opt,name=position,proto3" json:"position"`
}

type QueryPositionsRequest struct {
	PoolIndex uint64 `protobuf:"varint,1,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
}

type QueryPositionsResponse struct {
	Positions []Position `protobuf:"bytes,1,rep,name=positions,proto3" json:"positions"`
}

type QueryPendingRewardRequest struct {
	PoolIndex uint64 `protobuf:"varint,1,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	Depositor string `protobuf:"bytes,2,opt,name=depositor,proto3" json:"depositor"`
}

// QueryPendingRewardResponse carries the claimable reward and the height it
// was computed at
type QueryPendingRewardResponse struct {
	PendingReward uint64 `protobuf:"varint,1,opt,name=pending_reward,json=pendingReward,proto3" json:"pending_reward"`
	Height        int64  `protobuf:"varint,2,opt,name=height,proto3" json:"height"`
}

type QueryVaultsRequest struct {
	PoolIndex uint64 `protobuf:"varint,1,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
}

type QueryVaultsResponse struct {
	Vaults *PoolVaults `protobuf:"bytes,1,opt,name=vaults,proto3" json:"vaults"`
}

func (m *Position) Reset()         { *m = Position{} }
func (m *Position) ProtoMessage()  {}
func (m *Position) String() string { return fmt.Sprintf("%+v", *m) }

func (m *PoolVaults) Reset()         { *m = PoolVaults{} }
func (m *PoolVaults) ProtoMessage()  {}
func (m *PoolVaults) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryPositionRequest) Reset()         { *m = QueryPositionRequest{} }
func (m *QueryPositionRequest) ProtoMessage()  {}
func (m *QueryPositionRequest) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryPositionResponse) Reset()         { *m = QueryPositionResponse{} }
func (m *QueryPositionResponse) ProtoMessage()  {}
func (m *QueryPositionResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryPositionsRequest) Reset()         { *m = QueryPositionsRequest{} }
func (m *QueryPositionsRequest) ProtoMessage()  {}
func (m *QueryPositionsRequest) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryPositionsResponse) Reset()         { *m = QueryPositionsResponse{} }
func (m *QueryPositionsResponse) ProtoMessage()  {}
func (m *QueryPositionsResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryPendingRewardRequest) Reset()         { *m = QueryPendingRewardRequest{} }
func (m *QueryPendingRewardRequest) ProtoMessage()  {}
func (m *QueryPendingRewardRequest) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryPendingRewardResponse) Reset()         { *m = QueryPendingRewardResponse{} }
func (m *QueryPendingRewardResponse) ProtoMessage()  {}
func (m *QueryPendingRewardResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryVaultsRequest) Reset()         { *m = QueryVaultsRequest{} }
func (m *QueryVaultsRequest) ProtoMessage()  {}
func (m *QueryVaultsRequest) String() string { return fmt.Sprintf("%+v", *m) }

func (m *QueryVaultsResponse) Reset()         { *m = QueryVaultsResponse{} }
func (m *QueryVaultsResponse) ProtoMessage()  {}
func (m *QueryVaultsResponse) String() string { return fmt.Sprintf("%+v", *m) }

// Message order fixes the indexes returned by Descriptor.
func queryFile() *descriptorpb.FileDescriptorProto {
	messages := []*descriptorpb.DescriptorProto{
		message("Position",
			field("pool_index", 1, typeUint64),
			field("depositor", 2, typeString),
			field("staked_amount", 3, typeUint64),
			field("reward_debt", 4, typeUint64),
		),
		message("PoolVaults",
			field("authority", 1, typeString),
			field("staked_vault", 2, typeString),
			field("staked_balance", 3, typeUint64),
			field("reward_vault", 4, typeString),
			field("reward_balance", 5, typeUint64),
		),
		message("QueryPositionRequest",
			field("pool_index", 1, typeUint64),
			field("depositor", 2, typeString),
		),
		message("QueryPositionResponse",
			messageField("position", 1, "Position"),
		),
		message("QueryPositionsRequest",
			field("pool_index", 1, typeUint64),
		),
		message("QueryPositionsResponse",
			repeatedField(messageField("positions", 1, "Position")),
		),
		message("QueryPendingRewardRequest",
			field("pool_index", 1, typeUint64),
			field("depositor", 2, typeString),
		),
		message("QueryPendingRewardResponse",
			field("pending_reward", 1, typeUint64),
			field("height", 2, typeInt64),
		),
		message("QueryVaultsRequest",
			field("pool_index", 1, typeUint64),
		),
		message("QueryVaultsResponse",
			messageField("vaults", 1, "PoolVaults"),
		),
	}

	service := &descriptorpb.ServiceDescriptorProto{
		Name: proto.String("Query"),
		Method: []*descriptorpb.MethodDescriptorProto{
			method("Position", "QueryPositionRequest", "QueryPositionResponse"),
			method("Positions", "QueryPositionsRequest", "QueryPositionsResponse"),
			method("PendingReward", "QueryPendingRewardRequest", "QueryPendingRewardResponse"),
			method("Vaults", "QueryVaultsRequest", "QueryVaultsResponse"),
		},
	}

	return protoFile("stakefarm/farm/v1/query.proto", nil, messages, service)
}

var fileDescriptorQuery = registerFile(queryFile())

func init() {
	gogoproto.RegisterType((*Position)(nil), ProtoPackage+".Position")
	gogoproto.RegisterType((*PoolVaults)(nil), ProtoPackage+".PoolVaults")
	gogoproto.RegisterType((*QueryPositionRequest)(nil), ProtoPackage+".QueryPositionRequest")
	gogoproto.RegisterType((*QueryPositionResponse)(nil), ProtoPackage+".QueryPositionResponse")
	gogoproto.RegisterType((*QueryPositionsRequest)(nil), ProtoPackage+".QueryPositionsRequest")
	gogoproto.RegisterType((*QueryPositionsResponse)(nil), ProtoPackage+".QueryPositionsResponse")
	gogoproto.RegisterType((*QueryPendingRewardRequest)(nil), ProtoPackage+".QueryPendingRewardRequest")
	gogoproto.RegisterType((*QueryPendingRewardResponse)(nil), ProtoPackage+".QueryPendingRewardResponse")
	gogoproto.RegisterType((*QueryVaultsRequest)(nil), ProtoPackage+".QueryVaultsRequest")
	gogoproto.RegisterType((*QueryVaultsResponse)(nil), ProtoPackage+".QueryVaultsResponse")
}

func (*Position) Descriptor() ([]byte, []int)                   { return fileDescriptorQuery, []int{0} }
func (*PoolVaults) Descriptor() ([]byte, []int)                 { return fileDescriptorQuery, []int{1} }
func (*QueryPositionRequest) Descriptor() ([]byte, []int)       { return fileDescriptorQuery, []int{2} }
func (*QueryPositionResponse) Descriptor() ([]byte, []int)      { return fileDescriptorQuery, []int{3} }
func (*QueryPositionsRequest) Descriptor() ([]byte, []int)      { return fileDescriptorQuery, []int{4} }
func (*QueryPositionsResponse) Descriptor() ([]byte, []int)     { return fileDescriptorQuery, []int{5} }
func (*QueryPendingRewardRequest) Descriptor() ([]byte, []int)  { return fileDescriptorQuery, []int{6} }
func (*QueryPendingRewardResponse) Descriptor() ([]byte, []int) { return fileDescriptorQuery, []int{7} }
func (*QueryVaultsRequest) Descriptor() ([]byte, []int)         { return fileDescriptorQuery, []int{8} }
func (*QueryVaultsResponse) Descriptor() ([]byte, []int)        { return fileDescriptorQuery, []int{9} }

var queryServiceDesc = grpc.ServiceDesc{
	ServiceName: queryServiceName,
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(queryServiceName, "Position", func(srv interface{}, ctx context.Context, in *QueryPositionRequest) (*QueryPositionResponse, error) {
			return srv.(QueryServer).Position(ctx, in)
		}),
		unary(queryServiceName, "Positions", func(srv interface{}, ctx context.Context, in *QueryPositionsRequest) (*QueryPositionsResponse, error) {
			return srv.(QueryServer).Positions(ctx, in)
		}),
		unary(queryServiceName, "PendingReward", func(srv interface{}, ctx context.Context, in *QueryPendingRewardRequest) (*QueryPendingRewardResponse, error) {
			return srv.(QueryServer).PendingReward(ctx, in)
		}),
		unary(queryServiceName, "Vaults", func(srv interface{}, ctx context.Context, in *QueryVaultsRequest) (*QueryVaultsResponse, error) {
			return srv.(QueryServer).Vaults(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stakefarm/farm/v1/query.proto",
}

// RegisterQueryServer registers srv on s, usually the app's GRPCQueryRouter
func RegisterQueryServer(s gogogrpc.Server, srv QueryServer) {
	s.RegisterService(&queryServiceDesc, srv)
}

// QueryClient is the client side of QueryServer
type QueryClient interface {
	Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error)
	Positions(ctx context.Context, in *QueryPositionsRequest, opts ...grpc.CallOption) (*QueryPositionsResponse, error)
	PendingReward(ctx context.Context, in *QueryPendingRewardRequest, opts ...grpc.CallOption) (*QueryPendingRewardResponse, error)
	Vaults(ctx context.Context, in *QueryVaultsRequest, opts ...grpc.CallOption) (*QueryVaultsResponse, error)
}

type queryClient struct {
	cc gogogrpc.ClientConn
}

// NewQueryClient returns a QueryClient over cc, e.g. a client.Context or a
// node's gRPC connection
func NewQueryClient(cc gogogrpc.ClientConn) QueryClient {
	return &queryClient{cc: cc}
}

func (c *queryClient) Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error) {
	out := new(QueryPositionResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Position", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Positions(ctx context.Context, in *QueryPositionsRequest, opts ...grpc.CallOption) (*QueryPositionsResponse, error) {
	out := new(QueryPositionsResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Positions", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PendingReward(ctx context.Context, in *QueryPendingRewardRequest, opts ...grpc.CallOption) (*QueryPendingRewardResponse, error) {
	out := new(QueryPendingRewardResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/PendingReward", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Vaults(ctx context.Context, in *QueryVaultsRequest, opts ...grpc.CallOption) (*QueryVaultsResponse, error) {
	out := new(QueryVaultsResponse)
	if err := c.cc.Invoke(ctx, "/"+queryServiceName+"/Vaults", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PageBounds clamps [offset, offset+limit) to a collection of total items.
// A zero limit selects everything from offset.
func PageBounds(total, offset, limit uint64) (start, end uint64) {
	if offset >= total {
		return total, total
	}
	if limit == 0 || limit > total-offset {
		return offset, total
	}
	return offset, offset + limit
}
