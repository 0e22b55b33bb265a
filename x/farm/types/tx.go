package types

import (
	"context"

	msgv1 "cosmossdk.io/api/cosmos/msg/v1"
	gogogrpc "github.com/cosmos/gogoproto/grpc"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

const msgServiceName = ProtoPackage + ".Msg"

func signedBy(m *descriptorpb.DescriptorProto, signer string) *descriptorpb.DescriptorProto {
	m.Options = &descriptorpb.MessageOptions{}
	proto.SetExtension(m.Options, msgv1.E_Signer, []string{signer})
	return m
}

// Message order fixes the indexes returned by Descriptor.
func txFile() *descriptorpb.FileDescriptorProto {
	messages := []*descriptorpb.DescriptorProto{
		signedBy(message("MsgBootstrap",
			field("payer", 1, typeString),
		), "payer"),
		message("MsgBootstrapResponse",
			field("authority", 1, typeString),
		),
		signedBy(message("MsgInitializePool",
			field("owner", 1, typeString),
			field("staked_denom", 2, typeString),
			field("reward_denom", 3, typeString),
			field("reward_token_count", 4, typeUint64),
			field("reward_amount", 5, typeUint64),
			field("start_time", 6, typeUint64),
			field("end_time", 7, typeUint64),
			field("pool_name", 8, typeString),
			field("link", 9, typeString),
			field("theme_id", 10, typeUint32),
			field("staked_vault", 11, typeString),
			field("reward_vault", 12, typeString),
		), "owner"),
		message("MsgInitializePoolResponse",
			field("pool_index", 1, typeUint64),
			field("pool_address", 2, typeString),
			field("reward_rate_per_unit_time", 3, typeUint64),
		),
		signedBy(message("MsgDeposit",
			field("depositor", 1, typeString),
			field("pool_index", 2, typeUint64),
			field("amount", 3, typeUint64),
			field("staked_vault", 4, typeString),
			field("reward_vault", 5, typeString),
		), "depositor"),
		message("MsgDepositResponse",
			field("staked_amount", 1, typeUint64),
			field("reward_paid", 2, typeUint64),
		),
		signedBy(message("MsgWithdraw",
			field("depositor", 1, typeString),
			field("pool_index", 2, typeUint64),
			field("amount", 3, typeUint64),
			field("staked_vault", 4, typeString),
			field("reward_vault", 5, typeString),
		), "depositor"),
		message("MsgWithdrawResponse",
			field("staked_amount", 1, typeUint64),
			field("withdrawn", 2, typeUint64),
			field("reward_paid", 3, typeUint64),
		),
		signedBy(message("MsgEmergencyWithdraw",
			field("depositor", 1, typeString),
			field("pool_index", 2, typeUint64),
			field("staked_vault", 3, typeString),
		), "depositor"),
		message("MsgEmergencyWithdrawResponse",
			field("withdrawn", 1, typeUint64),
		),
		signedBy(message("MsgUpdateProjectInfo",
			field("owner", 1, typeString),
			field("pool_index", 2, typeUint64),
			field("pool_name", 3, typeString),
			field("link", 4, typeString),
			field("theme_id", 5, typeUint32),
		), "owner"),
		message("MsgUpdateProjectInfoResponse"),
		signedBy(message("MsgSetBonusTime",
			field("owner", 1, typeString),
			field("pool_index", 2, typeUint64),
			field("multiplier", 3, typeUint64),
			field("bonus_start", 4, typeUint64),
			field("bonus_end", 5, typeUint64),
			field("staked_vault", 6, typeString),
		), "owner"),
		message("MsgSetBonusTimeResponse",
			field("end_time", 1, typeUint64),
		),
		signedBy(message("MsgUpdateEndBlock",
			field("owner", 1, typeString),
			field("pool_index", 2, typeUint64),
			field("new_end_time", 3, typeUint64),
			field("reward_vault", 4, typeString),
		), "owner"),
		message("MsgUpdateEndBlockResponse",
			field("end_time", 1, typeUint64),
			field("top_up", 2, typeUint64),
		),
		signedBy(message("MsgClosePosition",
			field("depositor", 1, typeString),
			field("pool_index", 2, typeUint64),
		), "depositor"),
		message("MsgClosePositionResponse"),
	}

	service := &descriptorpb.ServiceDescriptorProto{
		Name: proto.String("Msg"),
		Method: []*descriptorpb.MethodDescriptorProto{
			method("Bootstrap", "MsgBootstrap", "MsgBootstrapResponse"),
			method("InitializePool", "MsgInitializePool", "MsgInitializePoolResponse"),
			method("Deposit", "MsgDeposit", "MsgDepositResponse"),
			method("Withdraw", "MsgWithdraw", "MsgWithdrawResponse"),
			method("EmergencyWithdraw", "MsgEmergencyWithdraw", "MsgEmergencyWithdrawResponse"),
			method("UpdateProjectInfo", "MsgUpdateProjectInfo", "MsgUpdateProjectInfoResponse"),
			method("SetBonusTime", "MsgSetBonusTime", "MsgSetBonusTimeResponse"),
			method("UpdateEndBlock", "MsgUpdateEndBlock", "MsgUpdateEndBlockResponse"),
			method("ClosePosition", "MsgClosePosition", "MsgClosePositionResponse"),
		},
		Options: &descriptorpb.ServiceOptions{},
	}
	proto.SetExtension(service.Options, msgv1.E_Service, true)

	return protoFile("stakefarm/farm/v1/tx.proto", []string{"cosmos/msg/v1/msg.proto"}, messages, service)
}

var fileDescriptorTx = registerFile(txFile())

func init() {
	gogoproto.RegisterType((*MsgBootstrap)(nil), ProtoPackage+".MsgBootstrap")
	gogoproto.RegisterType((*MsgBootstrapResponse)(nil), ProtoPackage+".MsgBootstrapResponse")
	gogoproto.RegisterType((*MsgInitializePool)(nil), ProtoPackage+".MsgInitializePool")
	gogoproto.RegisterType((*MsgInitializePoolResponse)(nil), ProtoPackage+".MsgInitializePoolResponse")
	gogoproto.RegisterType((*MsgDeposit)(nil), ProtoPackage+".MsgDeposit")
	gogoproto.RegisterType((*MsgDepositResponse)(nil), ProtoPackage+".MsgDepositResponse")
	gogoproto.RegisterType((*MsgWithdraw)(nil), ProtoPackage+".MsgWithdraw")
	gogoproto.RegisterType((*MsgWithdrawResponse)(nil), ProtoPackage+".MsgWithdrawResponse")
	gogoproto.RegisterType((*MsgEmergencyWithdraw)(nil), ProtoPackage+".MsgEmergencyWithdraw")
	gogoproto.RegisterType((*MsgEmergencyWithdrawResponse)(nil), ProtoPackage+".MsgEmergencyWithdrawResponse")
	gogoproto.RegisterType((*MsgUpdateProjectInfo)(nil), ProtoPackage+".MsgUpdateProjectInfo")
	gogoproto.RegisterType((*MsgUpdateProjectInfoResponse)(nil), ProtoPackage+".MsgUpdateProjectInfoResponse")
	gogoproto.RegisterType((*MsgSetBonusTime)(nil), ProtoPackage+".MsgSetBonusTime")
	gogoproto.RegisterType((*MsgSetBonusTimeResponse)(nil), ProtoPackage+".MsgSetBonusTimeResponse")
	gogoproto.RegisterType((*MsgUpdateEndBlock)(nil), ProtoPackage+".MsgUpdateEndBlock")
	gogoproto.RegisterType((*MsgUpdateEndBlockResponse)(nil), ProtoPackage+".MsgUpdateEndBlockResponse")
	gogoproto.RegisterType((*MsgClosePosition)(nil), ProtoPackage+".MsgClosePosition")
	gogoproto.RegisterType((*MsgClosePositionResponse)(nil), ProtoPackage+".MsgClosePositionResponse")
}

func (*MsgBootstrap) Descriptor() ([]byte, []int)                 { return fileDescriptorTx, []int{0} }
func (*MsgBootstrapResponse) Descriptor() ([]byte, []int)         { return fileDescriptorTx, []int{1} }
func (*MsgInitializePool) Descriptor() ([]byte, []int)            { return fileDescriptorTx, []int{2} }
func (*MsgInitializePoolResponse) Descriptor() ([]byte, []int)    { return fileDescriptorTx, []int{3} }
func (*MsgDeposit) Descriptor() ([]byte, []int)                   { return fileDescriptorTx, []int{4} }
func (*MsgDepositResponse) Descriptor() ([]byte, []int)           { return fileDescriptorTx, []int{5} }
func (*MsgWithdraw) Descriptor() ([]byte, []int)                  { return fileDescriptorTx, []int{6} }
func (*MsgWithdrawResponse) Descriptor() ([]byte, []int)          { return fileDescriptorTx, []int{7} }
func (*MsgEmergencyWithdraw) Descriptor() ([]byte, []int)         { return fileDescriptorTx, []int{8} }
func (*MsgEmergencyWithdrawResponse) Descriptor() ([]byte, []int) { return fileDescriptorTx, []int{9} }
func (*MsgUpdateProjectInfo) Descriptor() ([]byte, []int)         { return fileDescriptorTx, []int{10} }
func (*MsgUpdateProjectInfoResponse) Descriptor() ([]byte, []int) { return fileDescriptorTx, []int{11} }
func (*MsgSetBonusTime) Descriptor() ([]byte, []int)              { return fileDescriptorTx, []int{12} }
func (*MsgSetBonusTimeResponse) Descriptor() ([]byte, []int)      { return fileDescriptorTx, []int{13} }
func (*MsgUpdateEndBlock) Descriptor() ([]byte, []int)            { return fileDescriptorTx, []int{14} }
func (*MsgUpdateEndBlockResponse) Descriptor() ([]byte, []int)    { return fileDescriptorTx, []int{15} }
func (*MsgClosePosition) Descriptor() ([]byte, []int)             { return fileDescriptorTx, []int{16} }
func (*MsgClosePositionResponse) Descriptor() ([]byte, []int)     { return fileDescriptorTx, []int{17} }

var msgServiceDesc = grpc.ServiceDesc{
	ServiceName: msgServiceName,
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(msgServiceName, "Bootstrap", func(srv interface{}, ctx context.Context, in *MsgBootstrap) (*MsgBootstrapResponse, error) {
			return srv.(MsgServer).Bootstrap(ctx, in)
		}),
		unary(msgServiceName, "InitializePool", func(srv interface{}, ctx context.Context, in *MsgInitializePool) (*MsgInitializePoolResponse, error) {
			return srv.(MsgServer).InitializePool(ctx, in)
		}),
		unary(msgServiceName, "Deposit", func(srv interface{}, ctx context.Context, in *MsgDeposit) (*MsgDepositResponse, error) {
			return srv.(MsgServer).Deposit(ctx, in)
		}),
		unary(msgServiceName, "Withdraw", func(srv interface{}, ctx context.Context, in *MsgWithdraw) (*MsgWithdrawResponse, error) {
			return srv.(MsgServer).Withdraw(ctx, in)
		}),
		unary(msgServiceName, "EmergencyWithdraw", func(srv interface{}, ctx context.Context, in *MsgEmergencyWithdraw) (*MsgEmergencyWithdrawResponse, error) {
			return srv.(MsgServer).EmergencyWithdraw(ctx, in)
		}),
		unary(msgServiceName, "UpdateProjectInfo", func(srv interface{}, ctx context.Context, in *MsgUpdateProjectInfo) (*MsgUpdateProjectInfoResponse, error) {
			return srv.(MsgServer).UpdateProjectInfo(ctx, in)
		}),
		unary(msgServiceName, "SetBonusTime", func(srv interface{}, ctx context.Context, in *MsgSetBonusTime) (*MsgSetBonusTimeResponse, error) {
			return srv.(MsgServer).SetBonusTime(ctx, in)
		}),
		unary(msgServiceName, "UpdateEndBlock", func(srv interface{}, ctx context.Context, in *MsgUpdateEndBlock) (*MsgUpdateEndBlockResponse, error) {
			return srv.(MsgServer).UpdateEndBlock(ctx, in)
		}),
		unary(msgServiceName, "ClosePosition", func(srv interface{}, ctx context.Context, in *MsgClosePosition) (*MsgClosePositionResponse, error) {
			return srv.(MsgServer).ClosePosition(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stakefarm/farm/v1/tx.proto",
}

// RegisterMsgServer registers srv for every farm message on s, usually the
// app's MsgServiceRouter
func RegisterMsgServer(s gogogrpc.Server, srv MsgServer) {
	s.RegisterService(&msgServiceDesc, srv)
}
