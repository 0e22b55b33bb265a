package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the farm messages on the given LegacyAmino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgBootstrap{}, "farm/MsgBootstrap", nil)
	cdc.RegisterConcrete(&MsgInitializePool{}, "farm/MsgInitializePool", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "farm/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "farm/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgEmergencyWithdraw{}, "farm/MsgEmergencyWithdraw", nil)
	cdc.RegisterConcrete(&MsgUpdateProjectInfo{}, "farm/MsgUpdateProjectInfo", nil)
	cdc.RegisterConcrete(&MsgSetBonusTime{}, "farm/MsgSetBonusTime", nil)
	cdc.RegisterConcrete(&MsgUpdateEndBlock{}, "farm/MsgUpdateEndBlock", nil)
	cdc.RegisterConcrete(&MsgClosePosition{}, "farm/MsgClosePosition", nil)
}

// RegisterInterfaces registers the module's interface types
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgBootstrap{},
		&MsgInitializePool{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgEmergencyWithdraw{},
		&MsgUpdateProjectInfo{},
		&MsgSetBonusTime{},
		&MsgUpdateEndBlock{},
		&MsgClosePosition{},
	)
}
