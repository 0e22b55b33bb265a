package types

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types for the farm module
const (
	TypeMsgBootstrap         = "bootstrap"
	TypeMsgInitializePool    = "initialize_pool"
	TypeMsgDeposit           = "deposit"
	TypeMsgWithdraw          = "withdraw"
	TypeMsgEmergencyWithdraw = "emergency_withdraw"
	TypeMsgUpdateProjectInfo = "update_project_info"
	TypeMsgSetBonusTime      = "set_bonus_time"
	TypeMsgUpdateEndBlock    = "update_end_block"
	TypeMsgClosePosition     = "close_position"
)

// MsgServer defines the farm module's message service
type MsgServer interface {
	Bootstrap(context.Context, *MsgBootstrap) (*MsgBootstrapResponse, error)
	InitializePool(context.Context, *MsgInitializePool) (*MsgInitializePoolResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	EmergencyWithdraw(context.Context, *MsgEmergencyWithdraw) (*MsgEmergencyWithdrawResponse, error)
	UpdateProjectInfo(context.Context, *MsgUpdateProjectInfo) (*MsgUpdateProjectInfoResponse, error)
	SetBonusTime(context.Context, *MsgSetBonusTime) (*MsgSetBonusTimeResponse, error)
	UpdateEndBlock(context.Context, *MsgUpdateEndBlock) (*MsgUpdateEndBlockResponse, error)
	ClosePosition(context.Context, *MsgClosePosition) (*MsgClosePositionResponse, error)
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: %v", field, err)
	}
	return nil
}

func mustSigner(addr string) []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{signer}
}

// ============ MsgBootstrap ============

// MsgBootstrap creates the pool registry and the vault authority
type MsgBootstrap struct {
	Payer string `protobuf:"bytes,1,opt,name=payer,proto3" json:"payer"`
}

func (msg MsgBootstrap) Route() string { return RouterKey }
func (msg MsgBootstrap) Type() string  { return TypeMsgBootstrap }

// ValidateBasic implements sdk.Msg
func (msg MsgBootstrap) ValidateBasic() error {
	return validateAddress("payer", msg.Payer)
}

// GetSigners implements sdk.Msg
func (msg MsgBootstrap) GetSigners() []sdk.AccAddress { return mustSigner(msg.Payer) }

func (msg *MsgBootstrap) Reset()         { *msg = MsgBootstrap{} }
func (msg *MsgBootstrap) ProtoMessage()  {}
func (msg *MsgBootstrap) String() string { return fmt.Sprintf("MsgBootstrap{Payer: %s}", msg.Payer) }

// XXX_MessageName returns the message type URL for MsgBootstrap
func (msg *MsgBootstrap) XXX_MessageName() string { return "stakefarm.farm.v1.MsgBootstrap" }

// MsgBootstrapResponse is the response of MsgBootstrap
type MsgBootstrapResponse struct {
	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority"`
}

// ============ MsgInitializePool ============

// MsgInitializePool creates a pool under the next registry index and funds
// its reward vault from the owner.
type MsgInitializePool struct {
	Owner            string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	StakedDenom      string `protobuf:"bytes,2,opt,name=staked_denom,json=stakedDenom,proto3" json:"staked_denom"`
	RewardDenom      string `protobuf:"bytes,3,opt,name=reward_denom,json=rewardDenom,proto3" json:"reward_denom"`
	RewardTokenCount uint64 `protobuf:"varint,4,opt,name=reward_token_count,json=rewardTokenCount,proto3" json:"reward_token_count"`
	RewardAmount     uint64 `protobuf:"varint,5,opt,name=reward_amount,json=rewardAmount,proto3" json:"reward_amount"`
	StartTime        uint64 `protobuf:"varint,6,opt,name=start_time,json=startTime,proto3" json:"start_time"`
	EndTime          uint64 `protobuf:"varint,7,opt,name=end_time,json=endTime,proto3" json:"end_time"`
	PoolName         string `protobuf:"bytes,8,opt,name=pool_name,json=poolName,proto3" json:"pool_name"`
	Link             string `protobuf:"bytes,9,opt,name=link,proto3" json:"link"`
	ThemeID          uint32 `protobuf:"varint,10,opt,name=theme_id,json=themeId,proto3" json:"theme_id"`
	StakedVault      string `protobuf:"bytes,11,opt,name=staked_vault,json=stakedVault,proto3" json:"staked_vault"`
	RewardVault      string `protobuf:"bytes,12,opt,name=reward_vault,json=rewardVault,proto3" json:"reward_vault"`
}

func (msg MsgInitializePool) Route() string { return RouterKey }
func (msg MsgInitializePool) Type() string  { return TypeMsgInitializePool }

// ValidateBasic implements sdk.Msg
func (msg MsgInitializePool) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	if err := validateAddress("staked vault", msg.StakedVault); err != nil {
		return err
	}
	if err := validateAddress("reward vault", msg.RewardVault); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.StakedDenom); err != nil {
		return errorsmod.Wrap(ErrInvalidDenom, err.Error())
	}
	if err := sdk.ValidateDenom(msg.RewardDenom); err != nil {
		return errorsmod.Wrap(ErrInvalidDenom, err.Error())
	}
	if msg.RewardTokenCount == 0 {
		return ErrInvalidRewardTokenCount
	}
	if msg.EndTime <= msg.StartTime {
		return errorsmod.Wrapf(ErrInvalidTimeRange, "end %d must be after start %d", msg.EndTime, msg.StartTime)
	}
	return msg.Metadata().Validate()
}

// Metadata returns the display fields of the message
func (msg MsgInitializePool) Metadata() PoolMetadata {
	return PoolMetadata{Name: msg.PoolName, Link: msg.Link, ThemeID: msg.ThemeID}
}

// GetSigners implements sdk.Msg
func (msg MsgInitializePool) GetSigners() []sdk.AccAddress { return mustSigner(msg.Owner) }

func (msg *MsgInitializePool) Reset()        { *msg = MsgInitializePool{} }
func (msg *MsgInitializePool) ProtoMessage() {}
func (msg *MsgInitializePool) String() string {
	return fmt.Sprintf("MsgInitializePool{Owner: %s, Staked: %s, Reward: %d%s, Window: [%d, %d)}",
		msg.Owner, msg.StakedDenom, msg.RewardAmount, msg.RewardDenom, msg.StartTime, msg.EndTime)
}

// XXX_MessageName returns the message type URL for MsgInitializePool
func (msg *MsgInitializePool) XXX_MessageName() string { return "stakefarm.farm.v1.MsgInitializePool" }

// MsgInitializePoolResponse is the response of MsgInitializePool
type MsgInitializePoolResponse struct {
	PoolIndex             uint64 `protobuf:"varint,1,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	PoolAddress           string `protobuf:"bytes,2,opt,name=pool_address,json=poolAddress,proto3" json:"pool_address"`
	RewardRatePerUnitTime uint64 `protobuf:"varint,3,opt,name=reward_rate_per_unit_time,json=rewardRatePerUnitTime,proto3" json:"reward_rate_per_unit_time"`
}

// ============ MsgDeposit ============

// MsgDeposit stakes amount into a pool, paying out any pending reward first
type MsgDeposit struct {
	Depositor   string `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor"`
	PoolIndex   uint64 `protobuf:"varint,2,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	Amount      uint64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount"`
	StakedVault string `protobuf:"bytes,4,opt,name=staked_vault,json=stakedVault,proto3" json:"staked_vault"`
	RewardVault string `protobuf:"bytes,5,opt,name=reward_vault,json=rewardVault,proto3" json:"reward_vault"`
}

func (msg MsgDeposit) Route() string { return RouterKey }
func (msg MsgDeposit) Type() string  { return TypeMsgDeposit }

// ValidateBasic implements sdk.Msg
func (msg MsgDeposit) ValidateBasic() error {
	if err := validateAddress("depositor", msg.Depositor); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return errorsmod.Wrap(ErrInvalidAmount, "deposit amount must be positive")
	}
	if err := validateAddress("staked vault", msg.StakedVault); err != nil {
		return err
	}
	return validateAddress("reward vault", msg.RewardVault)
}

// GetSigners implements sdk.Msg
func (msg MsgDeposit) GetSigners() []sdk.AccAddress { return mustSigner(msg.Depositor) }

func (msg *MsgDeposit) Reset()        { *msg = MsgDeposit{} }
func (msg *MsgDeposit) ProtoMessage() {}
func (msg *MsgDeposit) String() string {
	return fmt.Sprintf("MsgDeposit{Depositor: %s, Pool: %d, Amount: %d}", msg.Depositor, msg.PoolIndex, msg.Amount)
}

// XXX_MessageName returns the message type URL for MsgDeposit
func (msg *MsgDeposit) XXX_MessageName() string { return "stakefarm.farm.v1.MsgDeposit" }

// MsgDepositResponse is the response of MsgDeposit
type MsgDepositResponse struct {
	StakedAmount uint64 `protobuf:"varint,1,opt,name=staked_amount,json=stakedAmount,proto3" json:"staked_amount"`
	RewardPaid   uint64 `protobuf:"varint,2,opt,name=reward_paid,json=rewardPaid,proto3" json:"reward_paid"`
}

// ============ MsgWithdraw ============

// MsgWithdraw unstakes amount and pays out pending reward. An amount of zero
// only claims.
type MsgWithdraw struct {
	Depositor   string `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor"`
	PoolIndex   uint64 `protobuf:"varint,2,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	Amount      uint64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount"`
	StakedVault string `protobuf:"bytes,4,opt,name=staked_vault,json=stakedVault,proto3" json:"staked_vault"`
	RewardVault string `protobuf:"bytes,5,opt,name=reward_vault,json=rewardVault,proto3" json:"reward_vault"`
}

func (msg MsgWithdraw) Route() string { return RouterKey }
func (msg MsgWithdraw) Type() string  { return TypeMsgWithdraw }

// ValidateBasic implements sdk.Msg
func (msg MsgWithdraw) ValidateBasic() error {
	if err := validateAddress("depositor", msg.Depositor); err != nil {
		return err
	}
	if err := validateAddress("staked vault", msg.StakedVault); err != nil {
		return err
	}
	return validateAddress("reward vault", msg.RewardVault)
}

// GetSigners implements sdk.Msg
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress { return mustSigner(msg.Depositor) }

func (msg *MsgWithdraw) Reset()        { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) ProtoMessage() {}
func (msg *MsgWithdraw) String() string {
	return fmt.Sprintf("MsgWithdraw{Depositor: %s, Pool: %d, Amount: %d}", msg.Depositor, msg.PoolIndex, msg.Amount)
}

// XXX_MessageName returns the message type URL for MsgWithdraw
func (msg *MsgWithdraw) XXX_MessageName() string { return "stakefarm.farm.v1.MsgWithdraw" }

// MsgWithdrawResponse is the response of MsgWithdraw
type MsgWithdrawResponse struct {
	StakedAmount uint64 `protobuf:"varint,1,opt,name=staked_amount,json=stakedAmount,proto3" json:"staked_amount"`
	Withdrawn    uint64 `protobuf:"varint,2,opt,name=withdrawn,proto3" json:"withdrawn"`
	RewardPaid   uint64 `protobuf:"varint,3,opt,name=reward_paid,json=rewardPaid,proto3" json:"reward_paid"`
}

// ============ MsgEmergencyWithdraw ============

// MsgEmergencyWithdraw returns the full principal and forfeits pending reward
type MsgEmergencyWithdraw struct {
	Depositor   string `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor"`
	PoolIndex   uint64 `protobuf:"varint,2,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	StakedVault string `protobuf:"bytes,3,opt,name=staked_vault,json=stakedVault,proto3" json:"staked_vault"`
}

func (msg MsgEmergencyWithdraw) Route() string { return RouterKey }
func (msg MsgEmergencyWithdraw) Type() string  { return TypeMsgEmergencyWithdraw }

// ValidateBasic implements sdk.Msg
func (msg MsgEmergencyWithdraw) ValidateBasic() error {
	if err := validateAddress("depositor", msg.Depositor); err != nil {
		return err
	}
	return validateAddress("staked vault", msg.StakedVault)
}

// GetSigners implements sdk.Msg
func (msg MsgEmergencyWithdraw) GetSigners() []sdk.AccAddress { return mustSigner(msg.Depositor) }

func (msg *MsgEmergencyWithdraw) Reset()        { *msg = MsgEmergencyWithdraw{} }
func (msg *MsgEmergencyWithdraw) ProtoMessage() {}
func (msg *MsgEmergencyWithdraw) String() string {
	return fmt.Sprintf("MsgEmergencyWithdraw{Depositor: %s, Pool: %d}", msg.Depositor, msg.PoolIndex)
}

// XXX_MessageName returns the message type URL for MsgEmergencyWithdraw
func (msg *MsgEmergencyWithdraw) XXX_MessageName() string {
	return "stakefarm.farm.v1.MsgEmergencyWithdraw"
}

// MsgEmergencyWithdrawResponse is the response of MsgEmergencyWithdraw
type MsgEmergencyWithdrawResponse struct {
	Withdrawn uint64 `protobuf:"varint,1,opt,name=withdrawn,proto3" json:"withdrawn"`
}

// ============ MsgUpdateProjectInfo ============

// MsgUpdateProjectInfo replaces the pool's display metadata
type MsgUpdateProjectInfo struct {
	Owner     string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	PoolIndex uint64 `protobuf:"varint,2,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	PoolName  string `protobuf:"bytes,3,opt,name=pool_name,json=poolName,proto3" json:"pool_name"`
	Link      string `protobuf:"bytes,4,opt,name=link,proto3" json:"link"`
	ThemeID   uint32 `protobuf:"varint,5,opt,name=theme_id,json=themeId,proto3" json:"theme_id"`
}

func (msg MsgUpdateProjectInfo) Route() string { return RouterKey }
func (msg MsgUpdateProjectInfo) Type() string  { return TypeMsgUpdateProjectInfo }

// ValidateBasic implements sdk.Msg
func (msg MsgUpdateProjectInfo) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	return msg.Metadata().Validate()
}

// Metadata returns the display fields of the message
func (msg MsgUpdateProjectInfo) Metadata() PoolMetadata {
	return PoolMetadata{Name: msg.PoolName, Link: msg.Link, ThemeID: msg.ThemeID}
}

// GetSigners implements sdk.Msg
func (msg MsgUpdateProjectInfo) GetSigners() []sdk.AccAddress { return mustSigner(msg.Owner) }

func (msg *MsgUpdateProjectInfo) Reset()        { *msg = MsgUpdateProjectInfo{} }
func (msg *MsgUpdateProjectInfo) ProtoMessage() {}
func (msg *MsgUpdateProjectInfo) String() string {
	return fmt.Sprintf("MsgUpdateProjectInfo{Owner: %s, Pool: %d, Name: %s}", msg.Owner, msg.PoolIndex, msg.PoolName)
}

// XXX_MessageName returns the message type URL for MsgUpdateProjectInfo
func (msg *MsgUpdateProjectInfo) XXX_MessageName() string {
	return "stakefarm.farm.v1.MsgUpdateProjectInfo"
}

// MsgUpdateProjectInfoResponse is the response of MsgUpdateProjectInfo
type MsgUpdateProjectInfoResponse struct{}

// ============ MsgSetBonusTime ============

// MsgSetBonusTime arms the pool's one-shot bonus window
type MsgSetBonusTime struct {
	Owner       string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	PoolIndex   uint64 `protobuf:"varint,2,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	Multiplier  uint64 `protobuf:"varint,3,opt,name=multiplier,proto3" json:"multiplier"`
	BonusStart  uint64 `protobuf:"varint,4,opt,name=bonus_start,json=bonusStart,proto3" json:"bonus_start"`
	BonusEnd    uint64 `protobuf:"varint,5,opt,name=bonus_end,json=bonusEnd,proto3" json:"bonus_end"`
	StakedVault string `protobuf:"bytes,6,opt,name=staked_vault,json=stakedVault,proto3" json:"staked_vault"`
}

func (msg MsgSetBonusTime) Route() string { return RouterKey }
func (msg MsgSetBonusTime) Type() string  { return TypeMsgSetBonusTime }

// ValidateBasic implements sdk.Msg
func (msg MsgSetBonusTime) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	if msg.Multiplier < 1 {
		return ErrInvalidMultiplier
	}
	if msg.BonusStart >= msg.BonusEnd {
		return errorsmod.Wrapf(ErrInvalidBonusWindow, "start %d must be before end %d", msg.BonusStart, msg.BonusEnd)
	}
	return validateAddress("staked vault", msg.StakedVault)
}

// GetSigners implements sdk.Msg
func (msg MsgSetBonusTime) GetSigners() []sdk.AccAddress { return mustSigner(msg.Owner) }

func (msg *MsgSetBonusTime) Reset()        { *msg = MsgSetBonusTime{} }
func (msg *MsgSetBonusTime) ProtoMessage() {}
func (msg *MsgSetBonusTime) String() string {
	return fmt.Sprintf("MsgSetBonusTime{Owner: %s, Pool: %d, x%d over [%d, %d)}",
		msg.Owner, msg.PoolIndex, msg.Multiplier, msg.BonusStart, msg.BonusEnd)
}

// XXX_MessageName returns the message type URL for MsgSetBonusTime
func (msg *MsgSetBonusTime) XXX_MessageName() string { return "stakefarm.farm.v1.MsgSetBonusTime" }

// MsgSetBonusTimeResponse is the response of MsgSetBonusTime
type MsgSetBonusTimeResponse struct {
	EndTime uint64 `protobuf:"varint,1,opt,name=end_time,json=endTime,proto3" json:"end_time"`
}

// ============ MsgUpdateEndBlock ============

// MsgUpdateEndBlock extends the pool schedule and tops up the reward vault
type MsgUpdateEndBlock struct {
	Owner       string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	PoolIndex   uint64 `protobuf:"varint,2,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	NewEndTime  uint64 `protobuf:"varint,3,opt,name=new_end_time,json=newEndTime,proto3" json:"new_end_time"`
	RewardVault string `protobuf:"bytes,4,opt,name=reward_vault,json=rewardVault,proto3" json:"reward_vault"`
}

func (msg MsgUpdateEndBlock) Route() string { return RouterKey }
func (msg MsgUpdateEndBlock) Type() string  { return TypeMsgUpdateEndBlock }

// ValidateBasic implements sdk.Msg
func (msg MsgUpdateEndBlock) ValidateBasic() error {
	if err := validateAddress("owner", msg.Owner); err != nil {
		return err
	}
	return validateAddress("reward vault", msg.RewardVault)
}

// GetSigners implements sdk.Msg
func (msg MsgUpdateEndBlock) GetSigners() []sdk.AccAddress { return mustSigner(msg.Owner) }

func (msg *MsgUpdateEndBlock) Reset()        { *msg = MsgUpdateEndBlock{} }
func (msg *MsgUpdateEndBlock) ProtoMessage() {}
func (msg *MsgUpdateEndBlock) String() string {
	return fmt.Sprintf("MsgUpdateEndBlock{Owner: %s, Pool: %d, NewEnd: %d}", msg.Owner, msg.PoolIndex, msg.NewEndTime)
}

// XXX_MessageName returns the message type URL for MsgUpdateEndBlock
func (msg *MsgUpdateEndBlock) XXX_MessageName() string { return "stakefarm.farm.v1.MsgUpdateEndBlock" }

// MsgUpdateEndBlockResponse is the response of MsgUpdateEndBlock
type MsgUpdateEndBlockResponse struct {
	EndTime uint64 `protobuf:"varint,1,opt,name=end_time,json=endTime,proto3" json:"end_time"`
	TopUp   uint64 `protobuf:"varint,2,opt,name=top_up,json=topUp,proto3" json:"top_up"`
}

// ============ MsgClosePosition ============

// MsgClosePosition deletes an empty position record
type MsgClosePosition struct {
	Depositor string `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor"`
	PoolIndex uint64 `protobuf:"varint,2,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
}

func (msg MsgClosePosition) Route() string { return RouterKey }
func (msg MsgClosePosition) Type() string  { return TypeMsgClosePosition }

// ValidateBasic implements sdk.Msg
func (msg MsgClosePosition) ValidateBasic() error {
	return validateAddress("depositor", msg.Depositor)
}

// GetSigners implements sdk.Msg
func (msg MsgClosePosition) GetSigners() []sdk.AccAddress { return mustSigner(msg.Depositor) }

func (msg *MsgClosePosition) Reset()        { *msg = MsgClosePosition{} }
func (msg *MsgClosePosition) ProtoMessage() {}
func (msg *MsgClosePosition) String() string {
	return fmt.Sprintf("MsgClosePosition{Depositor: %s, Pool: %d}", msg.Depositor, msg.PoolIndex)
}

// XXX_MessageName returns the message type URL for MsgClosePosition
func (msg *MsgClosePosition) XXX_MessageName() string { return "stakefarm.farm.v1.MsgClosePosition" }

// MsgClosePositionResponse is the response of MsgClosePosition
type MsgClosePositionResponse struct{}

// ============ Responses ============

func (res *MsgBootstrapResponse) Reset()         { *res = MsgBootstrapResponse{} }
func (res *MsgBootstrapResponse) ProtoMessage()  {}
func (res *MsgBootstrapResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgBootstrapResponse
func (res *MsgBootstrapResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgBootstrapResponse" }

func (res *MsgInitializePoolResponse) Reset()         { *res = MsgInitializePoolResponse{} }
func (res *MsgInitializePoolResponse) ProtoMessage()  {}
func (res *MsgInitializePoolResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgInitializePoolResponse
func (res *MsgInitializePoolResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgInitializePoolResponse" }

func (res *MsgDepositResponse) Reset()         { *res = MsgDepositResponse{} }
func (res *MsgDepositResponse) ProtoMessage()  {}
func (res *MsgDepositResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgDepositResponse
func (res *MsgDepositResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgDepositResponse" }

func (res *MsgWithdrawResponse) Reset()         { *res = MsgWithdrawResponse{} }
func (res *MsgWithdrawResponse) ProtoMessage()  {}
func (res *MsgWithdrawResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgWithdrawResponse
func (res *MsgWithdrawResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgWithdrawResponse" }

func (res *MsgEmergencyWithdrawResponse) Reset()         { *res = MsgEmergencyWithdrawResponse{} }
func (res *MsgEmergencyWithdrawResponse) ProtoMessage()  {}
func (res *MsgEmergencyWithdrawResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgEmergencyWithdrawResponse
func (res *MsgEmergencyWithdrawResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgEmergencyWithdrawResponse" }

func (res *MsgUpdateProjectInfoResponse) Reset()         { *res = MsgUpdateProjectInfoResponse{} }
func (res *MsgUpdateProjectInfoResponse) ProtoMessage()  {}
func (res *MsgUpdateProjectInfoResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgUpdateProjectInfoResponse
func (res *MsgUpdateProjectInfoResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgUpdateProjectInfoResponse" }

func (res *MsgSetBonusTimeResponse) Reset()         { *res = MsgSetBonusTimeResponse{} }
func (res *MsgSetBonusTimeResponse) ProtoMessage()  {}
func (res *MsgSetBonusTimeResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgSetBonusTimeResponse
func (res *MsgSetBonusTimeResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgSetBonusTimeResponse" }

func (res *MsgUpdateEndBlockResponse) Reset()         { *res = MsgUpdateEndBlockResponse{} }
func (res *MsgUpdateEndBlockResponse) ProtoMessage()  {}
func (res *MsgUpdateEndBlockResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgUpdateEndBlockResponse
func (res *MsgUpdateEndBlockResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgUpdateEndBlockResponse" }

func (res *MsgClosePositionResponse) Reset()         { *res = MsgClosePositionResponse{} }
func (res *MsgClosePositionResponse) ProtoMessage()  {}
func (res *MsgClosePositionResponse) String() string { return fmt.Sprintf("%+v", *res) }

// XXX_MessageName returns the type URL for MsgClosePositionResponse
func (res *MsgClosePositionResponse) XXX_MessageName() string { return "stakefarm.farm.v1.MsgClosePositionResponse" }
