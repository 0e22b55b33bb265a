package types

import (
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestMsgValidateBasic(t *testing.T) {
	staked := StakedVaultAddress(0).String()
	reward := RewardVaultAddress(0).String()

	tests := []struct {
		name    string
		msg     sdk.HasValidateBasic
		wantErr error
	}{
		{"bootstrap ok", MsgBootstrap{Payer: testOwner}, nil},
		{"bootstrap bad payer", MsgBootstrap{Payer: "nope"}, ErrInvalidAddress},
		{
			"initialize ok",
			MsgInitializePool{
				Owner: testOwner, StakedDenom: "ustake", RewardDenom: "ureward", RewardTokenCount: 1,
				RewardAmount: 1000, StartTime: 0, EndTime: 100, PoolName: "pool", StakedVault: staked, RewardVault: reward,
			},
			nil,
		},
		{
			"initialize inverted window",
			MsgInitializePool{
				Owner: testOwner, StakedDenom: "ustake", RewardDenom: "ureward", RewardTokenCount: 1,
				RewardAmount: 1000, StartTime: 100, EndTime: 100, PoolName: "pool", StakedVault: staked, RewardVault: reward,
			},
			ErrInvalidTimeRange,
		},
		{
			"initialize bad denom",
			MsgInitializePool{
				Owner: testOwner, StakedDenom: "1", RewardDenom: "ureward", RewardTokenCount: 1,
				RewardAmount: 1000, StartTime: 0, EndTime: 100, PoolName: "pool", StakedVault: staked, RewardVault: reward,
			},
			ErrInvalidDenom,
		},
		{
			"initialize missing name",
			MsgInitializePool{
				Owner: testOwner, StakedDenom: "ustake", RewardDenom: "ureward", RewardTokenCount: 1,
				RewardAmount: 1000, StartTime: 0, EndTime: 100, StakedVault: staked, RewardVault: reward,
			},
			ErrInvalidPoolMetadata,
		},
		{"deposit ok", MsgDeposit{Depositor: testDepositor, Amount: 1, StakedVault: staked, RewardVault: reward}, nil},
		{"deposit zero", MsgDeposit{Depositor: testDepositor, StakedVault: staked, RewardVault: reward}, ErrInvalidAmount},
		{"deposit missing vault", MsgDeposit{Depositor: testDepositor, Amount: 1, StakedVault: staked}, ErrInvalidAddress},
		{"withdraw zero claims", MsgWithdraw{Depositor: testDepositor, StakedVault: staked, RewardVault: reward}, nil},
		{"emergency ok", MsgEmergencyWithdraw{Depositor: testDepositor, StakedVault: staked}, nil},
		{"project info long link", MsgUpdateProjectInfo{Owner: testOwner, PoolName: "p", Link: string(make([]byte, 129))}, ErrInvalidPoolMetadata},
		{"bonus zero multiplier", MsgSetBonusTime{Owner: testOwner, BonusStart: 1, BonusEnd: 2, StakedVault: staked}, ErrInvalidMultiplier},
		{"bonus inverted", MsgSetBonusTime{Owner: testOwner, Multiplier: 2, BonusStart: 2, BonusEnd: 2, StakedVault: staked}, ErrInvalidBonusWindow},
		{"end block ok", MsgUpdateEndBlock{Owner: testOwner, NewEndTime: 200, RewardVault: reward}, nil},
		{"close ok", MsgClosePosition{Depositor: testDepositor}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMsgSigners(t *testing.T) {
	msg := MsgDeposit{Depositor: testDepositor}
	signers := msg.GetSigners()
	if len(signers) != 1 || signers[0].String() != testDepositor {
		t.Errorf("signers = %v", signers)
	}
	update := MsgUpdateEndBlock{Owner: testOwner}
	if update.GetSigners()[0].String() != testOwner {
		t.Error("owner is not the signer of MsgUpdateEndBlock")
	}
}
