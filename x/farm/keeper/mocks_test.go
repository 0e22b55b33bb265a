package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// mockAccountKeeper keeps accounts in memory
type mockAccountKeeper struct {
	accounts map[string]sdk.AccountI
	next     uint64
}

func newMockAccountKeeper() *mockAccountKeeper {
	return &mockAccountKeeper{accounts: make(map[string]sdk.AccountI)}
}

func (m *mockAccountKeeper) GetAccount(_ context.Context, addr sdk.AccAddress) sdk.AccountI {
	return m.accounts[addr.String()]
}

func (m *mockAccountKeeper) NewAccount(_ context.Context, acc sdk.AccountI) sdk.AccountI {
	if err := acc.SetAccountNumber(m.next); err != nil {
		panic(err)
	}
	m.next++
	return acc
}

func (m *mockAccountKeeper) NewAccountWithAddress(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	return m.NewAccount(ctx, authtypes.NewBaseAccountWithAddress(addr))
}

func (m *mockAccountKeeper) SetAccount(_ context.Context, acc sdk.AccountI) {
	m.accounts[acc.GetAddress().String()] = acc
}

func (m *mockAccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// mockBankKeeper keeps balances in its own store so that cached contexts
// roll transfers back together with farm state.
type mockBankKeeper struct {
	storeKey     storetypes.StoreKey
	metadata     map[string]banktypes.Metadata
	sendDisabled map[string]bool
	blocked      map[string]bool
}

func newMockBankKeeper(storeKey storetypes.StoreKey) *mockBankKeeper {
	return &mockBankKeeper{
		storeKey:     storeKey,
		metadata:     make(map[string]banktypes.Metadata),
		sendDisabled: make(map[string]bool),
		blocked:      make(map[string]bool),
	}
}

func (m *mockBankKeeper) coins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	bz := sdk.UnwrapSDKContext(ctx).KVStore(m.storeKey).Get(addr)
	if bz == nil {
		return sdk.NewCoins()
	}
	var coins sdk.Coins
	if err := json.Unmarshal(bz, &coins); err != nil {
		panic(err)
	}
	return coins
}

func (m *mockBankKeeper) setCoins(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) {
	bz, err := json.Marshal(coins)
	if err != nil {
		panic(err)
	}
	sdk.UnwrapSDKContext(ctx).KVStore(m.storeKey).Set(addr, bz)
}

func (m *mockBankKeeper) mint(ctx sdk.Context, addr sdk.AccAddress, denom string, amount uint64) {
	m.setCoins(ctx, addr, m.coins(ctx, addr).Add(sdk.NewCoin(denom, math.NewIntFromUint64(amount))))
}

func (m *mockBankKeeper) setDecimals(denom string, decimals uint32) {
	m.metadata[denom] = banktypes.Metadata{
		Base:    denom,
		Display: denom + "-display",
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: denom + "-display", Exponent: decimals},
		},
	}
}

func (m *mockBankKeeper) balance(ctx sdk.Context, addr sdk.AccAddress, denom string) uint64 {
	return m.coins(ctx, addr).AmountOf(denom).Uint64()
}

func (m *mockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.coins(ctx, addr).AmountOf(denom))
}

func (m *mockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	have := m.coins(ctx, from)
	remaining, negative := have.SafeSub(amt...)
	if negative {
		return fmt.Errorf("%s is smaller than %s: %w", have, amt, sdkerrors.ErrInsufficientFunds)
	}
	m.setCoins(ctx, from, remaining)
	m.setCoins(ctx, to, m.coins(ctx, to).Add(amt...))
	return nil
}

func (m *mockBankKeeper) IsSendEnabledCoins(_ context.Context, coins ...sdk.Coin) error {
	for _, coin := range coins {
		if m.sendDisabled[coin.Denom] {
			return fmt.Errorf("%s: %w", coin.Denom, banktypes.ErrSendDisabled)
		}
	}
	return nil
}

func (m *mockBankKeeper) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	md, ok := m.metadata[denom]
	return md, ok
}

func (m *mockBankKeeper) BlockedAddr(addr sdk.AccAddress) bool {
	return m.blocked[addr.String()]
}
