package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TokenAccount is the view of a token holding that custody checks run
// against.
type TokenAccount struct {
	Address  sdk.AccAddress
	Amount   uint64
	Owner    sdk.AccAddress
	Denom    string
	Decimals uint32
	Frozen   bool
}
