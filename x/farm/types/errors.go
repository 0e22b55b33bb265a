package types

import (
	"cosmossdk.io/errors"
)

// Arithmetic errors, one per computation site
var (
	ErrStakedSupplyOverflow       = errors.Register(ModuleName, 2, "staked amount overflowed")
	ErrRewardOverflow             = errors.Register(ModuleName, 3, "reward for elapsed units overflowed")
	ErrRewardMulPrecisionOverflow = errors.Register(ModuleName, 4, "reward scaled by precision factor overflowed")
	ErrRewardDivSupplyOverflow    = errors.Register(ModuleName, 5, "scaled reward divided by staked supply overflowed")
	ErrAccruedPerShareOverflow    = errors.Register(ModuleName, 6, "accrued reward per share overflowed")
	ErrOverflow                   = errors.Register(ModuleName, 7, "operation overflowed")
	ErrRewardRateDivision         = errors.Register(ModuleName, 8, "reward rate division failed")
	ErrEffectiveUnitsOverflow     = errors.Register(ModuleName, 9, "bonus-weighted unit count overflowed")
	ErrPendingOverflow            = errors.Register(ModuleName, 10, "pending reward computation overflowed")
	ErrRewardDebtOverflow         = errors.Register(ModuleName, 11, "reward debt computation overflowed")
	ErrEndTimeOverflow            = errors.Register(ModuleName, 12, "end time adjustment overflowed")
	ErrPoolCounterOverflow        = errors.Register(ModuleName, 13, "pool counter overflowed")
	ErrPrecisionFactorOverflow    = errors.Register(ModuleName, 14, "precision factor overflowed")
	ErrRewardBudgetOverflow       = errors.Register(ModuleName, 15, "remaining reward budget overflowed")
)

// Validation errors
var (
	ErrInvalidAddress          = errors.Register(ModuleName, 20, "invalid address")
	ErrVaultAddressMismatch    = errors.Register(ModuleName, 22, "vault address does not match derived address")
	ErrVaultOwnerMismatch      = errors.Register(ModuleName, 23, "vault is not owned by the farm authority")
	ErrVaultMintMismatch       = errors.Register(ModuleName, 24, "vault denom does not match pool denom")
	ErrUnauthorized            = errors.Register(ModuleName, 25, "missing required signature")
	ErrAccountFrozen           = errors.Register(ModuleName, 26, "token account is frozen")
	ErrInsufficientFunds       = errors.Register(ModuleName, 27, "insufficient balance")
	ErrMintNotFound            = errors.Register(ModuleName, 28, "denom metadata not found")
	ErrInvalidAmount           = errors.Register(ModuleName, 29, "invalid amount")
	ErrInvalidPoolMetadata     = errors.Register(ModuleName, 30, "invalid pool metadata")
	ErrInvalidDenom            = errors.Register(ModuleName, 31, "invalid denom")
	ErrVaultExists             = errors.Register(ModuleName, 32, "vault account already initialized")
	ErrVaultNotFound           = errors.Register(ModuleName, 33, "vault account not initialized")
	ErrDecimalsTooLarge        = errors.Register(ModuleName, 34, "asset decimals must be below 21")
	ErrInvalidRewardTokenCount = errors.Register(ModuleName, 35, "reward token count must be positive")
)

// State-integrity errors
var (
	ErrRegistryNotFound     = errors.Register(ModuleName, 40, "pool registry not bootstrapped")
	ErrInvalidRegistryState = errors.Register(ModuleName, 41, "pool registry state is invalid")
	ErrPoolNotFound         = errors.Register(ModuleName, 42, "stake pool not found")
	ErrInvalidPoolState     = errors.Register(ModuleName, 43, "stake pool state is invalid")
	ErrPositionNotFound     = errors.Register(ModuleName, 44, "user position not found")
	ErrInvalidPositionState = errors.Register(ModuleName, 45, "user position state is invalid")
	ErrInvalidVaultState    = errors.Register(ModuleName, 46, "vault account state is invalid")
	ErrInvalidGenesis       = errors.Register(ModuleName, 47, "invalid genesis state")
)

// Policy errors
var (
	ErrAlreadyBootstrapped      = errors.Register(ModuleName, 60, "pool registry already bootstrapped")
	ErrNotPoolOwner             = errors.Register(ModuleName, 61, "signer is not the pool owner")
	ErrInvalidTimeRange         = errors.Register(ModuleName, 62, "end time must be after start time")
	ErrBonusAlreadySet          = errors.Register(ModuleName, 63, "bonus window can only be set once")
	ErrInvalidBonusWindow       = errors.Register(ModuleName, 64, "invalid bonus window")
	ErrInsufficientBonusBudget  = errors.Register(ModuleName, 65, "not enough reward budget for bonus")
	ErrPoolEnded                = errors.Register(ModuleName, 66, "pool has already ended")
	ErrEndTimeNotExtended       = errors.Register(ModuleName, 67, "new end time must be after current end time")
	ErrAmountExceedsBalance     = errors.Register(ModuleName, 68, "amount exceeds balance")
	ErrInsufficientRewardBudget = errors.Register(ModuleName, 69, "payout exceeds remaining reward liability")
	ErrEmptyPosition            = errors.Register(ModuleName, 70, "position has no stake")
	ErrPositionNotEmpty         = errors.Register(ModuleName, 71, "position still holds stake")
	ErrInvalidMultiplier        = errors.Register(ModuleName, 72, "bonus multiplier must be at least 1")
)
