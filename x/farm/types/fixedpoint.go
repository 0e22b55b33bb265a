package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/holiman/uint256"
)

// PrecisionBase is subtracted from an asset's decimals to obtain its precision
// rank. Assets with PrecisionBase or more decimals are rejected.
const PrecisionBase = 21

// maxPerShareBits caps the accrued-per-share counter at 128 bits.
const maxPerShareBits = 128

// PrecisionRankForDecimals returns 21 - decimals, the exponent of the
// precision factor used for a pool whose staked asset has the given decimals.
func PrecisionRankForDecimals(decimals uint32) (uint8, error) {
	if decimals >= PrecisionBase {
		return 0, errorsmod.Wrapf(ErrDecimalsTooLarge, "decimals %d", decimals)
	}
	return uint8(PrecisionBase - decimals), nil
}

// PrecisionFactor returns 10^rank.
func PrecisionFactor(rank uint8) (*uint256.Int, error) {
	if rank > PrecisionBase {
		return nil, errorsmod.Wrapf(ErrPrecisionFactorOverflow, "rank %d", rank)
	}
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(rank))), nil
}

func u256(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// narrow64 converts x to uint64, reporting site when it does not fit.
func narrow64(x *uint256.Int, site error) (uint64, error) {
	if !x.IsUint64() {
		return 0, errorsmod.Wrapf(site, "value %s does not fit in 64 bits", x.Dec())
	}
	return x.Uint64(), nil
}

func checkedAdd64(a, b uint64, site error) (uint64, error) {
	sum, overflow := new(uint256.Int).AddOverflow(u256(a), u256(b))
	if overflow {
		return 0, site
	}
	return narrow64(sum, site)
}

func checkedSub64(a, b uint64, site error) (uint64, error) {
	if b > a {
		return 0, errorsmod.Wrapf(site, "%d - %d underflows", a, b)
	}
	return a - b, nil
}

func checkedMul64(a, b uint64, site error) (uint64, error) {
	product, overflow := new(uint256.Int).MulOverflow(u256(a), u256(b))
	if overflow {
		return 0, site
	}
	return narrow64(product, site)
}

// PerShareToUint256 converts the persisted counter into widened form.
func PerShareToUint256(v math.Uint) (*uint256.Int, error) {
	if v.IsNil() {
		return new(uint256.Int), nil
	}
	x, overflow := uint256.FromBig(v.BigInt())
	if overflow || x.BitLen() > maxPerShareBits {
		return nil, errorsmod.Wrapf(ErrAccruedPerShareOverflow, "stored value %s", v.String())
	}
	return x, nil
}

// PerShareFromUint256 converts a widened counter back to its persisted form.
func PerShareFromUint256(x *uint256.Int) math.Uint {
	return math.NewUintFromBigInt(x.ToBig())
}

// ScaledShare returns amount * perShare / 10^rank truncated towards zero.
// The product is computed in 256 bits, so only the final narrowing can fail.
func ScaledShare(amount uint64, perShare math.Uint, rank uint8, site error) (uint64, error) {
	acc, err := PerShareToUint256(perShare)
	if err != nil {
		return 0, err
	}
	factor, err := PrecisionFactor(rank)
	if err != nil {
		return 0, err
	}
	product, overflow := new(uint256.Int).MulOverflow(u256(amount), acc)
	if overflow {
		return 0, site
	}
	return narrow64(product.Div(product, factor), site)
}
