package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount error = errors.New("invalid amount")

// nativeDecimals is the scale between the native currency and wei.
const nativeDecimals = 18

// maxWeiBits bounds a transaction value to a uint256.
const maxWeiBits = 256

// ToWei converts a decimal amount of the native currency into wei without going through
// floating point. Amounts must be plain positive decimals, representable in whole wei and no
// larger than a uint256.
func ToWei(amount string) (*big.Int, error) {
	trimmed := strings.TrimSpace(amount)
	if strings.ContainsAny(trimmed, "eE") {
		return nil, fmt.Errorf("%w: %q must not use exponent notation", ErrInvalidAmount, amount)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, amount, err)
	}

	if !d.IsPositive() {
		return nil, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, amount)
	}

	wei := d.Shift(nativeDecimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, amount, nativeDecimals)
	}

	value := wei.BigInt()
	if value.BitLen() > maxWeiBits {
		return nil, fmt.Errorf("%w: %q does not fit in %d bits of wei", ErrInvalidAmount, amount, maxWeiBits)
	}
	return value, nil
}

// FromWei renders a wei value as a decimal amount of the native currency.
func FromWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -nativeDecimals).String()
}
