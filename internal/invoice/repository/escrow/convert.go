package escrow

import (
	"fmt"
	"math/big"
	"strings"
)

// nativeDecimals is the number of base-unit decimals of the chain's native
// token (wei-style).
const nativeDecimals = 18

var weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(nativeDecimals), nil)

// ToWei converts a human-denominated decimal string ("500", "0.05") into
// base units. String parsing keeps the conversion exact; floats never enter.
func ToWei(amount string) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("negative amount %q", amount)
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > nativeDecimals {
		return nil, fmt.Errorf("amount %q has more than %d decimal places", amount, nativeDecimals)
	}

	// Pad the fraction to 18 digits and treat the whole thing as an integer.
	padded := fracPart + strings.Repeat("0", nativeDecimals-len(fracPart))

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	frac, ok := new(big.Int).SetString(padded, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}

	return new(big.Int).Add(new(big.Int).Mul(whole, weiPerUnit), frac), nil
}

// FromWei converts base units into the display float. Display values accept
// float precision loss; exact values stay in base units on the ledger.
func FromWei(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	f, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		new(big.Float).SetInt(weiPerUnit),
	).Float64()
	return f
}
