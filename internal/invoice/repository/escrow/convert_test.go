package escrow

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWei(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    string // base units, decimal
		wantErr bool
	}{
		{name: "Whole number", amount: "500", want: "500000000000000000000"},
		{name: "Fraction", amount: "0.05", want: "50000000000000000"},
		{name: "Mixed", amount: "1.5", want: "1500000000000000000"},
		{name: "Leading dot", amount: ".25", want: "250000000000000000"},
		{name: "Zero", amount: "0", want: "0"},
		{name: "Max precision", amount: "0.000000000000000001", want: "1"},
		{name: "Whitespace", amount: " 50 ", want: "50000000000000000000"},
		{name: "Too many decimals", amount: "0.0000000000000000001", wantErr: true},
		{name: "Negative", amount: "-1", wantErr: true},
		{name: "Empty", amount: "", wantErr: true},
		{name: "Not a number", amount: "fifty", wantErr: true},
		{name: "Double dot", amount: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToWei(tt.amount)
			if tt.wantErr {
				require.Error(t, err, "amount %q", tt.amount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromWei(t *testing.T) {
	wei, ok := new(big.Int).SetString("500000000000000000000", 10)
	require.True(t, ok)

	assert.Equal(t, float64(500), FromWei(wei))
	assert.Equal(t, float64(0), FromWei(nil))
}

func TestToWeiFromWeiRoundTrip(t *testing.T) {
	for _, amount := range []string{"500", "0.05", "1.5", "123.456"} {
		wei, err := ToWei(amount)
		require.NoError(t, err, "ToWei(%q)", amount)

		back := FromWei(wei)
		again, err := ToWei(trimFloat(back))
		require.NoError(t, err)
		assert.Zerof(t, wei.Cmp(again), "round trip drift for %q: %s vs %s", amount, wei, again)
	}
}

func trimFloat(f float64) string {
	return big.NewFloat(f).Text('f', -1)
}
