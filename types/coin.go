package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// AttoKeep defines the default coin denomination used in Keepnet in:
	//
	// - Staking parameters: denomination used as stake in the dPoS chain
	// - Registry parameters: denomination upkeeps are funded with and operators
	//   are reimbursed in
	// - Governance parameters: denomination used for spam prevention in proposal deposits
	AttoKeep string = "akeep"

	// BaseDenomUnit defines the base denomination unit for Keepnet.
	// 1 keep = 1x10^{BaseDenomUnit} akeep
	BaseDenomUnit = 18
)

// PowerReduction defines the default power reduction value for staking
var PowerReduction = sdkmath.NewIntFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(BaseDenomUnit), nil))

// NewKeepCoin is a utility function that returns an "akeep" coin with the given sdkmath.Int amount.
// The function will panic if the provided amount is negative.
func NewKeepCoin(amount sdkmath.Int) sdk.Coin {
	return sdk.NewCoin(AttoKeep, amount)
}

// NewKeepDecCoin is a utility function that returns an "akeep" decimal coin with the given sdkmath.Int amount.
// The function will panic if the provided amount is negative.
func NewKeepDecCoin(amount sdkmath.Int) sdk.DecCoin {
	return sdk.NewDecCoin(AttoKeep, amount)
}

// NewKeepCoinInt64 is a utility function that returns an "akeep" coin with the given int64 amount.
// The function will panic if the provided amount is negative.
func NewKeepCoinInt64(amount int64) sdk.Coin {
	return sdk.NewInt64Coin(AttoKeep, amount)
}
