package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the contract required for account APIs.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the contract needed to be fulfilled for banking and supply
// dependencies.
type BankKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddress sdk.AccAddress, recipientModule string, amt sdk.Coins) error
}

// OracleKeeper defines the price feed surface the registry reads at settlement
// time. Implementations must never mutate state.
type OracleKeeper interface {
	GetOracleData(ctx sdk.Context, id uint64) (value sdkmath.Int, updatedAt time.Time, err error)
}

// UpkeepTarget is the contract an on-chain target module fulfills to be
// performable by the registry. A returned error marks the perform as failed;
// the upkeep is still charged for the gas the call consumed.
type UpkeepTarget interface {
	PerformUpkeep(ctx sdk.Context, id uint64, performData []byte) error
}
