package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the registry module's genesis state.
type GenesisState struct {
	ModeratorAddress string        `json:"moderator_address"`
	HotConfig        HotConfig     `json:"hot_config"`
	OnchainParams    OnchainParams `json:"onchain_params"`
	Upkeeps          []Upkeep      `json:"upkeeps"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(moderatorAddress string, hot HotConfig, params OnchainParams, upkeeps []Upkeep) GenesisState {
	return GenesisState{
		ModeratorAddress: moderatorAddress,
		HotConfig:        hot,
		OnchainParams:    params,
		Upkeeps:          upkeeps,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		HotConfig: HotConfig{
			F:                 1,
			PaymentPremiumPPB: 250_000_000, // 25%
			FlatFeeMicroKeep:  0,
			StalenessSeconds:  90_000,
		},
		OnchainParams: OnchainParams{
			MaxPerformGas:      5_000_000,
			MaxCheckDataSize:   2_000,
			MaxPerformDataSize: 2_000,
			FallbackGasPrice:   sdkmath.NewInt(200_000_000_000),
			FallbackKeepPrice:  sdkmath.NewInt(2_000_000_000_000_000_000),
			GasFeedId:          1,
			KeepFeedId:         2,
		},
		Upkeeps: []Upkeep{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.HotConfig.Validate(); err != nil {
		return fmt.Errorf("invalid hot config: %w", err)
	}

	if err := gs.OnchainParams.Validate(); err != nil {
		return fmt.Errorf("invalid onchain params: %w", err)
	}

	seen := make(map[uint64]bool, len(gs.Upkeeps))
	for _, upkeep := range gs.Upkeeps {
		if err := upkeep.Validate(); err != nil {
			return fmt.Errorf("invalid upkeep %d: %w", upkeep.Id, err)
		}
		if seen[upkeep.Id] {
			return fmt.Errorf("duplicate upkeep id %d", upkeep.Id)
		}
		seen[upkeep.Id] = true
	}

	// Validate moderator address if provided
	if gs.ModeratorAddress != "" {
		if _, err := sdk.AccAddressFromBech32(gs.ModeratorAddress); err != nil {
			return fmt.Errorf("invalid moderator address: %w", err)
		}
	}

	return nil
}
