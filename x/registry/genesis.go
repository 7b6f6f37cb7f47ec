package registry

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/keepnet-global/keepnet/x/registry/keeper"
	"github.com/keepnet-global/keepnet/x/registry/types"
)

// InitGenesis new registry genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if data.ModeratorAddress != "" {
		k.SetModeratorAddress(ctx, data.ModeratorAddress)
	}

	if err := data.HotConfig.Validate(); err != nil {
		panic(errorsmod.Wrapf(err, "error validating hot config"))
	}
	k.SetHotConfig(ctx, data.HotConfig)

	if err := data.OnchainParams.Validate(); err != nil {
		panic(errorsmod.Wrapf(err, "error validating onchain params"))
	}
	k.StoreOnchainParams(ctx, data.OnchainParams)

	expectedBalance := sdk.ZeroInt()
	for _, upkeep := range data.Upkeeps {
		if err := upkeep.Validate(); err != nil {
			panic(errorsmod.Wrapf(err, "error validating upkeep %d", upkeep.Id))
		}
		if err := k.AddUpkeep(ctx, upkeep); err != nil {
			panic(errorsmod.Wrapf(err, "error adding upkeep %d", upkeep.Id))
		}
		expectedBalance = expectedBalance.Add(upkeep.Balance)
	}
	k.SetExpectedBalance(ctx, expectedBalance)
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	upkeeps, _, err := k.GetPaginatedUpkeeps(ctx, &query.PageRequest{Limit: query.MaxLimit})
	if err != nil {
		panic(fmt.Errorf("unable to fetch upkeeps %v", err))
	}

	return types.NewGenesisState(
		k.GetModeratorAddress(ctx),
		k.GetHotConfig(ctx),
		k.GetOnchainParams(ctx),
		upkeeps,
	)
}
