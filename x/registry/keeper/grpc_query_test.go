package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keepnettypes "github.com/keepnet-global/keepnet/types"
	"github.com/keepnet-global/keepnet/x/registry/types"
)

func TestQueryState(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	quorum := newTestQuorum(t, 4)

	digest, err := keeper.ReplaceQuorum(ctx, quorum.signers, quorum.transmitters, 1, testParams(), 1, nil)
	require.NoError(t, err)
	require.NoError(t, keeper.AddUpkeep(ctx, testUpkeep(1, sdk.AccAddress([]byte("target______________")).String())))

	res, err := keeper.State(sdk.WrapSDKContext(ctx), &types.QueryStateRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.State.NumUpkeeps)
	assert.Equal(t, uint64(1), res.State.ConfigCount)
	assert.Equal(t, uint64(ctx.BlockHeight()), res.State.LatestConfigBlockNumber)
	assert.Equal(t, digest, res.State.LatestConfigDigest)
}

func TestQueryUpkeeps(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)

	target := sdk.AccAddress([]byte("target______________")).String()
	require.NoError(t, keeper.AddUpkeep(ctx, testUpkeep(1, target)))
	require.NoError(t, keeper.AddUpkeep(ctx, testUpkeep(2, target)))

	res, err := keeper.Upkeeps(sdk.WrapSDKContext(ctx), &types.QueryUpkeepsRequest{})
	require.NoError(t, err)
	require.Len(t, res.Upkeeps, 2)
	assert.Equal(t, uint64(1), res.Upkeeps[0].Id)
	assert.Equal(t, uint64(2), res.Upkeeps[1].Id)
}

func TestQueryMaxPaymentForGas(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	keeper.SetHotConfig(ctx, types.HotConfig{F: 1, PaymentPremiumPPB: 250_000_000})
	keeper.StoreOnchainParams(ctx, testParams())

	res, err := keeper.MaxPaymentForGas(sdk.WrapSDKContext(ctx), &types.QueryMaxPaymentForGasRequest{
		GasLimit: 100_000,
	})
	require.NoError(t, err)
	assert.Equal(t, keepnettypes.AttoKeep, res.MaxPayment.Denom)
	assert.True(t, res.MaxPayment.Amount.IsPositive())

	// The lower-security mode carries a smaller overhead ceiling.
	lower, err := keeper.MaxPaymentForGas(sdk.WrapSDKContext(ctx), &types.QueryMaxPaymentForGasRequest{
		GasLimit:            100_000,
		SkipSigVerification: true,
	})
	require.NoError(t, err)
	assert.True(t, lower.MaxPayment.Amount.LT(res.MaxPayment.Amount))
}
