package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keepnettypes "github.com/keepnet-global/keepnet/types"
	"github.com/keepnet-global/keepnet/x/registry/types"
)

func TestFundUpkeep(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)

	target := sdk.AccAddress([]byte("target______________")).String()
	require.NoError(t, keeper.AddUpkeep(ctx, testUpkeep(1, target)))

	funder := sdk.AccAddress([]byte("funder______________"))
	amount := keepnettypes.NewKeepCoinInt64(500_000)

	_, err := keeper.FundUpkeep(sdk.WrapSDKContext(ctx), types.NewMsgFundUpkeep(funder, 1, amount))
	require.NoError(t, err)

	upkeep, err := keeper.GetUpkeep(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_000_500_000), upkeep.Balance)
	assert.Equal(t, math.NewInt(500_000), keeper.GetExpectedBalance(ctx))
}

func TestFundUpkeepUnknownId(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)

	funder := sdk.AccAddress([]byte("funder______________"))
	_, err := keeper.FundUpkeep(sdk.WrapSDKContext(ctx), types.NewMsgFundUpkeep(funder, 42, keepnettypes.NewKeepCoinInt64(1)))
	assert.ErrorIs(t, err, types.ErrUpkeepNotFound)
}

func TestFundUpkeepRejectsCancelled(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)

	target := sdk.AccAddress([]byte("target______________")).String()
	cancelled := testUpkeep(1, target)
	cancelled.MaxValidBlocknumber = uint64(ctx.BlockHeight())
	require.NoError(t, keeper.AddUpkeep(ctx, cancelled))

	funder := sdk.AccAddress([]byte("funder______________"))
	_, err := keeper.FundUpkeep(sdk.WrapSDKContext(ctx), types.NewMsgFundUpkeep(funder, 1, keepnettypes.NewKeepCoinInt64(1)))
	assert.ErrorIs(t, err, types.ErrUpkeepCancelled)
}

func TestChangeModerator(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)

	moderator := sdk.AccAddress([]byte("moderator___________"))
	successor := sdk.AccAddress([]byte("successor___________"))
	keeper.SetModeratorAddress(ctx, moderator.String())

	_, err := keeper.ChangeModerator(sdk.WrapSDKContext(ctx), types.NewMsgChangeModerator(successor, successor))
	assert.ErrorIs(t, err, types.ErrWrongModerator)

	_, err = keeper.ChangeModerator(sdk.WrapSDKContext(ctx), types.NewMsgChangeModerator(moderator, successor))
	require.NoError(t, err)
	assert.Equal(t, successor.String(), keeper.GetModeratorAddress(ctx))
}

func TestSetOnchainParamsModeratorGate(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	quorum := newTestQuorum(t, 4)

	moderator := sdk.AccAddress([]byte("moderator___________"))
	keeper.SetModeratorAddress(ctx, moderator.String())

	_, err := keeper.ReplaceQuorum(ctx, quorum.signers, quorum.transmitters, 1, testParams(), 1, nil)
	require.NoError(t, err)

	params := testParams()
	params.MaxPerformGas = 6_000_000

	_, err = keeper.SetOnchainParams(sdk.WrapSDKContext(ctx), types.NewMsgSetOnchainParams(
		sdk.AccAddress([]byte("intruder____________")), params))
	assert.ErrorIs(t, err, types.ErrWrongModerator)

	res, err := keeper.SetOnchainParams(sdk.WrapSDKContext(ctx), types.NewMsgSetOnchainParams(moderator, params))
	require.NoError(t, err)
	assert.Len(t, res.ConfigDigest, 32)
	assert.Equal(t, params, keeper.GetOnchainParams(ctx))
}
