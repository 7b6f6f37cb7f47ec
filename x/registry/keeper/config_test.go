package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

func testParams() types.OnchainParams {
	return types.OnchainParams{
		MaxPerformGas:      5_000_000,
		MaxCheckDataSize:   2_000,
		MaxPerformDataSize: 2_000,
		FallbackGasPrice:   math.NewInt(1),
		FallbackKeepPrice:  math.NewInt(1_000_000_000_000_000_000),
		GasFeedId:          1,
		KeepFeedId:         2,
	}
}

func TestReplaceQuorumInstallsSignersAndTransmitters(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	quorum := newTestQuorum(t, 4)

	digest, err := keeper.ReplaceQuorum(ctx, quorum.signers, quorum.transmitters, 1, testParams(), 1, nil)
	require.NoError(t, err)
	require.Len(t, digest, 32)
	assert.Equal(t, types.ConfigDigestPrefix[0], digest[0])
	assert.Equal(t, types.ConfigDigestPrefix[1], digest[1])

	assert.Equal(t, uint64(1), keeper.GetConfigCount(ctx))
	assert.Equal(t, uint64(ctx.BlockHeight()), keeper.GetLatestConfigBlock(ctx))
	assert.Equal(t, digest, keeper.GetHotConfig(ctx).LatestConfigDigest)

	for i, hex := range quorum.signers {
		signer, err := keeper.GetSigner(ctx, common.HexToAddress(hex))
		require.NoError(t, err)
		assert.True(t, signer.Active)
		assert.Equal(t, uint32(i), signer.Index)
	}
	for i, address := range quorum.transmitters {
		transmitter, err := keeper.GetTransmitter(ctx, address)
		require.NoError(t, err)
		assert.True(t, transmitter.Active)
		assert.Equal(t, uint32(i), transmitter.Index)
		assert.Equal(t, math.ZeroInt(), transmitter.Balance)
	}
}

func TestReplaceQuorumRotationPreservesTransmitterBalances(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	oldQuorum := newTestQuorum(t, 4)

	firstDigest, err := keeper.ReplaceQuorum(ctx, oldQuorum.signers, oldQuorum.transmitters, 1, testParams(), 1, nil)
	require.NoError(t, err)

	// Accrue a balance on one outgoing transmitter.
	accrued := math.NewInt(777)
	record, err := keeper.GetTransmitter(ctx, oldQuorum.transmitters[0])
	require.NoError(t, err)
	record.Balance = accrued
	keeper.SetTransmitter(ctx, oldQuorum.transmitters[0], *record)

	newQuorum := newTestQuorum(t, 4)
	secondDigest, err := keeper.ReplaceQuorum(ctx, newQuorum.signers, newQuorum.transmitters, 1, testParams(), 2, nil)
	require.NoError(t, err)

	// Rotation changes the digest and bumps the counter.
	assert.NotEqual(t, firstDigest, secondDigest)
	assert.Equal(t, uint64(2), keeper.GetConfigCount(ctx))

	// Old signer identities are gone entirely.
	_, err = keeper.GetSigner(ctx, common.HexToAddress(oldQuorum.signers[0]))
	assert.ErrorIs(t, err, types.ErrOnlyActiveSigners)

	// Old transmitters are deactivated but keep their accrued balance.
	outgoing, err := keeper.GetTransmitter(ctx, oldQuorum.transmitters[0])
	require.NoError(t, err)
	assert.False(t, outgoing.Active)
	assert.Equal(t, accrued, outgoing.Balance)
}

func TestUpdateOnchainParamsRecomputesDigest(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	quorum := newTestQuorum(t, 4)

	firstDigest, err := keeper.ReplaceQuorum(ctx, quorum.signers, quorum.transmitters, 1, testParams(), 1, nil)
	require.NoError(t, err)

	params := testParams()
	params.MaxPerformGas = 6_000_000
	secondDigest, err := keeper.UpdateOnchainParams(ctx, params)
	require.NoError(t, err)

	assert.NotEqual(t, firstDigest, secondDigest)
	assert.Equal(t, uint64(2), keeper.GetConfigCount(ctx))
	assert.Equal(t, secondDigest, keeper.GetHotConfig(ctx).LatestConfigDigest)
	assert.Equal(t, params, keeper.GetOnchainParams(ctx))
}

func TestUpdateOnchainParamsKeepsOffchainConfigBinding(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	quorum := newTestQuorum(t, 4)

	offchainConfig := []byte("coordination blob")
	_, err := keeper.ReplaceQuorum(ctx, quorum.signers, quorum.transmitters, 1, testParams(), 7, offchainConfig)
	require.NoError(t, err)

	stored := keeper.GetOffchainConfig(ctx)
	assert.Equal(t, uint64(7), stored.Version)
	assert.Equal(t, offchainConfig, stored.Config)

	params := testParams()
	params.MaxPerformGas = 6_000_000
	digest, err := keeper.UpdateOnchainParams(ctx, params)
	require.NoError(t, err)

	// The recomputed digest carries the same off-chain fields the quorum was
	// installed with.
	signerAddrs := make([]common.Address, len(quorum.signers))
	for i, hex := range quorum.signers {
		signerAddrs[i] = common.HexToAddress(hex)
	}
	expected, err := types.ConfigDigest(
		ctx.ChainID(),
		moduleAddress.String(),
		2,
		signerAddrs,
		quorum.transmitters,
		1,
		params,
		7,
		offchainConfig,
	)
	require.NoError(t, err)
	assert.Equal(t, expected, digest)
}

func TestUpdateOnchainParamsRatchetRejectsDecrease(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	quorum := newTestQuorum(t, 4)

	firstDigest, err := keeper.ReplaceQuorum(ctx, quorum.signers, quorum.transmitters, 1, testParams(), 1, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*types.OnchainParams)
		err    error
	}{
		{
			name:   "perform gas decrease",
			mutate: func(p *types.OnchainParams) { p.MaxPerformGas = 4_000_000 },
			err:    types.ErrGasLimitCanOnlyIncrease,
		},
		{
			name:   "check data size decrease",
			mutate: func(p *types.OnchainParams) { p.MaxCheckDataSize = 1_000 },
			err:    types.ErrCheckDataSizeCanOnlyIncrease,
		},
		{
			name:   "perform data size decrease",
			mutate: func(p *types.OnchainParams) { p.MaxPerformDataSize = 1_000 },
			err:    types.ErrPerformDataSizeCanOnlyIncrease,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := testParams()
			tc.mutate(&params)

			_, err := keeper.UpdateOnchainParams(ctx, params)
			assert.ErrorIs(t, err, tc.err)

			// A rejected update leaves the stored generation untouched.
			assert.Equal(t, firstDigest, keeper.GetHotConfig(ctx).LatestConfigDigest)
			assert.Equal(t, uint64(1), keeper.GetConfigCount(ctx))
			assert.Equal(t, testParams(), keeper.GetOnchainParams(ctx))
		})
	}
}

func TestSetConfigModeratorGate(t *testing.T) {
	keeper, ctx, _ := setupKeeper(t)
	quorum := newTestQuorum(t, 4)

	moderator := sdk.AccAddress([]byte("moderator___________")).String()
	keeper.SetModeratorAddress(ctx, moderator)

	_, err := keeper.SetConfig(sdk.WrapSDKContext(ctx), &types.MsgSetConfig{
		ModeratorAddress: sdk.AccAddress([]byte("intruder____________")).String(),
		Signers:          quorum.signers,
		Transmitters:     quorum.transmitters,
		F:                1,
		OnchainParams:    testParams(),
	})
	assert.ErrorIs(t, err, types.ErrWrongModerator)

	res, err := keeper.SetConfig(sdk.WrapSDKContext(ctx), &types.MsgSetConfig{
		ModeratorAddress: moderator,
		Signers:          quorum.signers,
		Transmitters:     quorum.transmitters,
		F:                1,
		OnchainParams:    testParams(),
	})
	require.NoError(t, err)
	assert.Len(t, res.ConfigDigest, 32)
}
