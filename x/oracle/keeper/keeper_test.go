package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"

	"github.com/keepnet-global/keepnet/x/oracle/types"
)

// setupKeeper creates a new Keeper instance and context for testing
func setupKeeper(t *testing.T) (*Keeper, sdk.Context) {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, tmproto.Header{}, false, log.NewNopLogger())

	keeper := NewKeeper(
		types.ModuleCdc,
		storeKey,
	)

	return keeper, ctx
}

// TestSetAndGetFeedDocCount tests the setting and getting of feed doc count
func TestSetAndGetFeedDocCount(t *testing.T) {
	keeper, ctx := setupKeeper(t)

	// Initial count should be 0
	initialCount := keeper.GetFeedDocCount(ctx)
	assert.Equal(t, uint64(0), initialCount)

	// Set count
	testCount := uint64(42)
	keeper.SetFeedDocCount(ctx, testCount)

	// Verify the set count
	retrievedCount := keeper.GetFeedDocCount(ctx)
	assert.Equal(t, testCount, retrievedCount)
}

// TestSetAndGetFeedDoc tests the setting and getting of feed docs
func TestSetAndGetFeedDoc(t *testing.T) {
	keeper, ctx := setupKeeper(t)

	doc := types.FeedDoc{
		Id:          1,
		Name:        "gas-price",
		Description: "execution gas price feed",
	}

	keeper.SetFeedDoc(ctx, doc)

	retrievedDoc, err := keeper.GetFeedDoc(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, doc, *retrievedDoc)

	// Test retrieval of non-existent doc
	_, err = keeper.GetFeedDoc(ctx, 999)
	assert.ErrorIs(t, err, types.ErrFeedNotFound)
}

// TestSetAndGetOracleData tests the setting and getting of oracle data
func TestSetAndGetOracleData(t *testing.T) {
	keeper, ctx := setupKeeper(t)

	updatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	data := types.OracleData{
		Id:        1,
		Value:     math.NewInt(20_000_000_000),
		UpdatedAt: updatedAt,
		Provider:  "cosmos1provider",
	}

	keeper.SetOracleData(ctx, data)

	value, at, err := keeper.GetOracleData(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, data.Value, value)
	assert.True(t, updatedAt.Equal(at))

	// No data for an unknown feed
	_, _, err = keeper.GetOracleData(ctx, 999)
	assert.ErrorIs(t, err, types.ErrNoOracleData)
}

// TestSetAndGetModeratorAddress tests the setting and getting of moderator address
func TestSetAndGetModeratorAddress(t *testing.T) {
	keeper, ctx := setupKeeper(t)

	// Initial address should be empty string
	initialAddress := keeper.GetModeratorAddress(ctx)
	assert.Equal(t, "", initialAddress)

	// Set address
	testAddress := "cosmos1testaddress"
	keeper.SetModeratorAddress(ctx, testAddress)

	// Verify the set address
	retrievedAddress := keeper.GetModeratorAddress(ctx)
	assert.Equal(t, testAddress, retrievedAddress)
}

// TestSubmitOracleDataModeratorGate tests that only the moderator can submit data
func TestSubmitOracleDataModeratorGate(t *testing.T) {
	keeper, ctx := setupKeeper(t)

	moderator := sdk.AccAddress([]byte("moderator___________")).String()
	keeper.SetModeratorAddress(ctx, moderator)
	keeper.SetFeedDoc(ctx, types.FeedDoc{Id: 1, Name: "keep-price"})
	keeper.SetFeedDocCount(ctx, 1)

	goCtx := sdk.WrapSDKContext(ctx)

	_, err := keeper.SubmitOracleData(goCtx, &types.MsgSubmitOracleData{
		ModeratorAddress: sdk.AccAddress([]byte("intruder____________")).String(),
		FeedId:           1,
		Value:            math.NewInt(100),
	})
	assert.ErrorIs(t, err, types.ErrWrongModerator)

	_, err = keeper.SubmitOracleData(goCtx, &types.MsgSubmitOracleData{
		ModeratorAddress: moderator,
		FeedId:           1,
		Value:            math.NewInt(100),
	})
	require.NoError(t, err)

	value, _, err := keeper.GetOracleData(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), value)
}

// TestSubmitOracleDataUnknownFeed tests that submissions require a registered feed
func TestSubmitOracleDataUnknownFeed(t *testing.T) {
	keeper, ctx := setupKeeper(t)

	moderator := sdk.AccAddress([]byte("moderator___________")).String()
	keeper.SetModeratorAddress(ctx, moderator)

	_, err := keeper.SubmitOracleData(sdk.WrapSDKContext(ctx), &types.MsgSubmitOracleData{
		ModeratorAddress: moderator,
		FeedId:           7,
		Value:            math.NewInt(100),
	})
	assert.ErrorIs(t, err, types.ErrFeedNotFound)
}

// TestRegisterFeedDoc tests feed doc registration through the msg server
func TestRegisterFeedDoc(t *testing.T) {
	keeper, ctx := setupKeeper(t)

	moderator := sdk.AccAddress([]byte("moderator___________")).String()
	keeper.SetModeratorAddress(ctx, moderator)

	res, err := keeper.RegisterFeedDoc(sdk.WrapSDKContext(ctx), &types.MsgRegisterFeedDoc{
		ModeratorAddress: moderator,
		FeedDoc:          types.FeedDoc{Name: "gas-price", Description: "execution gas price feed"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.FeedId)

	doc, err := keeper.GetFeedDoc(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "gas-price", doc.Name)
	assert.Equal(t, uint64(1), keeper.GetFeedDocCount(ctx))
}
