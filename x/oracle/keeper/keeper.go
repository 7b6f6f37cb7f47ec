package keeper

import (
	"encoding/binary"
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/keepnet-global/keepnet/x/oracle/types"
)

// Keeper of the oracle store. It owns the feed docs and the latest submitted
// value per feed.
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey storetypes.StoreKey
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey storetypes.StoreKey,
) *Keeper {
	return &Keeper{
		cdc:      cdc,
		storeKey: storeKey,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetModeratorAddress returns the current moderator address.
func (k Keeper) GetModeratorAddress(ctx sdk.Context) string {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyModeratorAddress)
	if len(bz) == 0 {
		return ""
	}
	return string(bz)
}

// SetModeratorAddress adds/updates the moderator address.
func (k Keeper) SetModeratorAddress(ctx sdk.Context, moderatorAddress string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyModeratorAddress, []byte(moderatorAddress))
}

func (k Keeper) SetFeedDocCount(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(types.KeyFeedDocCount, bz)
}

func (k Keeper) GetFeedDocCount(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyFeedDocCount)
	if len(bz) == 0 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) SetFeedDoc(ctx sdk.Context, doc types.FeedDoc) {
	store := ctx.KVStore(k.storeKey)

	bz := k.cdc.MustMarshal(&doc)
	store.Set(types.GetFeedDocKey(doc.Id), bz)
}

func (k Keeper) GetFeedDoc(ctx sdk.Context, id uint64) (*types.FeedDoc, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetFeedDocKey(id))
	if len(bz) == 0 {
		return nil, types.ErrFeedNotFound.Wrapf("feed id %d", id)
	}

	var doc types.FeedDoc
	k.cdc.MustUnmarshal(bz, &doc)
	return &doc, nil
}

func (k Keeper) SetOracleData(ctx sdk.Context, data types.OracleData) {
	store := ctx.KVStore(k.storeKey)

	bz := k.cdc.MustMarshal(&data)
	store.Set(types.GetOracleDataKey(data.Id), bz)
}

// GetOracleDataRecord returns the stored submission record for a feed.
func (k Keeper) GetOracleDataRecord(ctx sdk.Context, id uint64) (*types.OracleData, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetOracleDataKey(id))
	if len(bz) == 0 {
		return nil, types.ErrNoOracleData.Wrapf("feed id %d", id)
	}

	var data types.OracleData
	k.cdc.MustUnmarshal(bz, &data)
	return &data, nil
}

// GetOracleData returns the latest value and submission time for a feed.
// Callers decide freshness against their own staleness policy.
func (k Keeper) GetOracleData(ctx sdk.Context, id uint64) (math.Int, time.Time, error) {
	data, err := k.GetOracleDataRecord(ctx, id)
	if err != nil {
		return math.Int{}, time.Time{}, err
	}
	return data.Value, data.UpdatedAt, nil
}
