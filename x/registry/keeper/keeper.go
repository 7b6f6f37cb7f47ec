package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/ethereum/go-ethereum/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

// BlockHashRetention is the number of recent block hashes kept for the reorg
// check. Checked points older than this are unresolvable and force a skip.
const BlockHashRetention = 256

// Keeper of the registry store
type Keeper struct {
	cdc *codec.LegacyAmino

	// Store key required for the registry KVStore. It holds the upkeep ledger,
	// the operator records and both configuration generations.
	storeKey storetypes.StoreKey

	// memKey holds the transient perform lock guarding against reentrancy.
	memKey storetypes.StoreKey

	// resolve the module account owning upkeep funds
	accountKeeper types.AccountKeeper

	// move upkeep funds in and out of the module account using bankkeeper
	bankKeeper types.BankKeeper

	// read gas and token price feeds
	oracleKeeper types.OracleKeeper

	// performable target modules keyed by their routing address
	targets map[string]types.UpkeepTarget
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	memKey storetypes.StoreKey,
	ak types.AccountKeeper,
	bk types.BankKeeper,
	ok types.OracleKeeper,
) *Keeper {

	// ensure registry module account is set
	if addr := ak.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the registry module account has not been set")
	}

	return &Keeper{
		cdc:           cdc,
		storeKey:      key,
		memKey:        memKey,
		accountKeeper: ak,
		bankKeeper:    bk,
		oracleKeeper:  ok,
		targets:       make(map[string]types.UpkeepTarget),
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// RegisterTarget registers a performable target module under its routing
// address. Called once during app wiring; not safe after sealing.
func (k *Keeper) RegisterTarget(address string, target types.UpkeepTarget) {
	if _, ok := k.targets[address]; ok {
		panic(fmt.Sprintf("target already registered for %s", address))
	}
	k.targets[address] = target
}

// GetTarget resolves the target module for an upkeep's routing address.
func (k Keeper) GetTarget(address string) (types.UpkeepTarget, bool) {
	target, ok := k.targets[address]
	return target, ok
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

// GetUpkeep returns the upkeep record for the given id.
func (k Keeper) GetUpkeep(ctx sdk.Context, id uint64) (*types.Upkeep, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetUpkeepKey(id))
	if len(bz) == 0 {
		return nil, errorsmod.Wrapf(types.ErrUpkeepNotFound, "id %d", id)
	}

	var upkeep types.Upkeep
	k.cdc.MustUnmarshal(bz, &upkeep)
	return &upkeep, nil
}

// SetUpkeep stores an upkeep record under its id.
func (k Keeper) SetUpkeep(ctx sdk.Context, upkeep types.Upkeep) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshal(&upkeep)
	store.Set(types.GetUpkeepKey(upkeep.Id), bz)
}

// AddUpkeep stores a new upkeep record and bumps the upkeep count. Used by
// genesis and by the administrative module sharing this schema.
func (k Keeper) AddUpkeep(ctx sdk.Context, upkeep types.Upkeep) error {
	store := ctx.KVStore(k.storeKey)
	if store.Has(types.GetUpkeepKey(upkeep.Id)) {
		return errorsmod.Wrapf(types.ErrInvalidConfig, "upkeep already exists with id %d", upkeep.Id)
	}
	k.SetUpkeep(ctx, upkeep)
	k.setUpkeepCount(ctx, k.GetUpkeepCount(ctx)+1)
	return nil
}

// GetUpkeepCount returns the number of registered upkeeps.
func (k Keeper) GetUpkeepCount(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyUpkeepCount)
	if len(bz) == 0 {
		return 0
	}
	return types.IDFromBytes(bz)
}

func (k Keeper) setUpkeepCount(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyUpkeepCount, types.IDToBytes(count))
}

// GetPaginatedUpkeeps returns upkeep records page by page, ordered by id.
func (k Keeper) GetPaginatedUpkeeps(ctx sdk.Context, pagination *query.PageRequest) ([]types.Upkeep, *query.PageResponse, error) {
	store := ctx.KVStore(k.storeKey)
	upkeepStore := prefix.NewStore(store, types.KeyUpkeeps)

	upkeeps := []types.Upkeep{}

	pageRes, err := query.Paginate(upkeepStore, pagination, func(key, value []byte) error {
		var upkeep types.Upkeep
		k.cdc.MustUnmarshal(value, &upkeep)

		upkeeps = append(upkeeps, upkeep)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return upkeeps, pageRes, nil
}

// GetSigner returns the signer record for the given identity.
func (k Keeper) GetSigner(ctx sdk.Context, address common.Address) (*types.Signer, error) {
	store := ctx.KVStore(k.storeKey)
	signerStore := prefix.NewStore(store, types.KeySigners)

	bz := signerStore.Get(address.Bytes())
	if len(bz) == 0 {
		return nil, errorsmod.Wrapf(types.ErrOnlyActiveSigners, "unknown signer %s", address.Hex())
	}

	var signer types.Signer
	k.cdc.MustUnmarshal(bz, &signer)
	return &signer, nil
}

// SetSigner stores a signer record under its identity.
func (k Keeper) SetSigner(ctx sdk.Context, address common.Address, signer types.Signer) {
	store := ctx.KVStore(k.storeKey)
	signerStore := prefix.NewStore(store, types.KeySigners)
	signerStore.Set(address.Bytes(), k.cdc.MustMarshal(&signer))
}

// GetSignerList returns the active quorum's signer identities in index order.
func (k Keeper) GetSignerList(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeySignerList)
	if len(bz) == 0 {
		return nil
	}
	var list []string
	k.cdc.MustUnmarshalJSON(bz, &list)
	return list
}

// SetSignerList stores the active quorum's signer identities in index order.
func (k Keeper) SetSignerList(ctx sdk.Context, list []string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeySignerList, k.cdc.MustMarshalJSON(&list))
}

// ClearSigners deletes every signer record of the outgoing quorum. Replacing
// the quorum invalidates all previous signer identities.
func (k Keeper) ClearSigners(ctx sdk.Context) {
	store := ctx.KVStore(k.storeKey)
	signerStore := prefix.NewStore(store, types.KeySigners)
	for _, hex := range k.GetSignerList(ctx) {
		signerStore.Delete(common.HexToAddress(hex).Bytes())
	}
	store.Delete(types.KeySignerList)
}

// GetTransmitter returns the transmitter record for the given account address.
func (k Keeper) GetTransmitter(ctx sdk.Context, address string) (*types.Transmitter, error) {
	store := ctx.KVStore(k.storeKey)
	transmitterStore := prefix.NewStore(store, types.KeyTransmitters)

	bz := transmitterStore.Get([]byte(address))
	if len(bz) == 0 {
		return nil, errorsmod.Wrapf(types.ErrOnlyActiveTransmitters, "unknown transmitter %s", address)
	}

	var transmitter types.Transmitter
	k.cdc.MustUnmarshal(bz, &transmitter)
	return &transmitter, nil
}

// SetTransmitter stores a transmitter record under its account address.
func (k Keeper) SetTransmitter(ctx sdk.Context, address string, transmitter types.Transmitter) {
	store := ctx.KVStore(k.storeKey)
	transmitterStore := prefix.NewStore(store, types.KeyTransmitters)
	transmitterStore.Set([]byte(address), k.cdc.MustMarshal(&transmitter))
}

// GetTransmitterList returns the active quorum's transmitter addresses in
// index order.
func (k Keeper) GetTransmitterList(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyTransmitterList)
	if len(bz) == 0 {
		return nil
	}
	var list []string
	k.cdc.MustUnmarshalJSON(bz, &list)
	return list
}

// SetTransmitterList stores the active quorum's transmitter addresses in
// index order.
func (k Keeper) SetTransmitterList(ctx sdk.Context, list []string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyTransmitterList, k.cdc.MustMarshalJSON(&list))
}

// GetHotConfig returns the per-transmission configuration record.
func (k Keeper) GetHotConfig(ctx sdk.Context) types.HotConfig {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyHotConfig)
	if len(bz) == 0 {
		return types.HotConfig{}
	}
	var hot types.HotConfig
	k.cdc.MustUnmarshal(bz, &hot)
	return hot
}

// SetHotConfig stores the per-transmission configuration record.
func (k Keeper) SetHotConfig(ctx sdk.Context, hot types.HotConfig) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyHotConfig, k.cdc.MustMarshal(&hot))
}

// GetOnchainParams returns the cold parameter set.
func (k Keeper) GetOnchainParams(ctx sdk.Context) types.OnchainParams {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyOnchainParams)
	if len(bz) == 0 {
		return types.OnchainParams{}
	}
	var params types.OnchainParams
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// StoreOnchainParams writes the cold parameter set.
func (k Keeper) StoreOnchainParams(ctx sdk.Context, params types.OnchainParams) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyOnchainParams, k.cdc.MustMarshal(&params))
}

// GetOffchainConfig returns the off-chain coordination blob installed with the
// current quorum.
func (k Keeper) GetOffchainConfig(ctx sdk.Context) types.OffchainConfig {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyOffchainConfig)
	if len(bz) == 0 {
		return types.OffchainConfig{}
	}
	var offchain types.OffchainConfig
	k.cdc.MustUnmarshal(bz, &offchain)
	return offchain
}

// SetOffchainConfig stores the off-chain coordination blob.
func (k Keeper) SetOffchainConfig(ctx sdk.Context, offchain types.OffchainConfig) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyOffchainConfig, k.cdc.MustMarshal(&offchain))
}

// GetConfigCount returns the monotonically increasing configuration counter.
func (k Keeper) GetConfigCount(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyConfigCount)
	if len(bz) == 0 {
		return 0
	}
	return types.IDFromBytes(bz)
}

// SetConfigCount stores the configuration counter.
func (k Keeper) SetConfigCount(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyConfigCount, types.IDToBytes(count))
}

// GetLatestConfigBlock returns the height of the last configuration change.
func (k Keeper) GetLatestConfigBlock(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyLatestConfigBlock)
	if len(bz) == 0 {
		return 0
	}
	return types.IDFromBytes(bz)
}

// SetLatestConfigBlock stores the height of the last configuration change.
func (k Keeper) SetLatestConfigBlock(ctx sdk.Context, height uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyLatestConfigBlock, types.IDToBytes(height))
}

// GetExpectedBalance returns the sum the module account must hold to cover
// every upkeep and transmitter balance.
func (k Keeper) GetExpectedBalance(ctx sdk.Context) math.Int {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyExpectedBalance)
	if len(bz) == 0 {
		return math.ZeroInt()
	}
	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("unable to unmarshal expected balance %v", err))
	}
	return balance
}

// SetExpectedBalance stores the tracked module-account obligation.
func (k Keeper) SetExpectedBalance(ctx sdk.Context, balance math.Int) {
	store := ctx.KVStore(k.storeKey)
	bz, err := balance.Marshal()
	if err != nil {
		panic(fmt.Errorf("unable to marshal expected balance %v", err))
	}
	store.Set(types.KeyExpectedBalance, bz)
}

// GetBlockHash returns the retained hash for the given height, if still inside
// the retention window.
func (k Keeper) GetBlockHash(ctx sdk.Context, height uint64) (common.Hash, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetBlockHashKey(height))
	if len(bz) != common.HashLength {
		return common.Hash{}, false
	}
	return common.BytesToHash(bz), true
}

// SetBlockHash records a block hash into the retention window.
func (k Keeper) SetBlockHash(ctx sdk.Context, height uint64, hash common.Hash) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetBlockHashKey(height), hash.Bytes())
}

// PruneBlockHashes drops hashes that fell out of the retention window.
func (k Keeper) PruneBlockHashes(ctx sdk.Context, currentHeight uint64) {
	if currentHeight <= BlockHashRetention {
		return
	}
	horizon := currentHeight - BlockHashRetention

	store := ctx.KVStore(k.storeKey)
	hashStore := prefix.NewStore(store, types.KeyBlockHashes)
	iterator := hashStore.Iterator(nil, types.IDToBytes(horizon))
	defer iterator.Close()

	var stale [][]byte
	for ; iterator.Valid(); iterator.Next() {
		stale = append(stale, iterator.Key())
	}
	for _, key := range stale {
		hashStore.Delete(key)
	}
}
