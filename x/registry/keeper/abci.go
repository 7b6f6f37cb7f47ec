package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// BeginBlocker is called at the beginning of every block. It records the
// parent block's hash into the retention window the reorg predicate reads,
// and drops hashes that fell out of the window.
func (k Keeper) BeginBlocker(ctx sdk.Context) {
	header := ctx.BlockHeader()
	height := uint64(ctx.BlockHeight())

	if height > 0 && len(header.LastBlockId.Hash) == common.HashLength {
		k.SetBlockHash(ctx, height-1, common.BytesToHash(header.LastBlockId.Hash))
	}
	k.PruneBlockHashes(ctx, height)
}
