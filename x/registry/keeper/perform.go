package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

// performResult is what the executor hands back to the settlement phase. A
// failed perform still settles the gas it consumed.
type performResult struct {
	success bool
	gasUsed uint64
}

// performUpkeep dispatches one upkeep's target under a hard gas ceiling equal
// to the upkeep's configured execute gas. It never returns an error for the
// target's own failure; an error return means the whole transmission is
// under-provisioned and must abort.
func (k Keeper) performUpkeep(ctx sdk.Context, upkeep *types.Upkeep, performData []byte) (performResult, error) {
	// Reserve the cushion first so the dispatch itself cannot fail in a way
	// indistinguishable from the target's own logic. If what remains after
	// the cushion cannot cover the requested limit, the transmitter
	// under-provisioned the whole transaction.
	remaining := ctx.GasMeter().GasRemaining()
	if remaining < performGasCushion || remaining-performGasCushion < upkeep.ExecuteGas {
		return performResult{}, errorsmod.Wrapf(types.ErrInsufficientGasForPerform,
			"%d gas remaining, upkeep %d needs %d plus cushion", remaining, upkeep.Id, upkeep.ExecuteGas)
	}

	target, ok := k.GetTarget(upkeep.Target)
	if !ok {
		// A vanished target is a failed perform, not a systemic failure.
		return performResult{success: false, gasUsed: 0}, nil
	}

	cacheCtx, write := ctx.CacheContext()
	gasMeter := sdk.NewGasMeter(upkeep.ExecuteGas)
	cacheCtx = cacheCtx.WithGasMeter(gasMeter)

	success := true
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, isOutOfGas := r.(sdk.ErrorOutOfGas); isOutOfGas {
					success = false
					return
				}
				panic(r)
			}
		}()
		if err := target.PerformUpkeep(cacheCtx, upkeep.Id, performData); err != nil {
			success = false
		}
	}()

	// The sub-meter records the full amount of the call that tripped it, so
	// consumed gas can overshoot the limit. Billing is capped at the ceiling
	// the funding predicate proved affordable.
	gasUsed := gasMeter.GasConsumed()
	if gasUsed > upkeep.ExecuteGas {
		gasUsed = upkeep.ExecuteGas
	}
	if success {
		write()
	}

	// Charge the metered execution against the transmission's own meter; the
	// sub-meter only enforced the per-upkeep ceiling.
	ctx.GasMeter().ConsumeGas(gasUsed, "registry upkeep perform")

	return performResult{success: success, gasUsed: gasUsed}, nil
}
