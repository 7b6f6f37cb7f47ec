package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

// transmittedUpkeep tracks one batch entry through the pipeline.
type transmittedUpkeep struct {
	upkeep            *types.Upkeep
	wrapped           types.WrappedPerform
	earlyChecksPassed bool
	performSuccess    bool
	gasUsed           uint64
	// gasPayment is the akeep reimbursement for this upkeep's execution plus
	// its share of the batch overhead.
	gasPayment math.Int
	premium    math.Int
}

// TransmitReport runs the full pipeline for one submitted report: decode,
// per-upkeep pre-perform validation, quorum signature verification, metered
// execution, cost accounting and settlement. Per-upkeep ineligibility skips
// that upkeep only; every other failure aborts with no state change.
func (k Keeper) TransmitReport(
	ctx sdk.Context,
	transmitterAddr string,
	reportContext [][]byte,
	rawReport []byte,
	signatures [][]byte,
) (uint64, error) {
	memStore := ctx.KVStore(k.memKey)
	if memStore.Has(types.KeyPerformLock) {
		return 0, errorsmod.Wrap(types.ErrReentrantCall, "transmit re-entered from a perform")
	}
	memStore.Set(types.KeyPerformLock, []byte{1})
	defer memStore.Delete(types.KeyPerformLock)

	transmitter, err := k.GetTransmitter(ctx, transmitterAddr)
	if err != nil {
		return 0, err
	}
	if !transmitter.Active {
		return 0, errorsmod.Wrapf(types.ErrOnlyActiveTransmitters, "%s", transmitterAddr)
	}

	hot := k.GetHotConfig(ctx)
	params := k.GetOnchainParams(ctx)

	report, err := types.DecodeReport(rawReport)
	if err != nil {
		return 0, err
	}
	if err := report.ValidatePerformSizes(params.MaxPerformDataSize); err != nil {
		return 0, err
	}

	// Load every referenced upkeep; an unknown id is malformed input, not a
	// per-upkeep skip. Mixing security modes within one batch is rejected.
	batch := make([]*transmittedUpkeep, len(report.UpkeepIds))
	for i, id := range report.UpkeepIds {
		upkeep, err := k.GetUpkeep(ctx, id)
		if err != nil {
			return 0, errorsmod.Wrapf(types.ErrInvalidReport, "unknown upkeep %d", id)
		}
		batch[i] = &transmittedUpkeep{upkeep: upkeep, wrapped: report.WrappedPerformDatas[i]}
	}
	skipSigVerification := batch[0].upkeep.SkipSigVerification
	for _, entry := range batch {
		if entry.upkeep.SkipSigVerification != skipSigVerification {
			return 0, errorsmod.Wrap(types.ErrInvalidReport, "mixed signature modes in one batch")
		}
	}

	gasPrice, keepPrice := k.getFeedPrices(ctx, hot, params)

	height := uint64(ctx.BlockHeight())
	numPassing := uint64(0)
	for _, entry := range batch {
		if k.prePerformChecks(ctx, entry, height, skipSigVerification, hot, params, gasPrice, keepPrice) {
			entry.earlyChecksPassed = true
			numPassing++
		}
	}
	if numPassing == 0 {
		// Nothing to settle, no reimbursement owed.
		return 0, errorsmod.Wrap(types.ErrStaleReport, "no upkeep in the batch is eligible")
	}

	var signerIndices []uint32
	if !skipSigVerification {
		signerIndices, err = k.verifySignatures(ctx, hot, reportContext, rawReport, signatures)
		if err != nil {
			return 0, err
		}
	}

	for _, entry := range batch {
		if !entry.earlyChecksPassed {
			continue
		}
		result, err := k.performUpkeep(ctx, entry.upkeep, entry.wrapped.PerformData)
		if err != nil {
			return 0, err
		}
		entry.performSuccess = result.success
		entry.gasUsed = result.gasUsed
	}

	// Shared batch overhead: fixed verification/bookkeeping gas plus the wire
	// bytes actually charged, divided evenly across the upkeeps that passed
	// pre-checks, clamped to the ceiling already proven affordable by the
	// funding predicate.
	wireBytes := uint64(len(rawReport)) +
		uint64(len(signatures))*types.SignatureLen +
		types.ReportContextLen*32
	overheadKeep, err := gasToKeep(fixedTransmitOverhead(skipSigVerification)+gasPerPayloadByte*wireBytes, gasPrice, keepPrice)
	if err != nil {
		return 0, err
	}
	overheadShare := overheadKeep.Quo(math.NewInt(int64(numPassing)))
	maxShare, err := gasToKeep(maxOverheadGas(skipSigVerification, params), gasPrice, keepPrice)
	if err != nil {
		return 0, err
	}
	if overheadShare.GT(maxShare) {
		overheadShare = maxShare
	}

	// Compute every debit and credit before applying any of them.
	totalReimbursement := math.ZeroInt()
	totalPremium := math.ZeroInt()
	for _, entry := range batch {
		if !entry.earlyChecksPassed {
			continue
		}
		execPayment, err := gasToKeep(entry.gasUsed, gasPrice, keepPrice)
		if err != nil {
			return 0, err
		}
		entry.gasPayment = execPayment.Add(overheadShare)
		entry.premium = premiumFor(entry.gasPayment, hot)

		debit := entry.gasPayment.Add(entry.premium)
		if entry.upkeep.Balance.LT(debit) {
			// The funding predicate guarantees this cannot happen; reaching it
			// means the pessimistic ceiling was unsound.
			return 0, errorsmod.Wrapf(types.ErrInsufficientFunds,
				"upkeep %d owes %s with balance %s", entry.upkeep.Id, debit, entry.upkeep.Balance)
		}

		totalReimbursement = totalReimbursement.Add(entry.gasPayment)
		totalPremium = totalPremium.Add(entry.premium)
	}

	// Apply phase: debit upkeeps and record the perform.
	for _, entry := range batch {
		if !entry.earlyChecksPassed {
			continue
		}
		debit := entry.gasPayment.Add(entry.premium)
		entry.upkeep.Balance = entry.upkeep.Balance.Sub(debit)
		entry.upkeep.AmountSpent = entry.upkeep.AmountSpent.Add(debit)
		entry.upkeep.LastPerformBlockNumber = height
		k.SetUpkeep(ctx, *entry.upkeep)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeUpkeepPerformed,
				sdk.NewAttribute(types.AttributeKeyUpkeepId, fmt.Sprintf("%d", entry.upkeep.Id)),
				sdk.NewAttribute(types.AttributeKeySuccess, fmt.Sprintf("%t", entry.performSuccess)),
				sdk.NewAttribute(types.AttributeKeyGasUsed, fmt.Sprintf("%d", entry.gasUsed)),
				sdk.NewAttribute(types.AttributeKeyPayment, debit.String()),
				sdk.NewAttribute(types.AttributeKeyCheckBlock, fmt.Sprintf("%d", entry.wrapped.CheckBlockNumber)),
			),
		)
	}

	k.settleOperatorCredits(ctx, transmitterAddr, skipSigVerification, signerIndices, totalReimbursement, totalPremium)

	k.Logger(ctx).Info("report transmitted",
		"transmitter", transmitterAddr,
		"batch", len(batch),
		"performed", numPassing,
		"reimbursement", totalReimbursement.String(),
		"premium", totalPremium.String(),
	)

	return numPassing, nil
}

// prePerformChecks evaluates the four eligibility predicates for one batch
// entry. Each failure defeats that entry alone and emits an informational
// event; the rest of the batch proceeds.
func (k Keeper) prePerformChecks(
	ctx sdk.Context,
	entry *transmittedUpkeep,
	height uint64,
	skipSigVerification bool,
	hot types.HotConfig,
	params types.OnchainParams,
	gasPrice, keepPrice math.Int,
) bool {
	upkeep := entry.upkeep
	idAttr := sdk.NewAttribute(types.AttributeKeyUpkeepId, fmt.Sprintf("%d", upkeep.Id))

	// Staleness: another report already performed this upkeep at or after the
	// checked point.
	if entry.wrapped.CheckBlockNumber <= upkeep.LastPerformBlockNumber {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeStaleUpkeepReport,
			idAttr,
			sdk.NewAttribute(types.AttributeKeyCheckBlock, fmt.Sprintf("%d", entry.wrapped.CheckBlockNumber)),
		))
		return false
	}

	// Reorg: the checked point must still be on the canonical chain. Hashes
	// beyond the retention window are unresolvable and force a skip.
	retained, ok := k.GetBlockHash(ctx, entry.wrapped.CheckBlockNumber)
	if !ok || retained != entry.wrapped.CheckBlockHash {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeReorgedUpkeepReport,
			idAttr,
			sdk.NewAttribute(types.AttributeKeyCheckBlock, fmt.Sprintf("%d", entry.wrapped.CheckBlockNumber)),
		))
		return false
	}

	// Cancellation: a recently cancelled upkeep's in-flight report is skipped
	// once its valid-until marker has passed.
	if upkeep.Cancelled(height) {
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeCancelledUpkeepReport, idAttr))
		return false
	}

	// Funding: the balance must cover the pessimistic ceiling so settlement
	// can never underflow.
	maxPayment, err := maxPaymentForGas(upkeep.ExecuteGas, skipSigVerification, hot, params, gasPrice, keepPrice)
	if err != nil || upkeep.Balance.LT(maxPayment) {
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeInsufficientFundsUpkeep, idAttr))
		return false
	}

	return true
}

// settleOperatorCredits distributes the computed totals: the submitting
// transmitter receives every gas reimbursement, the signing quorum splits the
// premium evenly by quorum index, and division remainders go to the
// transmitter so the ledger closes exactly. In lower-security mode there is
// no signer set and the transmitter keeps the full premium.
func (k Keeper) settleOperatorCredits(
	ctx sdk.Context,
	transmitterAddr string,
	skipSigVerification bool,
	signerIndices []uint32,
	totalReimbursement math.Int,
	totalPremium math.Int,
) {
	transmitterCredit := totalReimbursement

	if skipSigVerification || len(signerIndices) == 0 {
		transmitterCredit = transmitterCredit.Add(totalPremium)
	} else {
		numSigners := math.NewInt(int64(len(signerIndices)))
		perSigner := totalPremium.Quo(numSigners)
		remainder := totalPremium.Sub(perSigner.Mul(numSigners))
		transmitterCredit = transmitterCredit.Add(remainder)

		transmitters := k.GetTransmitterList(ctx)
		for _, index := range signerIndices {
			// Signer i's operator is the transmitter at the same quorum index.
			address := transmitters[index]
			record, err := k.GetTransmitter(ctx, address)
			if err != nil {
				continue
			}
			record.Balance = record.Balance.Add(perSigner)
			k.SetTransmitter(ctx, address, *record)
		}
	}

	record, err := k.GetTransmitter(ctx, transmitterAddr)
	if err != nil {
		return
	}
	record.Balance = record.Balance.Add(transmitterCredit)
	k.SetTransmitter(ctx, transmitterAddr, *record)
}
