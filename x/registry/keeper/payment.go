package keeper

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

// Gas accounting constants. The fixed overheads approximate the verification
// and bookkeeping cost of a transmission outside the perform calls themselves;
// the lower-security mode skips signature verification and gets the smaller
// constant. Tunable policy values, not protocol law.
const (
	// fixed bookkeeping gas of a signed transmission, amortized across the batch
	transmitGasOverhead = 150_000
	// fixed bookkeeping gas of a lower-security transmission
	transmitGasOverheadNoSig = 90_000
	// gas charged per byte of wire payload
	gasPerPayloadByte = 16
	// spare capacity reserved so the perform dispatch itself cannot be starved
	performGasCushion = 5_000
	// envelope bytes assumed per upkeep when bounding payment pessimistically:
	// id, check block point, report context and signature material
	maxReportEnvelopeBytes = 400
)

// ppbDivisor converts parts-per-billion premium rates.
var ppbDivisor = math.NewInt(1_000_000_000)

// microKeep is 1e-6 keep expressed in akeep.
var microKeep = math.NewInt(1_000_000_000_000)

// keepUnit is 1 keep expressed in akeep.
var keepUnit = math.NewInt(1_000_000_000_000_000_000)

// fixedTransmitOverhead returns the mode's fixed gas overhead.
func fixedTransmitOverhead(skipSigVerification bool) uint64 {
	if skipSigVerification {
		return transmitGasOverheadNoSig
	}
	return transmitGasOverhead
}

// checkedInt converts a big.Int into math.Int, failing instead of panicking
// when the value leaves the representable range. Payment math runs on
// adversarial inputs, so overflow is an abort, never a wrap.
func checkedInt(value *big.Int) (math.Int, error) {
	if value.Sign() < 0 || value.BitLen() > 255 {
		return math.Int{}, errorsmod.Wrapf(types.ErrInsufficientFunds, "payment amount out of range: %s", value.String())
	}
	return math.NewIntFromBigInt(value), nil
}

// gasToKeep converts a gas quantity into akeep at the given prices:
// gasAmount * gasPrice native-wei, divided by the native price of one keep.
func gasToKeep(gasAmount uint64, gasPrice, keepPrice math.Int) (math.Int, error) {
	if !keepPrice.IsPositive() {
		return math.Int{}, errorsmod.Wrap(types.ErrInvalidConfig, "keep price must be positive")
	}
	native := new(big.Int).Mul(new(big.Int).SetUint64(gasAmount), gasPrice.BigInt())
	payment := new(big.Int).Div(new(big.Int).Mul(native, keepUnit.BigInt()), keepPrice.BigInt())
	return checkedInt(payment)
}

// premiumFor computes the protocol premium on top of a gas payment: a
// parts-per-billion rate plus a flat fee.
func premiumFor(payment math.Int, hot types.HotConfig) math.Int {
	rated := payment.Mul(math.NewInt(int64(hot.PaymentPremiumPPB))).Quo(ppbDivisor)
	flat := microKeep.Mul(math.NewInt(int64(hot.FlatFeeMicroKeep)))
	return rated.Add(flat)
}

// getFeedPrices reads the gas and keep price feeds. A stale, missing or
// non-positive observation falls back to the configured price; feed failure
// must never halt settlement.
func (k Keeper) getFeedPrices(ctx sdk.Context, hot types.HotConfig, params types.OnchainParams) (gasPrice, keepPrice math.Int) {
	gasPrice = params.FallbackGasPrice
	keepPrice = params.FallbackKeepPrice

	staleness := hot.StalenessSeconds

	if value, updatedAt, err := k.oracleKeeper.GetOracleData(ctx, params.GasFeedId); err == nil {
		if value.IsPositive() && (staleness <= 0 || ctx.BlockTime().Sub(updatedAt).Seconds() <= float64(staleness)) {
			gasPrice = value
		}
	} else {
		k.Logger(ctx).Info("gas feed unavailable, using fallback price", "feed_id", params.GasFeedId, "err", err)
	}

	if value, updatedAt, err := k.oracleKeeper.GetOracleData(ctx, params.KeepFeedId); err == nil {
		if value.IsPositive() && (staleness <= 0 || ctx.BlockTime().Sub(updatedAt).Seconds() <= float64(staleness)) {
			keepPrice = value
		}
	} else {
		k.Logger(ctx).Info("keep feed unavailable, using fallback price", "feed_id", params.KeepFeedId, "err", err)
	}

	return gasPrice, keepPrice
}

// maxOverheadGas bounds the gas overhead a single upkeep can be charged for:
// the mode's fixed overhead plus the per-byte cost of the largest wire
// payload one upkeep may contribute.
func maxOverheadGas(skipSigVerification bool, params types.OnchainParams) uint64 {
	return fixedTransmitOverhead(skipSigVerification) +
		gasPerPayloadByte*(uint64(params.MaxPerformDataSize)+maxReportEnvelopeBytes)
}

// maxPaymentForGas computes the pessimistic ceiling used by the funding
// predicate: what executing gasLimit would cost if the full overhead ceiling
// applied, at current prices.
func maxPaymentForGas(
	gasLimit uint64,
	skipSigVerification bool,
	hot types.HotConfig,
	params types.OnchainParams,
	gasPrice, keepPrice math.Int,
) (math.Int, error) {
	payment, err := gasToKeep(gasLimit+maxOverheadGas(skipSigVerification, params), gasPrice, keepPrice)
	if err != nil {
		return math.Int{}, err
	}
	return payment.Add(premiumFor(payment, hot)), nil
}

// maxPaymentForGasAtFeeds is the live-price variant backing the query server.
func (k Keeper) maxPaymentForGasAtFeeds(ctx sdk.Context, gasLimit uint64, skipSigVerification bool) (math.Int, error) {
	hot := k.GetHotConfig(ctx)
	params := k.GetOnchainParams(ctx)
	gasPrice, keepPrice := k.getFeedPrices(ctx, hot, params)
	return maxPaymentForGas(gasLimit, skipSigVerification, hot, params, gasPrice, keepPrice)
}
