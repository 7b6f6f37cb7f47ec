package keeper

import (
	"math/big"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

func TestGasToKeep(t *testing.T) {
	// At a gas price of 1 native-wei and a keep price of 1e18 native-wei per
	// keep, one gas costs exactly one akeep.
	payment, err := gasToKeep(100_000, math.NewInt(1), keepUnit)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100_000), payment)

	// Doubling the gas price doubles the payment; doubling the keep price
	// halves it.
	payment, err = gasToKeep(100_000, math.NewInt(2), keepUnit)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200_000), payment)

	payment, err = gasToKeep(100_000, math.NewInt(1), keepUnit.MulRaw(2))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50_000), payment)

	_, err = gasToKeep(100_000, math.NewInt(1), math.ZeroInt())
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestCheckedIntRejectsOutOfRange(t *testing.T) {
	value, err := checkedInt(big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(42), value)

	_, err = checkedInt(big.NewInt(-1))
	assert.ErrorIs(t, err, types.ErrInsufficientFunds)

	huge := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = checkedInt(huge)
	assert.ErrorIs(t, err, types.ErrInsufficientFunds)
}

func TestPremiumFor(t *testing.T) {
	hot := types.HotConfig{PaymentPremiumPPB: 250_000_000} // 25%

	premium := premiumFor(math.NewInt(1_000_000), hot)
	assert.Equal(t, math.NewInt(250_000), premium)

	hot.FlatFeeMicroKeep = 3
	premium = premiumFor(math.NewInt(1_000_000), hot)
	assert.Equal(t, math.NewInt(250_000).Add(microKeep.MulRaw(3)), premium)
}

func TestMaxOverheadGasByMode(t *testing.T) {
	params := testParams()

	signed := maxOverheadGas(false, params)
	lowerSecurity := maxOverheadGas(true, params)

	expectedBytes := uint64(params.MaxPerformDataSize) + maxReportEnvelopeBytes
	assert.Equal(t, uint64(transmitGasOverhead)+gasPerPayloadByte*expectedBytes, signed)
	assert.Equal(t, uint64(transmitGasOverheadNoSig)+gasPerPayloadByte*expectedBytes, lowerSecurity)
	assert.Less(t, lowerSecurity, signed)
}

func TestMaxPaymentForGasCoversExecutionOverheadAndPremium(t *testing.T) {
	hot := types.HotConfig{PaymentPremiumPPB: 250_000_000}
	params := testParams()

	payment, err := maxPaymentForGas(100_000, false, hot, params, math.NewInt(1), keepUnit)
	require.NoError(t, err)

	gas := 100_000 + maxOverheadGas(false, params)
	base := math.NewInt(int64(gas))
	assert.Equal(t, base.Add(premiumFor(base, hot)), payment)
}

func TestGetFeedPricesPrefersFreshObservations(t *testing.T) {
	keeper, ctx, oracle := setupKeeper(t)

	hot := types.HotConfig{StalenessSeconds: 90_000}
	params := testParams()

	oracle.set(params.GasFeedId, math.NewInt(33), ctx.BlockTime().Add(-time.Hour))
	oracle.set(params.KeepFeedId, math.NewInt(44), ctx.BlockTime().Add(-time.Hour))

	gasPrice, keepPrice := keeper.getFeedPrices(ctx, hot, params)
	assert.Equal(t, math.NewInt(33), gasPrice)
	assert.Equal(t, math.NewInt(44), keepPrice)
}

func TestGetFeedPricesFallsBackWhenStaleOrMissing(t *testing.T) {
	keeper, ctx, oracle := setupKeeper(t)

	hot := types.HotConfig{StalenessSeconds: 60}
	params := testParams()

	// The gas feed is too old, the keep feed has no data at all.
	oracle.set(params.GasFeedId, math.NewInt(33), ctx.BlockTime().Add(-time.Hour))

	gasPrice, keepPrice := keeper.getFeedPrices(ctx, hot, params)
	assert.Equal(t, params.FallbackGasPrice, gasPrice)
	assert.Equal(t, params.FallbackKeepPrice, keepPrice)
}

func TestGetFeedPricesFallsBackOnNonPositiveValue(t *testing.T) {
	keeper, ctx, oracle := setupKeeper(t)

	hot := types.HotConfig{StalenessSeconds: 90_000}
	params := testParams()

	oracle.set(params.GasFeedId, math.ZeroInt(), ctx.BlockTime())
	oracle.set(params.KeepFeedId, math.NewInt(-5), ctx.BlockTime())

	gasPrice, keepPrice := keeper.getFeedPrices(ctx, hot, params)
	assert.Equal(t, params.FallbackGasPrice, gasPrice)
	assert.Equal(t, params.FallbackKeepPrice, keepPrice)
}
