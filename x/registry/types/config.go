package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// ConfigDigestPrefix is stamped into the two leading bytes of every config
// digest so digests from other digest schemes can never collide with ours.
var ConfigDigestPrefix = [2]byte{0x00, 0x01}

// HotConfig carries the fields read on every transmission. It is written only
// together with OnchainParams and a fresh digest; a transmission can never
// observe a torn mix of two configuration generations.
type HotConfig struct {
	// F is the fault tolerance threshold: reports need exactly F+1 signatures.
	F                  uint32 `json:"f"`
	LatestConfigDigest []byte `json:"latest_config_digest"`
	// PaymentPremiumPPB is the premium rate in parts-per-billion of the gas
	// reimbursement value.
	PaymentPremiumPPB uint32 `json:"payment_premium_ppb"`
	// FlatFeeMicroKeep is a flat premium fee in micro-keep (1e12 akeep) units.
	FlatFeeMicroKeep uint32 `json:"flat_fee_micro_keep"`
	// StalenessSeconds bounds feed age before the fallback price applies.
	StalenessSeconds int64 `json:"staleness_seconds"`
}

// OnchainParams carries the rarely-changed configuration: size/gas ceilings,
// fallback prices and feed bindings.
type OnchainParams struct {
	MaxPerformGas      uint64      `json:"max_perform_gas"`
	MaxCheckDataSize   uint32      `json:"max_check_data_size"`
	MaxPerformDataSize uint32      `json:"max_perform_data_size"`
	FallbackGasPrice   sdkmath.Int `json:"fallback_gas_price"`
	FallbackKeepPrice  sdkmath.Int `json:"fallback_keep_price"`
	GasFeedId          uint64      `json:"gas_feed_id"`
	KeepFeedId         uint64      `json:"keep_feed_id"`
}

// OffchainConfig records the opaque off-chain coordination blob installed
// alongside a quorum. It is kept so later digest recomputations carry the same
// preimage fields the quorum was installed with.
type OffchainConfig struct {
	Version uint64 `json:"version"`
	Config  []byte `json:"config"`
}

// Validate performs basic validation on hot configuration fields.
func (c HotConfig) Validate() error {
	if c.F == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "f must be positive")
	}
	return nil
}

// Validate performs basic validation on onchain parameters.
func (p OnchainParams) Validate() error {
	if p.MaxPerformGas == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "max perform gas cannot be zero")
	}
	if p.FallbackGasPrice.IsNil() || !p.FallbackGasPrice.IsPositive() {
		return errorsmod.Wrap(ErrInvalidConfig, "fallback gas price must be positive")
	}
	if p.FallbackKeepPrice.IsNil() || !p.FallbackKeepPrice.IsPositive() {
		return errorsmod.Wrap(ErrInvalidConfig, "fallback keep price must be positive")
	}
	return nil
}

// ValidateRatchet enforces the may-only-increase rules against the previously
// stored parameter set.
func (p OnchainParams) ValidateRatchet(prev OnchainParams) error {
	if p.MaxPerformGas < prev.MaxPerformGas {
		return errorsmod.Wrapf(ErrGasLimitCanOnlyIncrease, "%d < %d", p.MaxPerformGas, prev.MaxPerformGas)
	}
	if p.MaxCheckDataSize < prev.MaxCheckDataSize {
		return errorsmod.Wrapf(ErrCheckDataSizeCanOnlyIncrease, "%d < %d", p.MaxCheckDataSize, prev.MaxCheckDataSize)
	}
	if p.MaxPerformDataSize < prev.MaxPerformDataSize {
		return errorsmod.Wrapf(ErrPerformDataSizeCanOnlyIncrease, "%d < %d", p.MaxPerformDataSize, prev.MaxPerformDataSize)
	}
	return nil
}

// configDigestInput is the canonical preimage of the configuration digest. It
// binds the chain, the registry identity, the quorum and the parameter set, so
// any change to any of them invalidates all previously signed reports.
type configDigestInput struct {
	ChainId               string
	Registry              string
	ConfigCount           uint64
	Signers               []common.Address
	Transmitters          []string
	F                     uint32
	OnchainParams         []byte
	OffchainConfigVersion uint64
	OffchainConfig        []byte
}

// ConfigDigest computes the content address of a configuration generation.
func ConfigDigest(
	chainId string,
	registry string,
	configCount uint64,
	signers []common.Address,
	transmitters []string,
	f uint32,
	onchainParams OnchainParams,
	offchainConfigVersion uint64,
	offchainConfig []byte,
) ([]byte, error) {
	paramsBytes, err := ModuleCdc.MarshalJSON(&onchainParams)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "unable to encode onchain params: %s", err)
	}
	paramsBytes = sdk.MustSortJSON(paramsBytes)

	preimage, err := rlp.EncodeToBytes(&configDigestInput{
		ChainId:               chainId,
		Registry:              registry,
		ConfigCount:           configCount,
		Signers:               signers,
		Transmitters:          transmitters,
		F:                     f,
		OnchainParams:         paramsBytes,
		OffchainConfigVersion: offchainConfigVersion,
		OffchainConfig:        offchainConfig,
	})
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidConfig, "unable to encode digest preimage: %s", err)
	}

	digest := crypto.Keccak256(preimage)
	digest[0] = ConfigDigestPrefix[0]
	digest[1] = ConfigDigestPrefix[1]
	return digest, nil
}
