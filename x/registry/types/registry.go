package types

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UpkeepMaxValidBlocknumber is the valid-until marker carried by active upkeeps.
// Cancellation lowers it to a near-future height so in-flight reports can still land;
// once the chain passes the marker the upkeep is permanently invalid.
const UpkeepMaxValidBlocknumber = uint64(math.MaxUint64)

// MaxNumOracles bounds the quorum size. Signer indices are used as bit
// positions of a uint64 duplicate mask, so this must stay below 64.
const MaxNumOracles = 31

// Upkeep is a registered recurring job: monitored off-chain, performed on-chain
// through the transmit pipeline, paid for from its own prepaid balance.
type Upkeep struct {
	Id                     uint64      `json:"id"`
	Target                 string      `json:"target"`
	ExecuteGas             uint64      `json:"execute_gas"`
	Balance                sdkmath.Int `json:"balance"`
	AmountSpent            sdkmath.Int `json:"amount_spent"`
	MaxValidBlocknumber    uint64      `json:"max_valid_blocknumber"`
	LastPerformBlockNumber uint64      `json:"last_perform_block_number"`
	Paused                 bool        `json:"paused"`
	// SkipSigVerification marks the lower-security mode: reports for this upkeep
	// are accepted without quorum signatures, at a smaller overhead ceiling.
	SkipSigVerification bool   `json:"skip_sig_verification"`
	CheckData           []byte `json:"check_data"`
	Admin               string `json:"admin"`
}

// Signer is an operator identity authorized to co-sign reports, keyed by its
// 20-byte recovery address. Replaced wholesale on every quorum rotation.
type Signer struct {
	Active bool   `json:"active"`
	Index  uint32 `json:"index"`
}

// Transmitter is an operator identity authorized to submit reports. Its accrued
// balance (reimbursement + premium) survives quorum rotation; only the active
// flag and index are reset.
type Transmitter struct {
	Active  bool        `json:"active"`
	Index   uint32      `json:"index"`
	Balance sdkmath.Int `json:"balance"`
}

// State is the aggregate registry state exposed to off-chain monitoring.
type State struct {
	NumUpkeeps              uint64 `json:"num_upkeeps"`
	ConfigCount             uint64 `json:"config_count"`
	LatestConfigBlockNumber uint64 `json:"latest_config_block_number"`
	LatestConfigDigest      []byte `json:"latest_config_digest"`
	// ExpectedBalance is the sum the module account must hold to cover every
	// upkeep and transmitter balance.
	ExpectedBalance sdkmath.Int `json:"expected_balance"`
}

// Validate performs basic validation on an Upkeep record.
func (u Upkeep) Validate() error {
	if u.Id == 0 {
		return errorsmod.Wrap(ErrUpkeepNotFound, "zero id not allowed")
	}
	if _, err := sdk.AccAddressFromBech32(u.Target); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid target address: %s", err)
	}
	if u.ExecuteGas == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "execute gas cannot be zero")
	}
	if u.Balance.IsNil() || u.Balance.IsNegative() {
		return errorsmod.Wrap(ErrInvalidConfig, "balance must be non-negative")
	}
	if u.AmountSpent.IsNil() || u.AmountSpent.IsNegative() {
		return errorsmod.Wrap(ErrInvalidConfig, "amount spent must be non-negative")
	}
	return nil
}

// Cancelled reports whether the upkeep's valid-until marker has passed at the
// given block height.
func (u Upkeep) Cancelled(height uint64) bool {
	return u.MaxValidBlocknumber <= height
}
