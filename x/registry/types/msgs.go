package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/ethereum/go-ethereum/common"
)

// registry message types
const (
	TypeMsgTransmitReport   = ModuleName + "_transmit_report"
	TypeMsgSetConfig        = ModuleName + "_set_config"
	TypeMsgSetOnchainParams = ModuleName + "_set_onchain_params"
	TypeMsgFundUpkeep       = ModuleName + "_fund_upkeep"
	TypeMsgChangeModerator  = ModuleName + "_change_moderator_address"
)

var _ sdk.Msg = &MsgTransmitReport{}

// MsgTransmitReport is the sole entry point of the settlement core: an encoded
// batch of upkeep executions plus the quorum's recovery material.
type MsgTransmitReport struct {
	Transmitter   string   `json:"transmitter"`
	ReportContext [][]byte `json:"report_context"`
	RawReport     []byte   `json:"raw_report"`
	Signatures    [][]byte `json:"signatures"`
}

// NewMsgTransmitReport - construct a msg to transmit a signed report.
func NewMsgTransmitReport(transmitter sdk.AccAddress, reportContext [][]byte, rawReport []byte, signatures [][]byte) *MsgTransmitReport {
	return &MsgTransmitReport{
		Transmitter:   transmitter.String(),
		ReportContext: reportContext,
		RawReport:     rawReport,
		Signatures:    signatures,
	}
}

func (msg *MsgTransmitReport) Reset()         { *msg = MsgTransmitReport{} }
func (msg *MsgTransmitReport) ProtoMessage()  {}
func (msg *MsgTransmitReport) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route Implements Msg.
func (msg MsgTransmitReport) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgTransmitReport) Type() string { return TypeMsgTransmitReport }

// ValidateBasic Implements Msg.
func (msg MsgTransmitReport) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Transmitter); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " transmitter address, %s", err)
	}
	if len(msg.RawReport) == 0 {
		return errorsmod.Wrap(ErrInvalidReport, "empty raw report")
	}
	if err := ValidateReportContext(msg.ReportContext); err != nil {
		return err
	}
	for i, sig := range msg.Signatures {
		if len(sig) != SignatureLen {
			return errorsmod.Wrapf(ErrInvalidReport, "signature %d has %d bytes, want %d", i, len(sig), SignatureLen)
		}
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgTransmitReport) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgTransmitReport) GetSigners() []sdk.AccAddress {
	authAddress, _ := sdk.AccAddressFromBech32(msg.Transmitter)
	return []sdk.AccAddress{authAddress}
}

// MsgTransmitReportResponse is the Msg/TransmitReport response type.
type MsgTransmitReportResponse struct {
	// UpkeepsPerformed counts the batch entries that settled.
	UpkeepsPerformed uint64 `json:"upkeeps_performed"`
}

func (msg *MsgTransmitReportResponse) Reset()         { *msg = MsgTransmitReportResponse{} }
func (msg *MsgTransmitReportResponse) ProtoMessage()  {}
func (msg *MsgTransmitReportResponse) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

var _ sdk.Msg = &MsgSetConfig{}

// MsgSetConfig replaces the active quorum wholesale and recomputes the
// configuration digest.
type MsgSetConfig struct {
	ModeratorAddress      string        `json:"moderator_address"`
	Signers               []string      `json:"signers"`
	Transmitters          []string      `json:"transmitters"`
	F                     uint32        `json:"f"`
	OnchainParams         OnchainParams `json:"onchain_params"`
	OffchainConfigVersion uint64        `json:"offchain_config_version"`
	OffchainConfig        []byte        `json:"offchain_config"`
}

// NewMsgSetConfig - construct a msg to replace the active quorum.
func NewMsgSetConfig(
	moderator sdk.AccAddress,
	signers []string,
	transmitters []string,
	f uint32,
	params OnchainParams,
	offchainConfigVersion uint64,
	offchainConfig []byte,
) *MsgSetConfig {
	return &MsgSetConfig{
		ModeratorAddress:      moderator.String(),
		Signers:               signers,
		Transmitters:          transmitters,
		F:                     f,
		OnchainParams:         params,
		OffchainConfigVersion: offchainConfigVersion,
		OffchainConfig:        offchainConfig,
	}
}

func (msg *MsgSetConfig) Reset()         { *msg = MsgSetConfig{} }
func (msg *MsgSetConfig) ProtoMessage()  {}
func (msg *MsgSetConfig) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route Implements Msg.
func (msg MsgSetConfig) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgSetConfig) Type() string { return TypeMsgSetConfig }

// ValidateBasic Implements Msg.
func (msg MsgSetConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " moderator address, %s", err)
	}
	if msg.F == 0 {
		return errorsmod.Wrap(ErrInvalidConfig, "f must be positive")
	}
	if len(msg.Signers) > MaxNumOracles {
		return errorsmod.Wrapf(ErrInvalidConfig, "too many signers: %d > %d", len(msg.Signers), MaxNumOracles)
	}
	if len(msg.Signers) != len(msg.Transmitters) {
		return errorsmod.Wrapf(ErrInvalidConfig,
			"%d signers but %d transmitters", len(msg.Signers), len(msg.Transmitters))
	}
	if len(msg.Signers) < 3*int(msg.F)+1 {
		return errorsmod.Wrapf(ErrInvalidConfig, "quorum of %d cannot tolerate f=%d faults", len(msg.Signers), msg.F)
	}

	seenSigners := make(map[common.Address]bool, len(msg.Signers))
	for _, signer := range msg.Signers {
		if !common.IsHexAddress(signer) {
			return errorsmod.Wrapf(ErrInvalidConfig, "invalid signer address %s", signer)
		}
		addr := common.HexToAddress(signer)
		if seenSigners[addr] {
			return errorsmod.Wrapf(ErrInvalidConfig, "repeated signer address %s", signer)
		}
		seenSigners[addr] = true
	}

	seenTransmitters := make(map[string]bool, len(msg.Transmitters))
	for _, transmitter := range msg.Transmitters {
		if _, err := sdk.AccAddressFromBech32(transmitter); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " transmitter address, %s", err)
		}
		if seenTransmitters[transmitter] {
			return errorsmod.Wrapf(ErrInvalidConfig, "repeated transmitter address %s", transmitter)
		}
		seenTransmitters[transmitter] = true
	}

	return msg.OnchainParams.Validate()
}

// GetSignBytes Implements Msg.
func (msg MsgSetConfig) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgSetConfig) GetSigners() []sdk.AccAddress {
	authAddress, _ := sdk.AccAddressFromBech32(msg.ModeratorAddress)
	return []sdk.AccAddress{authAddress}
}

// MsgSetConfigResponse is the Msg/SetConfig response type.
type MsgSetConfigResponse struct {
	ConfigDigest []byte `json:"config_digest"`
}

func (msg *MsgSetConfigResponse) Reset()         { *msg = MsgSetConfigResponse{} }
func (msg *MsgSetConfigResponse) ProtoMessage()  {}
func (msg *MsgSetConfigResponse) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

var _ sdk.Msg = &MsgSetOnchainParams{}

// MsgSetOnchainParams updates the cold parameter set without rotating the
// quorum. Ceiling parameters may only increase.
type MsgSetOnchainParams struct {
	ModeratorAddress string        `json:"moderator_address"`
	Params           OnchainParams `json:"params"`
}

// NewMsgSetOnchainParams - construct a msg to update onchain parameters.
func NewMsgSetOnchainParams(moderator sdk.AccAddress, params OnchainParams) *MsgSetOnchainParams {
	return &MsgSetOnchainParams{ModeratorAddress: moderator.String(), Params: params}
}

func (msg *MsgSetOnchainParams) Reset()         { *msg = MsgSetOnchainParams{} }
func (msg *MsgSetOnchainParams) ProtoMessage()  {}
func (msg *MsgSetOnchainParams) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route Implements Msg.
func (msg MsgSetOnchainParams) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgSetOnchainParams) Type() string { return TypeMsgSetOnchainParams }

// ValidateBasic Implements Msg.
func (msg MsgSetOnchainParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " moderator address, %s", err)
	}
	return msg.Params.Validate()
}

// GetSignBytes Implements Msg.
func (msg MsgSetOnchainParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgSetOnchainParams) GetSigners() []sdk.AccAddress {
	authAddress, _ := sdk.AccAddressFromBech32(msg.ModeratorAddress)
	return []sdk.AccAddress{authAddress}
}

// MsgSetOnchainParamsResponse is the Msg/SetOnchainParams response type.
type MsgSetOnchainParamsResponse struct {
	ConfigDigest []byte `json:"config_digest"`
}

func (msg *MsgSetOnchainParamsResponse) Reset()        { *msg = MsgSetOnchainParamsResponse{} }
func (msg *MsgSetOnchainParamsResponse) ProtoMessage() {}
func (msg *MsgSetOnchainParamsResponse) String() string {
	return string(ModuleCdc.MustMarshalJSON(msg))
}

var _ sdk.Msg = &MsgFundUpkeep{}

// MsgFundUpkeep credits an upkeep's prepaid balance.
type MsgFundUpkeep struct {
	FromAddress string   `json:"from_address"`
	Id          uint64   `json:"id"`
	Amount      sdk.Coin `json:"amount"`
}

// NewMsgFundUpkeep - construct a msg to fund an upkeep.
func NewMsgFundUpkeep(from sdk.AccAddress, id uint64, amount sdk.Coin) *MsgFundUpkeep {
	return &MsgFundUpkeep{FromAddress: from.String(), Id: id, Amount: amount}
}

func (msg *MsgFundUpkeep) Reset()         { *msg = MsgFundUpkeep{} }
func (msg *MsgFundUpkeep) ProtoMessage()  {}
func (msg *MsgFundUpkeep) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route Implements Msg.
func (msg MsgFundUpkeep) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgFundUpkeep) Type() string { return TypeMsgFundUpkeep }

// ValidateBasic Implements Msg.
func (msg MsgFundUpkeep) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.FromAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " sender address, %s", err)
	}
	if msg.Id == 0 {
		return errorsmod.Wrap(ErrUpkeepNotFound, "zero id not allowed")
	}
	if !msg.Amount.IsValid() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " %s", msg.Amount.String())
	}
	if !msg.Amount.IsPositive() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " %s is not positive", msg.Amount.String())
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgFundUpkeep) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgFundUpkeep) GetSigners() []sdk.AccAddress {
	authAddress, _ := sdk.AccAddressFromBech32(msg.FromAddress)
	return []sdk.AccAddress{authAddress}
}

// MsgFundUpkeepResponse is the Msg/FundUpkeep response type.
type MsgFundUpkeepResponse struct{}

func (msg *MsgFundUpkeepResponse) Reset()         { *msg = MsgFundUpkeepResponse{} }
func (msg *MsgFundUpkeepResponse) ProtoMessage()  {}
func (msg *MsgFundUpkeepResponse) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

var _ sdk.Msg = &MsgChangeModerator{}

// MsgChangeModerator rotates the moderator address.
type MsgChangeModerator struct {
	ModeratorAddress    string `json:"moderator_address"`
	NewModeratorAddress string `json:"new_moderator_address"`
}

// NewMsgChangeModerator - construct arbitrary change moderator address msg.
func NewMsgChangeModerator(modAddress, newModeratorAddress sdk.AccAddress) *MsgChangeModerator {
	return &MsgChangeModerator{ModeratorAddress: modAddress.String(), NewModeratorAddress: newModeratorAddress.String()}
}

func (msg *MsgChangeModerator) Reset()         { *msg = MsgChangeModerator{} }
func (msg *MsgChangeModerator) ProtoMessage()  {}
func (msg *MsgChangeModerator) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route Implements Msg.
func (msg MsgChangeModerator) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgChangeModerator) Type() string { return TypeMsgChangeModerator }

// ValidateBasic Implements Msg.
func (msg MsgChangeModerator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " moderator address, %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " new moderator address, %s", err)
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgChangeModerator) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgChangeModerator) GetSigners() []sdk.AccAddress {
	authAddress, _ := sdk.AccAddressFromBech32(msg.ModeratorAddress)
	return []sdk.AccAddress{authAddress}
}

// MsgChangeModeratorResponse is the Msg/ChangeModerator response type.
type MsgChangeModeratorResponse struct{}

func (msg *MsgChangeModeratorResponse) Reset()        { *msg = MsgChangeModeratorResponse{} }
func (msg *MsgChangeModeratorResponse) ProtoMessage() {}
func (msg *MsgChangeModeratorResponse) String() string {
	return string(ModuleCdc.MustMarshalJSON(msg))
}
