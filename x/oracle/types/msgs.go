package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// oracle message types
const (
	TypeMsgRegisterFeedDoc  = "register_feed_doc"
	TypeMsgSubmitOracleData = "submit_oracle_data"
	TypeMsgChangeModerator  = ModuleName + "_change_moderator_address"
)

var _ sdk.Msg = &MsgRegisterFeedDoc{}

// MsgRegisterFeedDoc registers a new price feed doc. Only the moderator may
// register feeds.
type MsgRegisterFeedDoc struct {
	ModeratorAddress string  `json:"moderator_address"`
	FeedDoc          FeedDoc `json:"feed_doc"`
}

// NewMsgRegisterFeedDoc creates a new MsgRegisterFeedDoc instance
func NewMsgRegisterFeedDoc(moderator sdk.AccAddress, doc FeedDoc) *MsgRegisterFeedDoc {
	return &MsgRegisterFeedDoc{
		ModeratorAddress: moderator.String(),
		FeedDoc:          doc,
	}
}

func (msg *MsgRegisterFeedDoc) Reset()         { *msg = MsgRegisterFeedDoc{} }
func (msg *MsgRegisterFeedDoc) ProtoMessage()  {}
func (msg *MsgRegisterFeedDoc) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route implements the sdk.Msg interface
func (msg MsgRegisterFeedDoc) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRegisterFeedDoc) Type() string { return TypeMsgRegisterFeedDoc }

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRegisterFeedDoc) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid moderator address (%s)", err)
	}
	if err := msg.FeedDoc.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidFeedDoc, err.Error())
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRegisterFeedDoc) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRegisterFeedDoc) GetSigners() []sdk.AccAddress {
	moderator, err := sdk.AccAddressFromBech32(msg.ModeratorAddress)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{moderator}
}

// MsgRegisterFeedDocResponse is the Msg/RegisterFeedDoc response type.
type MsgRegisterFeedDocResponse struct {
	FeedId uint64 `json:"feed_id"`
}

func (msg *MsgRegisterFeedDocResponse) Reset()        { *msg = MsgRegisterFeedDocResponse{} }
func (msg *MsgRegisterFeedDocResponse) ProtoMessage() {}
func (msg *MsgRegisterFeedDocResponse) String() string {
	return string(ModuleCdc.MustMarshalJSON(msg))
}

var _ sdk.Msg = &MsgSubmitOracleData{}

// MsgSubmitOracleData submits a fresh value for a registered feed. Only the
// moderator may submit.
type MsgSubmitOracleData struct {
	ModeratorAddress string   `json:"moderator_address"`
	FeedId           uint64   `json:"feed_id"`
	Value            math.Int `json:"value"`
}

// NewMsgSubmitOracleData creates a new MsgSubmitOracleData instance
func NewMsgSubmitOracleData(moderator sdk.AccAddress, feedId uint64, value math.Int) *MsgSubmitOracleData {
	return &MsgSubmitOracleData{
		ModeratorAddress: moderator.String(),
		FeedId:           feedId,
		Value:            value,
	}
}

func (msg *MsgSubmitOracleData) Reset()         { *msg = MsgSubmitOracleData{} }
func (msg *MsgSubmitOracleData) ProtoMessage()  {}
func (msg *MsgSubmitOracleData) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route implements the sdk.Msg interface
func (msg MsgSubmitOracleData) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSubmitOracleData) Type() string { return TypeMsgSubmitOracleData }

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitOracleData) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid moderator address (%s)", err)
	}
	if msg.Value.IsNil() || !msg.Value.IsPositive() {
		return errorsmod.Wrap(ErrInvalidDataSet, "oracle value must be positive")
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitOracleData) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitOracleData) GetSigners() []sdk.AccAddress {
	moderator, err := sdk.AccAddressFromBech32(msg.ModeratorAddress)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{moderator}
}

// MsgSubmitOracleDataResponse is the Msg/SubmitOracleData response type.
type MsgSubmitOracleDataResponse struct{}

func (msg *MsgSubmitOracleDataResponse) Reset()        { *msg = MsgSubmitOracleDataResponse{} }
func (msg *MsgSubmitOracleDataResponse) ProtoMessage() {}
func (msg *MsgSubmitOracleDataResponse) String() string {
	return string(ModuleCdc.MustMarshalJSON(msg))
}

var _ sdk.Msg = &MsgChangeModerator{}

// MsgChangeModerator hands the oracle moderator role to a new address.
type MsgChangeModerator struct {
	ModeratorAddress    string `json:"moderator_address"`
	NewModeratorAddress string `json:"new_moderator_address"`
}

// NewMsgChangeModerator creates a new MsgChangeModerator instance
func NewMsgChangeModerator(moderator, newModerator sdk.AccAddress) *MsgChangeModerator {
	return &MsgChangeModerator{
		ModeratorAddress:    moderator.String(),
		NewModeratorAddress: newModerator.String(),
	}
}

func (msg *MsgChangeModerator) Reset()         { *msg = MsgChangeModerator{} }
func (msg *MsgChangeModerator) ProtoMessage()  {}
func (msg *MsgChangeModerator) String() string { return string(ModuleCdc.MustMarshalJSON(msg)) }

// Route implements the sdk.Msg interface
func (msg MsgChangeModerator) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgChangeModerator) Type() string { return TypeMsgChangeModerator }

// ValidateBasic implements the sdk.Msg interface
func (msg MsgChangeModerator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid moderator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid new moderator address (%s)", err)
	}
	return nil
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgChangeModerator) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements the sdk.Msg interface
func (msg MsgChangeModerator) GetSigners() []sdk.AccAddress {
	moderator, err := sdk.AccAddressFromBech32(msg.ModeratorAddress)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{moderator}
}

// MsgChangeModeratorResponse is the Msg/ChangeModerator response type.
type MsgChangeModeratorResponse struct{}

func (msg *MsgChangeModeratorResponse) Reset()        { *msg = MsgChangeModeratorResponse{} }
func (msg *MsgChangeModeratorResponse) ProtoMessage() {}
func (msg *MsgChangeModeratorResponse) String() string {
	return string(ModuleCdc.MustMarshalJSON(msg))
}
