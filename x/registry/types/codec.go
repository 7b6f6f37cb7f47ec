package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/gogo/protobuf/proto"
)

// The hand-rolled message types must satisfy the proto contract sdk.Msg embeds.
var (
	_ proto.Message = &MsgTransmitReport{}
	_ proto.Message = &MsgSetConfig{}
	_ proto.Message = &MsgSetOnchainParams{}
	_ proto.Message = &MsgFundUpkeep{}
	_ proto.Message = &MsgChangeModerator{}
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the registry module codec. Store records and message
	// sign bytes are amino-encoded with it.
	ModuleCdc = amino
)

func init() {
	RegisterLegacyAminoCodec(amino)
}

// RegisterLegacyAminoCodec registers the registry message concrete types on the
// provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgTransmitReport{}, "registry/MsgTransmitReport", nil)
	cdc.RegisterConcrete(&MsgSetConfig{}, "registry/MsgSetConfig", nil)
	cdc.RegisterConcrete(&MsgSetOnchainParams{}, "registry/MsgSetOnchainParams", nil)
	cdc.RegisterConcrete(&MsgFundUpkeep{}, "registry/MsgFundUpkeep", nil)
	cdc.RegisterConcrete(&MsgChangeModerator{}, "registry/MsgChangeModerator", nil)
}
