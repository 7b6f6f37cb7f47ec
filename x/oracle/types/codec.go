package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/gogo/protobuf/proto"
)

// The hand-rolled message types must satisfy the proto contract sdk.Msg embeds.
var (
	_ proto.Message = &MsgRegisterFeedDoc{}
	_ proto.Message = &MsgSubmitOracleData{}
	_ proto.Message = &MsgChangeModerator{}
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the oracle module codec. Store records and message
	// sign bytes are amino-encoded with it.
	ModuleCdc = amino
)

func init() {
	RegisterLegacyAminoCodec(amino)
}

// RegisterLegacyAminoCodec registers the oracle message concrete types on the
// provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterFeedDoc{}, "oracle/MsgRegisterFeedDoc", nil)
	cdc.RegisterConcrete(&MsgSubmitOracleData{}, "oracle/MsgSubmitOracleData", nil)
	cdc.RegisterConcrete(&MsgChangeModerator{}, "oracle/MsgChangeModerator", nil)
}
