package types

import (
	"context"
)

// MsgServer is the server API for the oracle Msg service.
type MsgServer interface {
	RegisterFeedDoc(context.Context, *MsgRegisterFeedDoc) (*MsgRegisterFeedDocResponse, error)
	SubmitOracleData(context.Context, *MsgSubmitOracleData) (*MsgSubmitOracleDataResponse, error)
	ChangeModerator(context.Context, *MsgChangeModerator) (*MsgChangeModeratorResponse, error)
}

// QueryServer is the server API for the oracle Query service.
type QueryServer interface {
	FeedDoc(context.Context, *QueryFeedDocRequest) (*QueryFeedDocResponse, error)
	OracleData(context.Context, *QueryOracleDataRequest) (*QueryOracleDataResponse, error)
	ModeratorAddress(context.Context, *QueryModeratorAddressRequest) (*QueryModeratorAddressResponse, error)
}

// QueryFeedDocRequest is the request type for the Query/FeedDoc RPC method.
type QueryFeedDocRequest struct {
	Id uint64 `json:"id"`
}

func (m *QueryFeedDocRequest) Reset()         { *m = QueryFeedDocRequest{} }
func (m *QueryFeedDocRequest) ProtoMessage()  {}
func (m *QueryFeedDocRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }

// QueryFeedDocResponse is the response type for the Query/FeedDoc RPC method.
type QueryFeedDocResponse struct {
	FeedDoc FeedDoc `json:"feed_doc"`
}

func (m *QueryFeedDocResponse) Reset()         { *m = QueryFeedDocResponse{} }
func (m *QueryFeedDocResponse) ProtoMessage()  {}
func (m *QueryFeedDocResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }

// QueryOracleDataRequest is the request type for the Query/OracleData RPC method.
type QueryOracleDataRequest struct {
	Id uint64 `json:"id"`
}

func (m *QueryOracleDataRequest) Reset()         { *m = QueryOracleDataRequest{} }
func (m *QueryOracleDataRequest) ProtoMessage()  {}
func (m *QueryOracleDataRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }

// QueryOracleDataResponse is the response type for the Query/OracleData RPC method.
type QueryOracleDataResponse struct {
	OracleData OracleData `json:"oracle_data"`
}

func (m *QueryOracleDataResponse) Reset()         { *m = QueryOracleDataResponse{} }
func (m *QueryOracleDataResponse) ProtoMessage()  {}
func (m *QueryOracleDataResponse) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }

// QueryModeratorAddressRequest is the request type for the Query/ModeratorAddress RPC method.
type QueryModeratorAddressRequest struct{}

func (m *QueryModeratorAddressRequest) Reset()         { *m = QueryModeratorAddressRequest{} }
func (m *QueryModeratorAddressRequest) ProtoMessage()  {}
func (m *QueryModeratorAddressRequest) String() string { return string(ModuleCdc.MustMarshalJSON(m)) }

// QueryModeratorAddressResponse is the response type for the Query/ModeratorAddress RPC method.
type QueryModeratorAddressResponse struct {
	ModeratorAddress string `json:"moderator_address"`
}

func (m *QueryModeratorAddressResponse) Reset()        { *m = QueryModeratorAddressResponse{} }
func (m *QueryModeratorAddressResponse) ProtoMessage() {}
func (m *QueryModeratorAddressResponse) String() string {
	return string(ModuleCdc.MustMarshalJSON(m))
}
