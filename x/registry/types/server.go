package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// MsgServer is the server API for the registry Msg service.
type MsgServer interface {
	// Transmit consumes a submitted report plus its signatures, performs every
	// eligible upkeep and settles the accrued cost and premium.
	Transmit(context.Context, *MsgTransmitReport) (*MsgTransmitReportResponse, error)
	// SetConfig replaces the active quorum and recomputes the config digest.
	SetConfig(context.Context, *MsgSetConfig) (*MsgSetConfigResponse, error)
	// SetOnchainParams updates the cold parameter set under the ratchet rules.
	SetOnchainParams(context.Context, *MsgSetOnchainParams) (*MsgSetOnchainParamsResponse, error)
	// FundUpkeep credits an upkeep balance from an external token transfer.
	FundUpkeep(context.Context, *MsgFundUpkeep) (*MsgFundUpkeepResponse, error)
	// ChangeModerator rotates the moderator address.
	ChangeModerator(context.Context, *MsgChangeModerator) (*MsgChangeModeratorResponse, error)
}

// QueryServer is the server API for the registry Query service.
type QueryServer interface {
	Upkeep(context.Context, *QueryUpkeepRequest) (*QueryUpkeepResponse, error)
	Upkeeps(context.Context, *QueryUpkeepsRequest) (*QueryUpkeepsResponse, error)
	Signer(context.Context, *QuerySignerRequest) (*QuerySignerResponse, error)
	Transmitter(context.Context, *QueryTransmitterRequest) (*QueryTransmitterResponse, error)
	State(context.Context, *QueryStateRequest) (*QueryStateResponse, error)
	MaxPaymentForGas(context.Context, *QueryMaxPaymentForGasRequest) (*QueryMaxPaymentForGasResponse, error)
	ModeratorAddress(context.Context, *QueryModeratorAddressRequest) (*QueryModeratorAddressResponse, error)
}

type QueryUpkeepRequest struct {
	Id uint64 `json:"id"`
}

type QueryUpkeepResponse struct {
	Upkeep Upkeep `json:"upkeep"`
}

type QueryUpkeepsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryUpkeepsResponse struct {
	Upkeeps    []Upkeep            `json:"upkeeps"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QuerySignerRequest struct {
	// Address is the signer's 20-byte identity in hex.
	Address string `json:"address"`
}

type QuerySignerResponse struct {
	Signer Signer `json:"signer"`
}

type QueryTransmitterRequest struct {
	Address string `json:"address"`
}

type QueryTransmitterResponse struct {
	Transmitter Transmitter `json:"transmitter"`
}

type QueryStateRequest struct{}

type QueryStateResponse struct {
	State State `json:"state"`
}

type QueryMaxPaymentForGasRequest struct {
	GasLimit            uint64 `json:"gas_limit"`
	SkipSigVerification bool   `json:"skip_sig_verification"`
}

type QueryMaxPaymentForGasResponse struct {
	MaxPayment sdk.Coin `json:"max_payment"`
}

type QueryModeratorAddressRequest struct{}

type QueryModeratorAddressResponse struct {
	ModeratorAddress string `json:"moderator_address"`
}
