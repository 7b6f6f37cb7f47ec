package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	keepnettypes "github.com/keepnet-global/keepnet/types"
	"github.com/keepnet-global/keepnet/x/registry/types"
)

// QueryServer implementation
var _ types.QueryServer = Keeper{}

// Upkeep returns a single upkeep record by id.
func (k Keeper) Upkeep(c context.Context, req *types.QueryUpkeepRequest) (*types.QueryUpkeepResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	upkeep, err := k.GetUpkeep(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	return &types.QueryUpkeepResponse{Upkeep: *upkeep}, nil
}

// Upkeeps returns all known upkeeps page by page.
func (k Keeper) Upkeeps(c context.Context, req *types.QueryUpkeepsRequest) (*types.QueryUpkeepsResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	upkeeps, pageRes, err := k.GetPaginatedUpkeeps(ctx, req.Pagination)
	if err != nil {
		return nil, err
	}

	return &types.QueryUpkeepsResponse{Upkeeps: upkeeps, Pagination: pageRes}, nil
}

// Signer returns a signer record by its 20-byte identity.
func (k Keeper) Signer(c context.Context, req *types.QuerySignerRequest) (*types.QuerySignerResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	if !common.IsHexAddress(req.Address) {
		return nil, errorsmod.Wrapf(types.ErrInvalidConfig, "invalid signer address %s", req.Address)
	}

	signer, err := k.GetSigner(ctx, common.HexToAddress(req.Address))
	if err != nil {
		return nil, err
	}

	return &types.QuerySignerResponse{Signer: *signer}, nil
}

// Transmitter returns a transmitter record by account address.
func (k Keeper) Transmitter(c context.Context, req *types.QueryTransmitterRequest) (*types.QueryTransmitterResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	transmitter, err := k.GetTransmitter(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	return &types.QueryTransmitterResponse{Transmitter: *transmitter}, nil
}

// State returns the aggregate registry state.
func (k Keeper) State(c context.Context, _ *types.QueryStateRequest) (*types.QueryStateResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	hot := k.GetHotConfig(ctx)

	return &types.QueryStateResponse{State: types.State{
		NumUpkeeps:              k.GetUpkeepCount(ctx),
		ConfigCount:             k.GetConfigCount(ctx),
		LatestConfigBlockNumber: k.GetLatestConfigBlock(ctx),
		LatestConfigDigest:      hot.LatestConfigDigest,
		ExpectedBalance:         k.GetExpectedBalance(ctx),
	}}, nil
}

// MaxPaymentForGas returns the pessimistic payment ceiling for a gas limit.
func (k Keeper) MaxPaymentForGas(c context.Context, req *types.QueryMaxPaymentForGasRequest) (*types.QueryMaxPaymentForGasResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	maxPayment, err := k.maxPaymentForGasAtFeeds(ctx, req.GasLimit, req.SkipSigVerification)
	if err != nil {
		return nil, err
	}

	return &types.QueryMaxPaymentForGasResponse{MaxPayment: keepnettypes.NewKeepCoin(maxPayment)}, nil
}

// ModeratorAddress queries the moderator address.
func (k Keeper) ModeratorAddress(c context.Context, _ *types.QueryModeratorAddressRequest) (*types.QueryModeratorAddressResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	address := k.GetModeratorAddress(ctx)

	return &types.QueryModeratorAddressResponse{ModeratorAddress: address}, nil
}
