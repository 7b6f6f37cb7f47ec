package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keepnet-global/keepnet/x/oracle/types"
)

var _ types.QueryServer = Keeper{}

// FeedDoc queries a feed doc by ID
func (k Keeper) FeedDoc(ctx context.Context, req *types.QueryFeedDocRequest) (*types.QueryFeedDocResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	doc, err := k.GetFeedDoc(sdkCtx, req.Id)
	if err != nil {
		return nil, err
	}
	return &types.QueryFeedDocResponse{
		FeedDoc: *doc,
	}, nil
}

// OracleData queries the latest submitted data for a feed by ID
func (k Keeper) OracleData(ctx context.Context, req *types.QueryOracleDataRequest) (*types.QueryOracleDataResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	data, err := k.GetOracleDataRecord(sdkCtx, req.Id)
	if err != nil {
		return nil, err
	}
	return &types.QueryOracleDataResponse{
		OracleData: *data,
	}, nil
}

// ModeratorAddress queries the moderator address
func (k Keeper) ModeratorAddress(ctx context.Context, req *types.QueryModeratorAddressRequest) (*types.QueryModeratorAddressResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	address := k.GetModeratorAddress(sdkCtx)
	return &types.QueryModeratorAddressResponse{
		ModeratorAddress: address,
	}, nil
}
