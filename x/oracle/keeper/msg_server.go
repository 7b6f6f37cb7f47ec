package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keepnet-global/keepnet/x/oracle/types"
)

// MsgServer implementation
var _ types.MsgServer = &Keeper{}

// RegisterFeedDoc defines a method for registering a new price feed doc
func (k Keeper) RegisterFeedDoc(c context.Context, msg *types.MsgRegisterFeedDoc) (*types.MsgRegisterFeedDocResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	moderator := k.GetModeratorAddress(ctx)
	if msg.ModeratorAddress != moderator {
		return nil, errorsmod.Wrapf(types.ErrWrongModerator, "expected %s, got %s", moderator, msg.ModeratorAddress)
	}

	count := k.GetFeedDocCount(ctx)

	doc := types.FeedDoc{
		Id:          count + 1,
		Name:        msg.FeedDoc.Name,
		Description: msg.FeedDoc.Description,
	}

	k.SetFeedDoc(ctx, doc)
	k.SetFeedDocCount(ctx, count+1)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterFeedDoc,
			sdk.NewAttribute(types.AttributeKeyFeedID, strconv.FormatUint(doc.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyName, doc.Name),
			sdk.NewAttribute(types.AttributeKeyDescription, doc.Description),
		),
	)

	return &types.MsgRegisterFeedDocResponse{
		FeedId: doc.Id,
	}, nil
}

// SubmitOracleData defines a method for submitting a value to a registered feed
func (k Keeper) SubmitOracleData(c context.Context, msg *types.MsgSubmitOracleData) (*types.MsgSubmitOracleDataResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	moderator := k.GetModeratorAddress(ctx)
	if msg.ModeratorAddress != moderator {
		return nil, errorsmod.Wrapf(types.ErrWrongModerator, "expected %s, got %s", moderator, msg.ModeratorAddress)
	}

	if _, err := k.GetFeedDoc(ctx, msg.FeedId); err != nil {
		return nil, err
	}

	data := types.OracleData{
		Id:        msg.FeedId,
		Value:     msg.Value,
		UpdatedAt: ctx.BlockTime(),
		Provider:  msg.ModeratorAddress,
	}
	k.SetOracleData(ctx, data)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitOracleData,
			sdk.NewAttribute(types.AttributeKeyFeedID, strconv.FormatUint(msg.FeedId, 10)),
			sdk.NewAttribute(types.AttributeKeyValue, msg.Value.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, msg.ModeratorAddress),
		),
	)

	return &types.MsgSubmitOracleDataResponse{}, nil
}

// ChangeModerator defines a method for handing the moderator role to a new address
func (k Keeper) ChangeModerator(c context.Context, msg *types.MsgChangeModerator) (*types.MsgChangeModeratorResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	moderator := k.GetModeratorAddress(ctx)
	if msg.ModeratorAddress != moderator {
		return nil, errorsmod.Wrapf(types.ErrWrongModerator, "expected %s, got %s", moderator, msg.ModeratorAddress)
	}

	k.SetModeratorAddress(ctx, msg.NewModeratorAddress)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChangeModerator,
			sdk.NewAttribute(types.AttributeKeyModerator, msg.NewModeratorAddress),
		),
	)

	return &types.MsgChangeModeratorResponse{}, nil
}
