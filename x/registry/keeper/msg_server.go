package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

// MsgServer implementation
var _ types.MsgServer = &Keeper{}

// Transmit implements types.MsgServer.
func (k Keeper) Transmit(goCtx context.Context, msg *types.MsgTransmitReport) (*types.MsgTransmitReportResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	performed, err := k.TransmitReport(ctx, msg.Transmitter, msg.ReportContext, msg.RawReport, msg.Signatures)
	if err != nil {
		return nil, err
	}

	return &types.MsgTransmitReportResponse{UpkeepsPerformed: performed}, nil
}

// SetConfig implements types.MsgServer.
func (k Keeper) SetConfig(goCtx context.Context, msg *types.MsgSetConfig) (*types.MsgSetConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	moderatorAddress := k.GetModeratorAddress(ctx)
	if moderatorAddress != msg.ModeratorAddress {
		return nil, errorsmod.Wrapf(types.ErrWrongModerator, ", expected: %s, got: %s", moderatorAddress, msg.ModeratorAddress)
	}

	digest, err := k.ReplaceQuorum(ctx, msg.Signers, msg.Transmitters, msg.F, msg.OnchainParams, msg.OffchainConfigVersion, msg.OffchainConfig)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConfigSet,
			sdk.NewAttribute(types.AttributeKeyConfigDigest, fmt.Sprintf("%x", digest)),
			sdk.NewAttribute(types.AttributeKeyConfigCount, fmt.Sprintf("%d", k.GetConfigCount(ctx))),
			sdk.NewAttribute(types.AttributeKeyNumSigners, fmt.Sprintf("%d", len(msg.Signers))),
			sdk.NewAttribute(types.AttributeKeyFaultTolerance, fmt.Sprintf("%d", msg.F)),
		),
	)

	return &types.MsgSetConfigResponse{ConfigDigest: digest}, nil
}

// SetOnchainParams implements types.MsgServer.
func (k Keeper) SetOnchainParams(goCtx context.Context, msg *types.MsgSetOnchainParams) (*types.MsgSetOnchainParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	moderatorAddress := k.GetModeratorAddress(ctx)
	if moderatorAddress != msg.ModeratorAddress {
		return nil, errorsmod.Wrapf(types.ErrWrongModerator, ", expected: %s, got: %s", moderatorAddress, msg.ModeratorAddress)
	}

	digest, err := k.UpdateOnchainParams(ctx, msg.Params)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyConfigDigest, fmt.Sprintf("%x", digest)),
			sdk.NewAttribute(types.AttributeKeyConfigCount, fmt.Sprintf("%d", k.GetConfigCount(ctx))),
		),
	)

	return &types.MsgSetOnchainParamsResponse{ConfigDigest: digest}, nil
}

// FundUpkeep implements types.MsgServer.
func (k Keeper) FundUpkeep(goCtx context.Context, msg *types.MsgFundUpkeep) (*types.MsgFundUpkeepResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	upkeep, err := k.GetUpkeep(ctx, msg.Id)
	if err != nil {
		return nil, err
	}
	if upkeep.Cancelled(uint64(ctx.BlockHeight())) {
		return nil, errorsmod.Wrapf(types.ErrUpkeepCancelled, "upkeep %d can no longer be funded", msg.Id)
	}

	from, err := sdk.AccAddressFromBech32(msg.FromAddress)
	if err != nil {
		return nil, err
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, sdk.NewCoins(msg.Amount)); err != nil {
		return nil, err
	}

	upkeep.Balance = upkeep.Balance.Add(msg.Amount.Amount)
	k.SetUpkeep(ctx, *upkeep)
	k.SetExpectedBalance(ctx, k.GetExpectedBalance(ctx).Add(msg.Amount.Amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpkeepFunded,
			sdk.NewAttribute(types.AttributeKeyUpkeepId, fmt.Sprintf("%d", msg.Id)),
			sdk.NewAttribute(types.AttributeKeyFrom, msg.FromAddress),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		),
	)

	return &types.MsgFundUpkeepResponse{}, nil
}

// ChangeModerator implements types.MsgServer.
func (k Keeper) ChangeModerator(goCtx context.Context, msg *types.MsgChangeModerator) (*types.MsgChangeModeratorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	moderatorAddress := k.GetModeratorAddress(ctx)
	if msg.ModeratorAddress != moderatorAddress {
		return nil, errorsmod.Wrapf(types.ErrWrongModerator, ", expected: %s, got: %s", moderatorAddress, msg.ModeratorAddress)
	}

	k.SetModeratorAddress(ctx, msg.NewModeratorAddress)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChangeModerator,
			sdk.NewAttribute(types.AttributeKeyModerator, msg.ModeratorAddress),
			sdk.NewAttribute(types.AttributeKeyAddress, msg.NewModeratorAddress),
		),
	)

	return &types.MsgChangeModeratorResponse{}, nil
}
