package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

// ReplaceQuorum installs a new signer/transmitter set wholesale. Previous
// signer records are deleted; previous transmitter records are only
// deactivated so their accrued balances survive the rotation. The
// configuration counter increases and the digest is recomputed, which
// invalidates every report signed under the outgoing quorum.
func (k Keeper) ReplaceQuorum(
	ctx sdk.Context,
	signers []string,
	transmitters []string,
	f uint32,
	params types.OnchainParams,
	offchainConfigVersion uint64,
	offchainConfig []byte,
) ([]byte, error) {
	k.ClearSigners(ctx)

	for _, address := range k.GetTransmitterList(ctx) {
		transmitter, err := k.GetTransmitter(ctx, address)
		if err != nil {
			continue
		}
		transmitter.Active = false
		transmitter.Index = 0
		k.SetTransmitter(ctx, address, *transmitter)
	}

	signerAddrs := make([]common.Address, len(signers))
	for i, hex := range signers {
		signerAddrs[i] = common.HexToAddress(hex)
		k.SetSigner(ctx, signerAddrs[i], types.Signer{Active: true, Index: uint32(i)})
	}
	k.SetSignerList(ctx, signers)

	for i, address := range transmitters {
		balance := sdk.ZeroInt()
		if previous, err := k.GetTransmitter(ctx, address); err == nil {
			balance = previous.Balance
		}
		k.SetTransmitter(ctx, address, types.Transmitter{Active: true, Index: uint32(i), Balance: balance})
	}
	k.SetTransmitterList(ctx, transmitters)

	hot := k.GetHotConfig(ctx)
	hot.F = f

	configCount := k.GetConfigCount(ctx) + 1
	digest, err := types.ConfigDigest(
		ctx.ChainID(),
		k.accountKeeper.GetModuleAddress(types.ModuleName).String(),
		configCount,
		signerAddrs,
		transmitters,
		f,
		params,
		offchainConfigVersion,
		offchainConfig,
	)
	if err != nil {
		return nil, err
	}

	// Hot and cold fields are written together with the digest binding both;
	// a transmission can never observe a torn configuration.
	hot.LatestConfigDigest = digest
	k.SetHotConfig(ctx, hot)
	k.StoreOnchainParams(ctx, params)
	k.SetOffchainConfig(ctx, types.OffchainConfig{Version: offchainConfigVersion, Config: offchainConfig})
	k.SetConfigCount(ctx, configCount)
	k.SetLatestConfigBlock(ctx, uint64(ctx.BlockHeight()))

	return digest, nil
}

// UpdateOnchainParams replaces the cold parameter set under the ratchet rules
// and recomputes the digest against the unchanged quorum and its retained
// off-chain config.
func (k Keeper) UpdateOnchainParams(ctx sdk.Context, params types.OnchainParams) ([]byte, error) {
	previous := k.GetOnchainParams(ctx)
	if err := params.ValidateRatchet(previous); err != nil {
		return nil, err
	}

	signers := k.GetSignerList(ctx)
	signerAddrs := make([]common.Address, len(signers))
	for i, hex := range signers {
		signerAddrs[i] = common.HexToAddress(hex)
	}

	hot := k.GetHotConfig(ctx)
	offchain := k.GetOffchainConfig(ctx)
	configCount := k.GetConfigCount(ctx) + 1
	digest, err := types.ConfigDigest(
		ctx.ChainID(),
		k.accountKeeper.GetModuleAddress(types.ModuleName).String(),
		configCount,
		signerAddrs,
		k.GetTransmitterList(ctx),
		hot.F,
		params,
		offchain.Version,
		offchain.Config,
	)
	if err != nil {
		return nil, err
	}

	hot.LatestConfigDigest = digest
	k.SetHotConfig(ctx, hot)
	k.StoreOnchainParams(ctx, params)
	k.SetConfigCount(ctx, configCount)
	k.SetLatestConfigBlock(ctx, uint64(ctx.BlockHeight()))

	return digest, nil
}
