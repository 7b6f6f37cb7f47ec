package keeper

import (
	"bytes"
	"math/bits"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/keepnet-global/keepnet/x/registry/types"
)

// verifySignatures checks that the report carries exactly f+1 signatures from
// distinct active signers of the current quorum, and returns the recovered
// signer indices in signature order for the premium split.
func (k Keeper) verifySignatures(
	ctx sdk.Context,
	hot types.HotConfig,
	reportContext [][]byte,
	rawReport []byte,
	signatures [][]byte,
) ([]uint32, error) {
	// The declared digest anchors the report to one configuration generation;
	// anything signed under a rotated-out quorum dies here.
	if !bytes.Equal(reportContext[0], hot.LatestConfigDigest) {
		return nil, errorsmod.Wrapf(types.ErrConfigDigestMismatch,
			"expected %x, got %x", hot.LatestConfigDigest, reportContext[0])
	}

	if len(signatures) != int(hot.F)+1 {
		return nil, errorsmod.Wrapf(types.ErrIncorrectNumberOfSignatures,
			"expected %d, got %d", hot.F+1, len(signatures))
	}

	digest := types.SignedReportDigest(rawReport, reportContext)

	// Each active signer owns one bit position; a signer appearing twice
	// collides in the mask and is caught by the popcount compare below.
	var signedMask uint64
	indices := make([]uint32, 0, len(signatures))

	for i, sig := range signatures {
		pubkey, err := crypto.SigToPub(digest, sig)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidReport, "unrecoverable signature %d: %s", i, err)
		}
		address := crypto.PubkeyToAddress(*pubkey)

		signer, err := k.GetSigner(ctx, address)
		if err != nil {
			return nil, err
		}
		if !signer.Active {
			return nil, errorsmod.Wrapf(types.ErrOnlyActiveSigners, "%s", address.Hex())
		}

		signedMask |= uint64(1) << signer.Index
		indices = append(indices, signer.Index)
	}

	if bits.OnesCount64(signedMask) != len(signatures) {
		return nil, errorsmod.Wrapf(types.ErrDuplicateSigners, "mask %b covers fewer signers than %d signatures", signedMask, len(signatures))
	}

	return indices, nil
}
