package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// ReportContextLen is the number of 32-byte words in a report context:
// config digest, epoch/round word, extra hash.
const ReportContextLen = 3

// SignatureLen is the length of a single [R || S || V] recovery signature.
const SignatureLen = 65

// WrappedPerform carries one upkeep's execution input together with the block
// point observed when the upkeep was checked off-chain.
type WrappedPerform struct {
	CheckBlockNumber uint64
	CheckBlockHash   common.Hash
	PerformData      []byte
}

// Report is an ordered batch of upkeep executions. It is constructed from wire
// input on every transmission and never persisted.
type Report struct {
	UpkeepIds           []uint64
	WrappedPerformDatas []WrappedPerform
}

// DecodeReport parses raw report bytes. The RLP layer rejects filler bytes
// appended after the encoded value, so a transmitter cannot pad the wire input
// and be reimbursed for bytes the quorum never signed.
func DecodeReport(raw []byte) (*Report, error) {
	var report Report
	if err := rlp.DecodeBytes(raw, &report); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidReport, "undecodable report: %s", err)
	}
	if len(report.UpkeepIds) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidReport, "empty report")
	}
	if len(report.UpkeepIds) != len(report.WrappedPerformDatas) {
		return nil, errorsmod.Wrapf(ErrInvalidReport,
			"%d upkeep ids but %d perform payloads", len(report.UpkeepIds), len(report.WrappedPerformDatas))
	}
	return &report, nil
}

// ValidatePerformSizes checks every payload against the configured ceiling.
func (r *Report) ValidatePerformSizes(maxPerformDataSize uint32) error {
	for _, wrapped := range r.WrappedPerformDatas {
		if uint32(len(wrapped.PerformData)) > maxPerformDataSize {
			return errorsmod.Wrapf(ErrInvalidReport,
				"perform data of %d bytes exceeds limit of %d", len(wrapped.PerformData), maxPerformDataSize)
		}
	}
	return nil
}

// ValidateReportContext checks the shape of the three context words.
func ValidateReportContext(reportContext [][]byte) error {
	if len(reportContext) != ReportContextLen {
		return errorsmod.Wrapf(ErrInvalidReport, "report context must have %d words, got %d", ReportContextLen, len(reportContext))
	}
	for i, word := range reportContext {
		if len(word) != common.HashLength {
			return errorsmod.Wrapf(ErrInvalidReport, "report context word %d must be %d bytes, got %d", i, common.HashLength, len(word))
		}
	}
	return nil
}

// SignedReportDigest is the payload-independent digest signers commit to:
// the hash of the report body concatenated with the report context.
func SignedReportDigest(rawReport []byte, reportContext [][]byte) []byte {
	preimage := crypto.Keccak256(rawReport)
	for _, word := range reportContext {
		preimage = append(preimage, word...)
	}
	return crypto.Keccak256(preimage)
}
