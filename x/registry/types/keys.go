package types

import (
	"encoding/binary"
)

const (
	// ModuleName defines the module name
	ModuleName = "registry"

	// StoreKey is the default store key for the module
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_registry"
)

// KV Store key prefix bytes
const (
	prefixModeratorAddress = iota + 1
	prefixHotConfig
	prefixOnchainParams
	prefixConfigCount
	prefixLatestConfigBlock
	prefixUpkeeps
	prefixUpkeepCount
	prefixSigners
	prefixSignerList
	prefixTransmitters
	prefixTransmitterList
	prefixExpectedBalance
	prefixBlockHashes
	prefixOffchainConfig
)

// KV Store key prefixes
var (
	KeyModeratorAddress  = []byte{prefixModeratorAddress}
	KeyHotConfig         = []byte{prefixHotConfig}
	KeyOnchainParams     = []byte{prefixOnchainParams}
	KeyConfigCount       = []byte{prefixConfigCount}
	KeyLatestConfigBlock = []byte{prefixLatestConfigBlock}
	KeyUpkeeps           = []byte{prefixUpkeeps}
	KeyUpkeepCount       = []byte{prefixUpkeepCount}
	KeySigners           = []byte{prefixSigners}
	KeySignerList        = []byte{prefixSignerList}
	KeyTransmitters      = []byte{prefixTransmitters}
	KeyTransmitterList   = []byte{prefixTransmitterList}
	KeyExpectedBalance   = []byte{prefixExpectedBalance}
	KeyBlockHashes       = []byte{prefixBlockHashes}
	KeyOffchainConfig    = []byte{prefixOffchainConfig}
)

// Transient store key: set while a perform call is in flight so the pipeline
// cannot be re-entered from inside a target.
var KeyPerformLock = []byte{1}

func IDToBytes(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return bz
}

func IDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

// GetUpkeepKey returns the key for storing an Upkeep record
func GetUpkeepKey(id uint64) []byte {
	return append(KeyUpkeeps, IDToBytes(id)...)
}

// GetBlockHashKey returns the key for a retained block hash at the given height
func GetBlockHashKey(height uint64) []byte {
	return append(KeyBlockHashes, IDToBytes(height)...)
}
