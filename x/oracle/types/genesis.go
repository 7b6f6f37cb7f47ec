package types

import (
	"fmt"
)

// GenesisState defines the oracle module's genesis state.
type GenesisState struct {
	ModeratorAddress string       `json:"moderator_address"`
	FeedDocs         []FeedDoc    `json:"feed_docs"`
	OracleDatas      []OracleData `json:"oracle_datas"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(moderatorAddress string, docs []FeedDoc, datas []OracleData) GenesisState {
	return GenesisState{
		ModeratorAddress: moderatorAddress,
		FeedDocs:         docs,
		OracleDatas:      datas,
	}
}

// DefaultGenesisState sets default oracle genesis state with no feeds.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	seenDocs := make(map[uint64]bool)
	for _, doc := range gs.FeedDocs {
		if seenDocs[doc.Id] {
			return fmt.Errorf("duplicate feed doc id %d", doc.Id)
		}
		seenDocs[doc.Id] = true
		if err := doc.Validate(); err != nil {
			return err
		}
	}
	for _, data := range gs.OracleDatas {
		if !seenDocs[data.Id] {
			return fmt.Errorf("oracle data for unregistered feed %d", data.Id)
		}
		if err := data.Validate(); err != nil {
			return err
		}
	}
	return nil
}
