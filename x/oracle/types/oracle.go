package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// FeedDoc describes a registered price feed. Submissions are only accepted for
// feeds with a doc on record.
type FeedDoc struct {
	Id          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (doc *FeedDoc) Reset()         { *doc = FeedDoc{} }
func (doc *FeedDoc) ProtoMessage()  {}
func (doc *FeedDoc) String() string { return string(ModuleCdc.MustMarshalJSON(doc)) }

// Validate performs a stateless sanity check of the feed doc fields.
func (doc FeedDoc) Validate() error {
	if doc.Name == "" {
		return fmt.Errorf("feed name cannot be empty")
	}
	return nil
}

// OracleData is the latest submitted value for a feed, with the submission
// time used for staleness checks.
type OracleData struct {
	Id        uint64    `json:"id"`
	Value     math.Int  `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	Provider  string    `json:"provider"`
}

func (d *OracleData) Reset()         { *d = OracleData{} }
func (d *OracleData) ProtoMessage()  {}
func (d *OracleData) String() string { return string(ModuleCdc.MustMarshalJSON(d)) }

// Validate performs a stateless sanity check of the data set fields.
func (d OracleData) Validate() error {
	if d.Value.IsNil() || !d.Value.IsPositive() {
		return fmt.Errorf("oracle value must be positive")
	}
	return nil
}
