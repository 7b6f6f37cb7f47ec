package oracle

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keepnet-global/keepnet/x/oracle/keeper"
	"github.com/keepnet-global/keepnet/x/oracle/types"
)

// InitGenesis new oracle genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if data.ModeratorAddress != "" {
		k.SetModeratorAddress(ctx, data.ModeratorAddress)
	}

	var maxId uint64
	for _, doc := range data.FeedDocs {
		if err := doc.Validate(); err != nil {
			panic(errorsmod.Wrapf(err, "error validating feed doc %d", doc.Id))
		}
		k.SetFeedDoc(ctx, doc)
		if doc.Id > maxId {
			maxId = doc.Id
		}
	}
	k.SetFeedDocCount(ctx, maxId)

	for _, oracleData := range data.OracleDatas {
		if err := oracleData.Validate(); err != nil {
			panic(errorsmod.Wrapf(err, "error validating oracle data %d", oracleData.Id))
		}
		k.SetOracleData(ctx, oracleData)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	count := k.GetFeedDocCount(ctx)

	docs := make([]types.FeedDoc, 0, count)
	datas := make([]types.OracleData, 0, count)
	for id := uint64(1); id <= count; id++ {
		doc, err := k.GetFeedDoc(ctx, id)
		if err != nil {
			continue
		}
		docs = append(docs, *doc)

		if data, err := k.GetOracleDataRecord(ctx, id); err == nil {
			datas = append(datas, *data)
		}
	}

	return types.NewGenesisState(k.GetModeratorAddress(ctx), docs, datas)
}
