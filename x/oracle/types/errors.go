package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrWrongModerator = errorsmod.Register(ModuleName, 2, "moderator address is wrong")
	ErrFeedNotFound   = errorsmod.Register(ModuleName, 3, "feed doc not found")
	ErrNoOracleData   = errorsmod.Register(ModuleName, 4, "no oracle data for feed")
	ErrInvalidFeedDoc = errorsmod.Register(ModuleName, 5, "invalid feed doc")
	ErrInvalidDataSet = errorsmod.Register(ModuleName, 6, "invalid oracle data set")
)
