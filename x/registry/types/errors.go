package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrInvalidReport                  = errorsmod.Register(ModuleName, 2, "invalid report")
	ErrStaleReport                    = errorsmod.Register(ModuleName, 3, "stale report")
	ErrIncorrectNumberOfSignatures    = errorsmod.Register(ModuleName, 4, "incorrect number of signatures")
	ErrConfigDigestMismatch           = errorsmod.Register(ModuleName, 5, "config digest mismatch")
	ErrOnlyActiveSigners              = errorsmod.Register(ModuleName, 6, "signature recovered to an inactive signer")
	ErrDuplicateSigners               = errorsmod.Register(ModuleName, 7, "duplicate signers")
	ErrOnlyActiveTransmitters         = errorsmod.Register(ModuleName, 8, "sender is not an active transmitter")
	ErrInsufficientGasForPerform      = errorsmod.Register(ModuleName, 9, "transmission does not carry enough gas to provision a perform")
	ErrInsufficientFunds              = errorsmod.Register(ModuleName, 10, "settlement exceeds upkeep balance")
	ErrInvalidConfig                  = errorsmod.Register(ModuleName, 11, "invalid configuration")
	ErrWrongModerator                 = errorsmod.Register(ModuleName, 12, "the operation is allowed only from moderator address")
	ErrUpkeepNotFound                 = errorsmod.Register(ModuleName, 13, "upkeep not found")
	ErrUpkeepCancelled                = errorsmod.Register(ModuleName, 14, "upkeep is cancelled")
	ErrReentrantCall                  = errorsmod.Register(ModuleName, 15, "reentrant transmit call")
	ErrGasLimitCanOnlyIncrease        = errorsmod.Register(ModuleName, 16, "max perform gas can only increase")
	ErrCheckDataSizeCanOnlyIncrease   = errorsmod.Register(ModuleName, 17, "max check data size can only increase")
	ErrPerformDataSizeCanOnlyIncrease = errorsmod.Register(ModuleName, 18, "max perform data size can only increase")
)
