package types

// registry module event types
const (
	// event types
	EventTypeUpkeepPerformed         = ModuleName + "_upkeep_performed"
	EventTypeStaleUpkeepReport       = ModuleName + "_stale_upkeep_report"
	EventTypeReorgedUpkeepReport     = ModuleName + "_reorged_upkeep_report"
	EventTypeCancelledUpkeepReport   = ModuleName + "_cancelled_upkeep_report"
	EventTypeInsufficientFundsUpkeep = ModuleName + "_insufficient_funds_upkeep_report"
	EventTypeUpkeepFunded            = ModuleName + "_upkeep_funded"
	EventTypeConfigSet               = ModuleName + "_config_set"
	EventTypeParamsUpdated           = ModuleName + "_onchain_params_updated"
	EventTypeChangeModerator         = ModuleName + "_change_moderator_address"

	// event attributes
	AttributeKeyUpkeepId       = "upkeep_id"
	AttributeKeyTransmitter    = "transmitter"
	AttributeKeySuccess        = "success"
	AttributeKeyGasUsed        = "gas_used"
	AttributeKeyPayment        = "total_payment"
	AttributeKeyCheckBlock     = "check_block_number"
	AttributeKeyAmount         = "amount"
	AttributeKeyFrom           = "from"
	AttributeKeyConfigDigest   = "config_digest"
	AttributeKeyConfigCount    = "config_count"
	AttributeKeyNumSigners     = "num_signers"
	AttributeKeyFaultTolerance = "f"
	AttributeKeyModerator      = "moderator"
	AttributeKeyAddress        = "address"
)
