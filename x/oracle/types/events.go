package types

// Oracle module event type constants
const (
	// EventTypeRegisterFeedDoc defines the event type for registering a feed doc
	EventTypeRegisterFeedDoc = "register_feed_doc"

	// EventTypeSubmitOracleData defines the event type for submitting oracle data
	EventTypeSubmitOracleData = "submit_oracle_data"

	// EventTypeChangeModerator defines the event type for changing the moderator
	EventTypeChangeModerator = "change_moderator"
)

// Event attribute keys
const (
	AttributeKeyFeedID      = "feed_id"
	AttributeKeyName        = "name"
	AttributeKeyDescription = "description"
	AttributeKeyValue       = "value"
	AttributeKeyProvider    = "provider"
	AttributeKeyModerator   = "moderator"
)
