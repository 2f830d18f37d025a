package metrics

const (
	namespaceCollator = "collator"
	namespaceStorage  = "storage"
	namespaceRelay    = "relay"
)

const (
	subsystemCollation    = "collation"
	subsystemConfirmation = "confirmation"
	subsystemCache        = "cache"
	subsystemDriver       = "driver"
)
