package domain

const (
	// NATIVE_CURRENCY is the reserved currency name of the chain's base asset.
	// It is always accepted and can never be registered as a token.
	NATIVE_CURRENCY = "ETH"

	// ETHEREUM_ZERO_ADDRESS is the null account / null token address
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// FIRST_EVENT_ID is the first id handed out by the event store. Id 0 is never assigned.
	FIRST_EVENT_ID uint64 = 1
)
