package metrics

// Metric names
const (
	MetricHTTPRequestsTotal   = "pitchside_http_requests_total"
	MetricHTTPRequestDuration = "pitchside_http_request_duration_seconds"

	MetricPurchasesSettledTotal = "pitchside_purchases_settled_total"
	MetricPurchaseFailuresTotal = "pitchside_purchase_failures_total"
	MetricCurrencySpentTotal    = "pitchside_currency_spent_total"

	MetricAttributeAdjustmentsTotal = "pitchside_attribute_adjustments_total"
	MetricPlayersRegisteredTotal    = "pitchside_players_registered_total"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelKind     = "kind"
	LabelReason   = "reason"
	LabelCurrency = "currency"
	LabelOutcome  = "outcome"
)

// Failure reasons for purchase settlement
const (
	ReasonPlayerNotFound    = "player_not_found"
	ReasonItemNotFound      = "item_not_found"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonStorageFailure    = "storage_failure"
)

// Outcomes for attribute adjustments
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)
