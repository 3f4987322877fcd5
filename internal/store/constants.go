package store

// Transaction listing limits
const (
	DefaultTransactionLimit = 20
	MaxTransactionLimit     = 100
)
