package profile

// New players start with enough gp for a couple of entry-level purchases
// and a small premium allowance.
const (
	StartingGP = 1000
	StartingFC = 100

	BaselineAttributeValue = 50
)
