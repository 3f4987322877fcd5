package domain

import (
	"fmt"
	"strings"
)

// AttributeName identifies one of the six outfield ratings.
type AttributeName string

const (
	AttrPace      AttributeName = "pace"
	AttrShooting  AttributeName = "shooting"
	AttrPassing   AttributeName = "passing"
	AttrDribbling AttributeName = "dribbling"
	AttrDefending AttributeName = "defending"
	AttrPhysical  AttributeName = "physical"
)

// Attribute value bounds. Every rating stays within the closed range
// [MinAttributeValue, MaxAttributeValue]; writes outside it are rejected.
const (
	MinAttributeValue = 40
	MaxAttributeValue = 99
)

// AttributeNames lists all valid attribute names.
var AttributeNames = []AttributeName{
	AttrPace, AttrShooting, AttrPassing, AttrDribbling, AttrDefending, AttrPhysical,
}

// ParseAttributeName converts a string to an AttributeName, rejecting
// unknown names so that invalid keys are unrepresentable downstream.
func ParseAttributeName(s string) (AttributeName, error) {
	name := AttributeName(strings.ToLower(s))
	for _, known := range AttributeNames {
		if name == known {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, s)
}

// Attributes holds a player's outfield ratings.
type Attributes struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defending int `json:"defending"`
	Physical  int `json:"physical"`
}

// Value returns the rating for the given attribute.
func (a Attributes) Value(name AttributeName) int {
	switch name {
	case AttrPace:
		return a.Pace
	case AttrShooting:
		return a.Shooting
	case AttrPassing:
		return a.Passing
	case AttrDribbling:
		return a.Dribbling
	case AttrDefending:
		return a.Defending
	case AttrPhysical:
		return a.Physical
	}
	return 0
}

// Set writes the rating for the given attribute, enforcing the closed range
// [MinAttributeValue, MaxAttributeValue]. On rejection nothing is mutated.
func (a *Attributes) Set(name AttributeName, value int) error {
	if value < MinAttributeValue || value > MaxAttributeValue {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrAttributeOutOfRange, name, MinAttributeValue, MaxAttributeValue, value)
	}
	switch name {
	case AttrPace:
		a.Pace = value
	case AttrShooting:
		a.Shooting = value
	case AttrPassing:
		a.Passing = value
	case AttrDribbling:
		a.Dribbling = value
	case AttrDefending:
		a.Defending = value
	case AttrPhysical:
		a.Physical = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return nil
}
