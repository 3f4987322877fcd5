package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_SetWithinRange(t *testing.T) {
	a := Attributes{Pace: 70}

	// Inclusive boundaries
	require.NoError(t, a.Set(AttrPace, MinAttributeValue))
	assert.Equal(t, MinAttributeValue, a.Pace)

	require.NoError(t, a.Set(AttrPace, MaxAttributeValue))
	assert.Equal(t, MaxAttributeValue, a.Pace)
}

func TestAttributes_SetOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"below minimum", MinAttributeValue - 1},
		{"above maximum", MaxAttributeValue + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attributes{Shooting: 75}

			err := a.Set(AttrShooting, tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAttributeOutOfRange)
			assert.Equal(t, 75, a.Shooting, "rejected write must not mutate")
		})
	}
}

func TestParseAttributeName(t *testing.T) {
	name, err := ParseAttributeName("Dribbling")
	require.NoError(t, err)
	assert.Equal(t, AttrDribbling, name)

	_, err = ParseAttributeName("charisma")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestParseItemKind(t *testing.T) {
	kind, err := ParseItemKind("SKILL")
	require.NoError(t, err)
	assert.Equal(t, KindSkill, kind)

	_, err = ParseItemKind("mascot")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidItemKind)
}
