package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadout_AddSkillIdempotent(t *testing.T) {
	var l Loadout

	l.AddSkill("rabona")
	l.AddSkill("rabona")

	assert.Equal(t, []string{"rabona"}, l.Skills)
	assert.True(t, l.HasSkill("rabona"))
	assert.False(t, l.HasSkill("elastico"))
}

func TestLoadout_AddStyleIdempotent(t *testing.T) {
	var l Loadout

	l.AddStyle("tiki-taka")
	l.AddStyle("tiki-taka")
	l.AddStyle("gegenpress")

	assert.Equal(t, []string{"tiki-taka", "gegenpress"}, l.Styles)
}

func TestLoadout_AddItemStacks(t *testing.T) {
	var l Loadout

	l.AddItem("energy-drink", 1)
	l.AddItem("energy-drink", 1)

	assert.Len(t, l.Items, 1, "consumables stack into a single slot")
	assert.Equal(t, 2, l.ItemQuantity("energy-drink"))
	assert.Equal(t, 0, l.ItemQuantity("boots"))
}
