package argspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGroup(t *testing.T) {
	g := NewGroup("io",
		WithMembers("in", "out"),
		WithMembers("out", "err"),
		WithAllMembers(true),
		WithGroupRequired(true),
		WithGroupRequires("fmt"),
		WithGroupConflicts("quiet"),
	)

	assert.Equal(t, []string{"in", "out", "err"}, g.Args)
	assert.True(t, g.RequiresAll)
	assert.True(t, g.Required)
	assert.Equal(t, []string{"fmt"}, g.Requires)
	assert.Equal(t, []string{"quiet"}, g.Conflicts)
	assert.True(t, g.HasMember("err"))
	assert.False(t, g.HasMember("fmt"))

	g.Set(WithAllMembers(false))
	assert.False(t, g.RequiresAll)
}
