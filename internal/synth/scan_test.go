package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDir(t *testing.T) {
	dir := writePackage(t, map[string]string{
		"b.go": `package demo

type (
	// Plain has no marker.
	Plain struct{}

	//sqlgen:symbol Second
	Grouped struct{}
)

func (p *Plain) Ptr() {}

type Box[T any] struct{ v T }

func (b Box[T]) Get() T { return b.v }
`,
		"a.go": `package demo

// First is marked on the declaration.
//
//sqlgen:symbol First
type First struct{}

func (First) Name() string { return "first" }
`,
	})

	info, err := scanDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", info.Name)
	require.Len(t, info.Nodes, 2)
	assert.Equal(t, "First", info.Nodes[0].Type)
	assert.Equal(t, "First", info.Nodes[0].Symbol)
	assert.Equal(t, 5, info.Nodes[0].Pos.Line)
	assert.Equal(t, "Grouped", info.Nodes[1].Type)
	assert.Equal(t, "Second", info.Nodes[1].Symbol)

	assert.True(t, info.Types["Plain"])
	assert.True(t, info.Types["Box"])
	assert.True(t, info.hasMethod("First", "Name"))
	assert.True(t, info.hasMethod("Plain", "Ptr"))
	assert.True(t, info.hasMethod("Box", "Get"))
	assert.False(t, info.hasMethod("Plain", "Name"))
	assert.False(t, info.hasMethod("Missing", "Name"))
}

func TestScanDirGroupDocIgnored(t *testing.T) {
	// A marker on a multi-spec group does not apply to its members.
	dir := writePackage(t, map[string]string{
		"a.go": `package demo

//sqlgen:symbol First
type (
	A struct{}
	B struct{}
)
`,
	})

	info, err := scanDir(dir)
	require.NoError(t, err)
	assert.Empty(t, info.Nodes)
}

func TestScanDirMissing(t *testing.T) {
	_, err := scanDir("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read package dir")
}
