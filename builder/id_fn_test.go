package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstreplay/builder"
)

// TestIDFns checks each scheme at its boundaries.
func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "42", builder.DefaultIDFn(42))

	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })

	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), idx)
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))
}

// TestIDSchemeOptions applies schemes through BuildGraph.
func TestIDSchemeOptions(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSymbNumb("n")}, builder.Path(2))
	assert.Equal(t, []string{"n0", "n1"}, g.NodeIDs())

	g = builder.MustBuild([]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithDefaultIDs()}, builder.Path(2))
	assert.Equal(t, []string{"0", "1"}, g.NodeIDs())
}
