// Copyright (c) 2025 Visvasity LLC

package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const inputPkgPath = "github.com/visvasity/slotgen/input"

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()

	pkg, err := loadPackage(inputPkgPath)
	require.NoError(t, err)
	g, err := newGenerator(zap.NewNop(), pkg)
	require.NoError(t, err)
	return g
}

// parseImports parses the generated source and returns it's import paths.
func parseImports(t *testing.T, name string, src []byte) []string {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ImportsOnly)
	require.NoError(t, err)
	require.Equal(t, "input", file.Name.Name)

	var paths []string
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		paths = append(paths, path)
	}
	return paths
}

func TestGenerate(t *testing.T) {
	g := newTestGenerator(t)

	for _, typ := range []string{"Vec3", "RGB", "Sample", "Timing", "Sample"} {
		require.NoError(t, g.generate(typ))
	}
	require.Equal(t, []string{"RGB", "Sample", "Timing", "Vec3"}, g.GetTypes())

	dir, err := g.Dir()
	require.NoError(t, err)
	assert.Equal(t, "input", filepath.Base(dir))

	for _, typ := range g.GetTypes() {
		src := g.GetSource(typ)
		_, err := parser.ParseFile(token.NewFileSet(), g.FileName(typ), src, parser.AllErrors)
		require.NoError(t, err, "type %s", typ)
		assert.Contains(t, string(src), "// Code generated by github.com/visvasity/slotgen. DO NOT EDIT.")
		assert.Contains(t, string(src), "var _ slots.ThreeValues = (*"+typ+")(nil)")
		for _, method := range []string{
			"Get(s slots.Slot) float64",
			"Set(s slots.Slot, x float64)",
			"Reset()",
			"Sum() float64",
			"IsDefault() bool",
		} {
			assert.Contains(t, string(src), "func (v *"+typ+") "+method+" {")
		}
	}

	timing := g.GetSource("Timing")
	assert.ElementsMatch(t,
		[]string{"time", slotsPkgPath, slotutilPkgPath},
		parseImports(t, "timing.slotgen.go", timing))
	assert.Contains(t, string(timing), "v.Elapsed = slotutil.Narrow[time.Duration](x)")
	assert.Contains(t, string(timing), "v.Temp = slotutil.Narrow[Celsius](x)")
	assert.Contains(t, string(timing), "return float64(v.Retries)")

	sample := g.GetSource("Sample")
	assert.Contains(t, string(sample), "v.Total = x")
	assert.Contains(t, string(sample), "return v.Total")
	assert.Contains(t, string(sample), "v.Count = slotutil.Narrow[uint32](x)")

	vec3 := g.GetSource("Vec3")
	assert.ElementsMatch(t, []string{slotsPkgPath, slotutilPkgPath}, parseImports(t, "vec3.slotgen.go", vec3))
	assert.Contains(t, string(vec3), "v[s.Ordinal()] = slotutil.Narrow[float32](x)")
}

func TestGenerateErrors(t *testing.T) {
	g := newTestGenerator(t)

	for _, typ := range []string{"Missing", "TestTwoFields", "TestDuplicateTags", "TestString"} {
		assert.Error(t, g.generate(typ), "type %s", typ)
	}
	assert.Empty(t, g.GetTypes())
}

func TestFileName(t *testing.T) {
	g := &Generator{}
	assert.Equal(t, "rgb.slotgen.go", g.FileName("RGB"))
	assert.Equal(t, "vec3.slotgen.go", g.FileName("Vec3"))
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	g := newTestGenerator(t)

	types := []string{"Vec3", "RGB", "Sample", "Timing"}
	for _, typ := range types {
		require.NoError(t, g.generate(typ))
	}

	dir, err := g.Dir()
	require.NoError(t, err)
	for _, typ := range types {
		want, err := os.ReadFile(filepath.Join(dir, g.FileName(typ)))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(g.GetSource(typ)), "%s is stale; run go generate", g.FileName(typ))
	}
}

func TestGenerateFileNameClash(t *testing.T) {
	g := newTestGenerator(t)

	require.NoError(t, g.generate("TestCaseVec"))
	err := g.generate("TESTCASEVEC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testcasevec.slotgen.go")
	assert.Equal(t, []string{"TestCaseVec"}, g.GetTypes())
}

const statsSource = `package %s

type Stats struct {
	%s uint32
	Mean  float32
	Total float64
}
`

func TestRootCmdRegenerate(t *testing.T) {
	// The package must live inside this module so that generated files can
	// import the slots packages.
	dir, err := os.MkdirTemp(".", "regen")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	pkgName := filepath.Base(dir)
	srcFile := filepath.Join(dir, "stats.go")
	outFile := filepath.Join(dir, "stats.slotgen.go")

	run := func(args ...string) error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	require.NoError(t, os.WriteFile(srcFile, []byte(fmt.Sprintf(statsSource, pkgName, "Count")), 0644))
	require.NoError(t, run("--inpkg", dir, "--verbose", "Stats"))

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), "package "+pkgName)
	assert.Contains(t, string(out), "v.Count = slotutil.Narrow[uint32](x)")

	// Output of the first run refers to a field that no longer exists.
	require.NoError(t, os.WriteFile(srcFile, []byte(fmt.Sprintf(statsSource, pkgName, "Hits")), 0644))
	require.NoError(t, run("--inpkg", dir, "Stats"))

	out, err = os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), "v.Hits = slotutil.Narrow[uint32](x)")
	assert.NotContains(t, string(out), "Count")

	assert.Error(t, run("--inpkg", dir, "Missing"))
}
