// Copyright (c) 2025 Visvasity LLC

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/visvasity/slotgen/typecheck"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
	"golang.org/x/tools/imports"
)

const (
	slotsPkgPath    = "github.com/visvasity/slotgen/slots"
	slotutilPkgPath = "github.com/visvasity/slotgen/slotutil"
)

type Generator struct {
	logger *zap.Logger

	pkg     *packages.Package
	pkgName string
	pkgPath string

	checker *typecheck.Checker

	// generatedTypes holds the file name for every type generated so far.
	generatedTypes typeutil.Map // map[types.Type]string

	// fileTypes maps generated file names back to their type names.
	fileTypes map[string]string

	bufferMap map[string]*bytes.Buffer

	// importsMap holds a mapping from a package path to the set of type names
	// whose generated file must import the package. For example,
	//
	//   importsMap["time"]["Timing"] = "time"
	//
	// indicates an import statement like
	//
	//   import "time"
	//
	// in the generated file named "timing.slotgen.go".
	importsMap map[string]map[string]string
}

func newGenerator(logger *zap.Logger, pkg *packages.Package) (*Generator, error) {
	if pkg.Types == nil {
		return nil, fmt.Errorf("package %q has no type information", pkg.PkgPath)
	}
	g := &Generator{
		logger:     logger,
		pkg:        pkg,
		pkgName:    pkg.Types.Name(),
		pkgPath:    pkg.Types.Path(),
		checker:    typecheck.New(pkg.Fset),
		fileTypes:  make(map[string]string),
		bufferMap:  make(map[string]*bytes.Buffer),
		importsMap: make(map[string]map[string]string),
	}
	return g, nil
}

// parseFile parses the package sources for type checking. Previously
// generated files are reduced to their package clause so that stale output
// never prevents the package from loading.
func parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if strings.HasSuffix(filename, typecheck.GeneratedSuffix) {
		return parser.ParseFile(fset, filename, src, parser.PackageClauseOnly)
	}
	return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
}

// loadPackage loads a single package. The input may be a directory, which is
// then loaded from inside it's own module, or a package pattern.
func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode:      packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports,
		ParseFile: parseFile,
	}
	pattern := pkg
	if fi, err := os.Stat(pkg); err == nil && fi.IsDir() {
		cfg.Dir, pattern = pkg, "."
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want exactly one", pkg, len(pkgs))
	}
	if errs := pkgs[0].Errors; len(errs) != 0 {
		return nil, fmt.Errorf("package %q has errors: %w", pkgs[0].PkgPath, errs[0])
	}
	return pkgs[0], nil
}

// Dir returns the directory holding the input package sources. Generated files
// must live in the same package because they declare methods on its types.
func (g *Generator) Dir() (string, error) {
	if len(g.pkg.GoFiles) == 0 {
		return "", fmt.Errorf("package %q has no go files", g.pkgPath)
	}
	return filepath.Dir(g.pkg.GoFiles[0]), nil
}

func (g *Generator) getBuffer(typeName string) *bytes.Buffer {
	if b, ok := g.bufferMap[typeName]; ok {
		return b
	}
	b := new(bytes.Buffer)
	g.bufferMap[typeName] = b
	return b
}

func (g *Generator) addImport(typeName string, importName, packagePath string) error {
	vmap, ok := g.importsMap[packagePath]
	if !ok {
		vmap = make(map[string]string)
		g.importsMap[packagePath] = vmap
	}

	x, ok := vmap[typeName]
	if !ok {
		vmap[typeName] = importName
		return nil
	}

	if x != importName {
		return fmt.Errorf("multiple different import names for package %q by type %q", packagePath, typeName)
	}
	return nil
}

func (g *Generator) P(typeName string, v ...any) {
	buf := g.getBuffer(typeName)
	for _, x := range v {
		fmt.Fprint(buf, x)
	}
	fmt.Fprintln(buf)
}

// GetTypes returns the names of all generated types in sorted order.
func (g *Generator) GetTypes() []string {
	return slices.Sorted(maps.Keys(g.bufferMap))
}

// FileName returns the base name of the file generated for a type.
func (g *Generator) FileName(typeName string) string {
	return strings.ToLower(typeName) + typecheck.GeneratedSuffix
}

// GetSource returns the formatted source for the generated type.
func (g *Generator) GetSource(typeName string) []byte {
	buf := g.getSourceWithImports(typeName)

	src, err := imports.Process(g.FileName(typeName), buf.Bytes(), nil)
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		g.logger.Warn("internal error: invalid Go generated; compile the package to analyze the error",
			zap.String("type", typeName), zap.Error(err))
		return buf.Bytes()
	}
	return src
}

func (g *Generator) getImports(typeName string) [][2]string {
	var imports [][2]string
	for _, pkgPath := range slices.Sorted(maps.Keys(g.importsMap)) {
		imp, ok := g.importsMap[pkgPath][typeName]
		if !ok {
			continue
		}
		imports = append(imports, [2]string{imp, pkgPath})
	}
	return imports
}

func (g *Generator) getSourceWithImports(typeName string) *bytes.Buffer {
	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, "// Code generated by github.com/visvasity/slotgen. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	imports := g.getImports(typeName)
	if len(imports) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, imp := range imports {
			if len(imp[0]) == 0 {
				fmt.Fprintf(buf, "%q\n", imp[1])
			} else {
				fmt.Fprintf(buf, "%s %q\n", imp[0], imp[1])
			}
		}
		fmt.Fprintln(buf, ")")
	}

	buf.Write(g.getBuffer(typeName).Bytes())
	return buf
}

func (g *Generator) lookupType(typeName string) (*types.TypeName, error) {
	scope := g.pkg.Types.Scope()
	object := scope.Lookup(typeName)
	if object == nil {
		return nil, fmt.Errorf("typename %q doesn't exist", typeName)
	}
	tn, ok := object.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("generator type %q is not a typename", typeName)
	}
	return tn, nil
}

func (g *Generator) generate(typeName string) error {
	tn, err := g.lookupType(typeName)
	if err != nil {
		return err
	}
	if x := g.generatedTypes.At(tn.Type()); x != nil {
		g.logger.Debug("skipping already generated type", zap.String("type", typeName), zap.String("file", x.(string)))
		return nil
	}
	fileName := g.FileName(typeName)
	if x, ok := g.fileTypes[fileName]; ok {
		return fmt.Errorf("types %q and %q both generate file %q", x, typeName, fileName)
	}

	sdata, err := g.checker.Check(tn)
	if err != nil {
		return err
	}
	g.logger.Debug("checked shape", zap.String("type", typeName), zap.String("kind", sdata.Kind))

	if err := g.addImport(typeName, "", slotsPkgPath); err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "var _ slots.ThreeValues = (*", typeName, ")(nil)")

	switch sdata.Kind {
	case "struct":
		if err := g.generateStructMethods(sdata); err != nil {
			return err
		}
	case "array":
		if err := g.generateArrayMethods(sdata); err != nil {
			return err
		}
	default:
		return fmt.Errorf("type %q has unhandled shape kind %q", typeName, sdata.Kind)
	}

	g.generateCommonMethods(sdata)
	g.generatedTypes.Set(tn.Type(), fileName)
	g.fileTypes[fileName] = typeName
	return nil
}

// fieldTypeName returns the field type name as it must be spelled inside the
// generated file, adding an import when the type belongs to another package.
func (g *Generator) fieldTypeName(sdata *typecheck.ShapeData, fdata *typecheck.FieldData) (string, error) {
	if fdata.TypePkgPath == "" || fdata.TypePkgPath == sdata.PkgPath {
		return fdata.TypeName, nil
	}
	if err := g.addImport(sdata.TypeName, "", fdata.TypePkgPath); err != nil {
		return "", err
	}
	return fdata.TypePkgName + "." + fdata.TypeName, nil
}

// isPlainFloat64 returns true if the field is stored as a predeclared float64
// and needs no conversion.
func isPlainFloat64(fdata *typecheck.FieldData) bool {
	return fdata.TypePkgPath == "" && fdata.IsLossless()
}

func (g *Generator) narrowExpr(sdata *typecheck.ShapeData, fdata *typecheck.FieldData) (string, error) {
	if isPlainFloat64(fdata) {
		return "x", nil
	}
	ftype, err := g.fieldTypeName(sdata, fdata)
	if err != nil {
		return "", err
	}
	if err := g.addImport(sdata.TypeName, "", slotutilPkgPath); err != nil {
		return "", err
	}
	return "slotutil.Narrow[" + ftype + "](x)", nil
}

func widenExpr(fdata *typecheck.FieldData, value string) string {
	if isPlainFloat64(fdata) {
		return value
	}
	return "float64(" + value + ")"
}

func (g *Generator) generateStructMethods(sdata *typecheck.ShapeData) error {
	typeName := sdata.TypeName

	g.P(typeName)
	g.P(typeName, "// Get returns the value of slot s widened to float64.")
	g.P(typeName, "func (v *", typeName, ") Get(s slots.Slot) float64 {")
	g.P(typeName, "  switch s.Ordinal() {")
	for i, fdata := range sdata.Fields {
		if i == len(sdata.Fields)-1 {
			g.P(typeName, "  default:")
		} else {
			g.P(typeName, "  case ", i, ":")
		}
		g.P(typeName, "    return ", widenExpr(fdata, "v."+fdata.FieldName))
	}
	g.P(typeName, "  }")
	g.P(typeName, "}")

	g.P(typeName)
	g.P(typeName, "// Set stores x into slot s, narrowing it to the slot's storage type.")
	g.P(typeName, "func (v *", typeName, ") Set(s slots.Slot, x float64) {")
	g.P(typeName, "  switch s.Ordinal() {")
	for i, fdata := range sdata.Fields {
		expr, err := g.narrowExpr(sdata, fdata)
		if err != nil {
			return err
		}
		if i == len(sdata.Fields)-1 {
			g.P(typeName, "  default:")
		} else {
			g.P(typeName, "  case ", i, ":")
		}
		g.P(typeName, "    v.", fdata.FieldName, " = ", expr)
	}
	g.P(typeName, "  }")
	g.P(typeName, "}")
	return nil
}

func (g *Generator) generateArrayMethods(sdata *typecheck.ShapeData) error {
	typeName, fdata := sdata.TypeName, sdata.Fields[0]

	expr, err := g.narrowExpr(sdata, fdata)
	if err != nil {
		return err
	}

	g.P(typeName)
	g.P(typeName, "// Get returns the value of slot s widened to float64.")
	g.P(typeName, "func (v *", typeName, ") Get(s slots.Slot) float64 {")
	g.P(typeName, "  return ", widenExpr(fdata, "v[s.Ordinal()]"))
	g.P(typeName, "}")

	g.P(typeName)
	g.P(typeName, "// Set stores x into slot s, narrowing it to the slot's storage type.")
	g.P(typeName, "func (v *", typeName, ") Set(s slots.Slot, x float64) {")
	g.P(typeName, "  v[s.Ordinal()] = ", expr)
	g.P(typeName, "}")
	return nil
}

func (g *Generator) generateCommonMethods(sdata *typecheck.ShapeData) {
	typeName := sdata.TypeName

	g.P(typeName)
	g.P(typeName, "// Reset sets every slot to it's default value.")
	g.P(typeName, "func (v *", typeName, ") Reset() {")
	g.P(typeName, "  *v = ", typeName, "{}")
	g.P(typeName, "}")

	g.P(typeName)
	g.P(typeName, "// Sum returns the sum of all slots in slot order.")
	g.P(typeName, "func (v *", typeName, ") Sum() float64 {")
	g.P(typeName, "  return slots.Sum(v)")
	g.P(typeName, "}")

	g.P(typeName)
	g.P(typeName, "// IsDefault returns true if every slot holds it's default value.")
	g.P(typeName, "func (v *", typeName, ") IsDefault() bool {")
	g.P(typeName, "  return slots.IsDefault(v)")
	g.P(typeName, "}")
}
