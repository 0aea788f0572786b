// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"fmt"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strings"

	"github.com/visvasity/slotgen/slots"
	"go.uber.org/multierr"
)

// SlotTag is the struct tag key that assigns a struct field to a slot.
const SlotTag = "slot"

// GeneratedSuffix is the file name suffix of generated sources.
const GeneratedSuffix = ".slotgen.go"

// methodNames lists the slots.ThreeValues methods declared by generated code.
var methodNames = []string{"Get", "Set", "Reset", "Sum", "IsDefault"}

type FieldData struct {
	Slot      slots.Slot
	FieldName string // Empty for array shapes.

	TypeName    string
	TypePkgPath string // Empty for predeclared types.
	TypePkgName string

	BasicKind string // One of [int|uint|int8|uint8|...|float32|float64]
}

// IsLossless returns true if every float64 value round-trips through the
// field's storage.
func (f *FieldData) IsLossless() bool {
	return f.BasicKind == "float64"
}

type ShapeData struct {
	TypeName string
	PkgPath  string

	Kind string // One of [struct|array]

	// Fields holds the field data indexed by slot ordinal.
	Fields [slots.NumSlots]*FieldData
}

type Checker struct {
	// fset locates method declarations. Methods declared in generated files
	// are ignored when it is set.
	fset *token.FileSet

	shapeDataMap map[string]*ShapeData
}

// New returns a checker. The file set may be nil, in which case every
// declared ThreeValues method counts as a conflict.
func New(fset *token.FileSet) *Checker {
	return &Checker{
		fset:         fset,
		shapeDataMap: make(map[string]*ShapeData),
	}
}

func (c *Checker) ShapeDataMap() map[string]*ShapeData {
	return c.shapeDataMap
}

func typenameKey(tn *types.TypeName) string {
	pkg := tn.Pkg()
	if pkg == nil {
		return tn.Name()
	}
	return pkg.Path() + "." + tn.Name()
}

// Check verifies that the input type can implement the slots.ThreeValues
// interface and returns it's shape metadata.
func (c *Checker) Check(typename *types.TypeName) (*ShapeData, error) {
	key := typenameKey(typename)
	if sdata, ok := c.shapeDataMap[key]; ok {
		return sdata, nil
	}

	named, ok := typename.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("type %q is not a defined type", typename.Name())
	}
	if tps := named.TypeParams(); tps != nil && tps.Len() != 0 {
		return nil, fmt.Errorf("generic type %q is not supported", typename.Name())
	}

	sdata := &ShapeData{TypeName: typename.Name()}
	if pkg := typename.Pkg(); pkg != nil {
		sdata.PkgPath = pkg.Path()
	}

	var err error
	switch x := named.Underlying().(type) {
	case *types.Struct:
		sdata.Kind = "struct"
		err = c.collectStructFields(sdata, x)
	case *types.Array:
		sdata.Kind = "array"
		err = c.collectArrayElems(sdata, x)
	default:
		err = fmt.Errorf("underlying type %v is not a struct or an array", x)
	}
	err = multierr.Append(err, c.checkMethods(named))
	if err != nil {
		var status error
		for _, e := range multierr.Errors(err) {
			status = multierr.Append(status, fmt.Errorf("type %q: %w", typename.Name(), e))
		}
		return nil, status
	}

	c.shapeDataMap[key] = sdata
	return sdata, nil
}

func (c *Checker) collectStructFields(sdata *ShapeData, stype *types.Struct) error {
	if n := stype.NumFields(); n != slots.NumSlots {
		return fmt.Errorf("struct has %d fields, want %d", n, slots.NumSlots)
	}

	var status error
	var tagged int
	fields := make([]*FieldData, 0, slots.NumSlots)
	for i := 0; i < stype.NumFields(); i++ {
		field := stype.Field(i)
		if field.Embedded() {
			status = multierr.Append(status, fmt.Errorf("embedded field (%v) is not supported", field))
			continue
		}
		if field.Name() == "_" {
			status = multierr.Append(status, fmt.Errorf("blank field (%v) is not supported", field))
			continue
		}
		if slices.Contains(methodNames, field.Name()) {
			status = multierr.Append(status, fmt.Errorf("field %s collides with the generated %s method", field.Name(), field.Name()))
			continue
		}

		fdata := &FieldData{Slot: slots.Slot(i), FieldName: field.Name()}
		if err := collectNumber(field.Type(), fdata); err != nil {
			status = multierr.Append(status, fmt.Errorf("field %s: %w", field.Name(), err))
			continue
		}

		if name, ok := reflect.StructTag(stype.Tag(i)).Lookup(SlotTag); ok {
			slot, err := slots.ParseSlot(name)
			if err != nil {
				status = multierr.Append(status, fmt.Errorf("field %s: %w", field.Name(), err))
				continue
			}
			fdata.Slot = slot
			tagged++
		}
		fields = append(fields, fdata)
	}
	if status != nil {
		return status
	}

	if tagged != 0 && tagged != slots.NumSlots {
		return fmt.Errorf("%d of %d fields have a %q tag; tag all fields or none", tagged, slots.NumSlots, SlotTag)
	}
	for _, fdata := range fields {
		if x := sdata.Fields[fdata.Slot]; x != nil {
			status = multierr.Append(status, fmt.Errorf("fields %s and %s are both assigned to slot %v", x.FieldName, fdata.FieldName, fdata.Slot))
			continue
		}
		sdata.Fields[fdata.Slot] = fdata
	}
	return status
}

// checkMethods reports ThreeValues methods that the type already declares
// outside of generated files.
func (c *Checker) checkMethods(named *types.Named) error {
	var status error
	mset := types.NewMethodSet(types.NewPointer(named))
	for _, name := range methodNames {
		sel := mset.Lookup(nil, name)
		if sel == nil {
			continue
		}
		if c.fset != nil && strings.HasSuffix(c.fset.Position(sel.Obj().Pos()).Filename, GeneratedSuffix) {
			continue
		}
		status = multierr.Append(status, fmt.Errorf("method %s is already declared", name))
	}
	return status
}

func (c *Checker) collectArrayElems(sdata *ShapeData, atype *types.Array) error {
	if n := atype.Len(); n != slots.NumSlots {
		return fmt.Errorf("array has %d elements, want %d", n, slots.NumSlots)
	}
	fdata := new(FieldData)
	if err := collectNumber(atype.Elem(), fdata); err != nil {
		return fmt.Errorf("array element: %w", err)
	}
	for s := range slots.All() {
		elem := *fdata
		elem.Slot = s
		sdata.Fields[s] = &elem
	}
	return nil
}

func collectNumber(ftype types.Type, fdata *FieldData) error {
	basic, ok := ftype.Underlying().(*types.Basic)
	if !ok || !isNumberKind(basic.Kind()) {
		return fmt.Errorf("type %v (underlying=%v) is not an integer or float", ftype, ftype.Underlying())
	}
	// Normalize byte and rune to uint8 and int32.
	fdata.BasicKind = types.Typ[basic.Kind()].Name()

	switch x := ftype.(type) {
	case *types.Basic:
		fdata.TypeName = x.Name()
	case *types.Named:
		if x.TypeArgs().Len() != 0 {
			return fmt.Errorf("instantiated type %v is not supported", x)
		}
		fdata.TypeName, fdata.TypePkgPath, fdata.TypePkgName = getTypeNameNames(x.Obj())
	case *types.Alias:
		fdata.TypeName, fdata.TypePkgPath, fdata.TypePkgName = getTypeNameNames(x.Obj())
	case *types.TypeParam:
		return fmt.Errorf("type parameter %v is not supported", x)
	default:
		return fmt.Errorf("type %v (%T) is not supported", x, x)
	}
	return nil
}

func getTypeNameNames(tn *types.TypeName) (name, pkgPath, pkgName string) {
	name = tn.Name()
	if pkg := tn.Pkg(); pkg != nil {
		pkgPath = pkg.Path()
		pkgName = pkg.Name()
	}
	return
}

func isNumberKind(kind types.BasicKind) bool {
	switch kind {
	case types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64, types.Uintptr,
		types.Float32, types.Float64:
		return true
	}
	return false
}
