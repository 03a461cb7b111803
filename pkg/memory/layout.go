package memory

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/Manu343726/sizeof/pkg/utils"
	"golang.org/x/exp/slices"
)

var ErrNotARecord = errors.New("value is not a record")

// Describes a field of a record
type Field struct {
	// Name of the field
	Name string

	// Go name of the field type
	Type string

	// Byte offset of the field from the beginning of the record
	Offset uintptr

	// Field storage size, in bytes
	Size uintptr

	// Field alignment requirement, in bytes
	Align uintptr
}

// The first byte past the end of the field
func (f *Field) End() uintptr {
	return f.Offset + f.Size
}

// A run of unused bytes inserted to satisfy alignment requirements
type Padding struct {
	Offset uintptr
	Size   uintptr
}

// Memory layout of a record type
type Layout struct {
	// Name of the record type. Empty for anonymous records.
	Name string

	// Total storage size, including padding
	Size uintptr

	// Alignment requirement of the whole record
	Align uintptr

	// Fields in declaration order
	Fields []Field

	// Padding runs sorted by offset
	Paddings []Padding
}

// Computes the layout of a record variable. v may be the record itself or a pointer to it.
func LayoutOf(v any) (Layout, error) {
	t := reflect.TypeOf(v)

	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return Layout{}, utils.MakeError(ErrNotARecord, "got %v", t)
	}

	return layoutOfType(t), nil
}

func layoutOfType(t reflect.Type) Layout {
	layout := Layout{
		Name:   t.Name(),
		Size:   t.Size(),
		Align:  uintptr(t.Align()),
		Fields: make([]Field, t.NumField()),
	}

	var cursor uintptr

	for i := range layout.Fields {
		sf := t.Field(i)

		field := Field{
			Name:   sf.Name,
			Type:   sf.Type.String(),
			Offset: sf.Offset,
			Size:   sf.Type.Size(),
			Align:  uintptr(sf.Type.Align()),
		}

		if field.Offset > cursor {
			layout.Paddings = append(layout.Paddings, Padding{Offset: cursor, Size: field.Offset - cursor})
		}

		layout.Fields[i] = field
		cursor = field.End()
	}

	if layout.Size > cursor {
		layout.Paddings = append(layout.Paddings, Padding{Offset: cursor, Size: layout.Size - cursor})
	}

	return layout
}

// Sum of the sizes of all fields, ignoring padding
func (l *Layout) FieldsSize() uintptr {
	return utils.Accumulate(l.Fields, func(f Field) uintptr { return f.Size })
}

// Total number of padding bytes
func (l *Layout) Padding() uintptr {
	return utils.Accumulate(l.Paddings, func(p Padding) uintptr { return p.Size })
}

// Size the record would have with its fields sorted by decreasing alignment,
// which is the most compact ordering.
func (l *Layout) CompactSize() uintptr {
	fields := slices.Clone(l.Fields)
	slices.SortStableFunc(fields, func(a, b Field) int {
		return int(b.Align) - int(a.Align)
	})

	var offset uintptr

	for _, f := range fields {
		offset = alignUp(offset, f.Align) + f.Size
	}

	return alignUp(offset, l.Align)
}

func alignUp(offset, align uintptr) uintptr {
	if align <= 1 {
		return offset
	}

	return (offset + align - 1) &^ (align - 1)
}

func (l *Layout) String() string {
	name := l.Name

	if name == "" {
		name = "struct"
	}

	return fmt.Sprintf("%v (size: %v, align: %v, fields: %v, padding: %v)", name, l.Size, l.Align, l.FieldsSize(), l.Padding())
}
