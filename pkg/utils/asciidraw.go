package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrInvalidFrame = errors.New("invalid ascii frame")

// Name given to the fields generated to fill the gaps between frame fields
const AsciiFrameGapName = "(unused)"

type AsciiFrameField struct {
	// Name of the field
	Name string

	// Units within the frame the field begins from
	Begin int

	// Field width
	Width int
}

// The last unit within the frame used by this field
func (f *AsciiFrameField) TopUnit() int {
	return f.PastTopUnit() - 1
}

// The first unit within the frame used by the next field
func (f *AsciiFrameField) PastTopUnit() int {
	return f.Begin + f.Width
}

// Sorts frame fields by position
func SortFrameFields(fields []AsciiFrameField) {
	slices.SortStableFunc(fields, func(a, b AsciiFrameField) int {
		return a.Begin - b.Begin
	})
}

type AsciiFrameUnitLayout uint

const (
	// Units increase left to right
	AsciiFrameUnitLayout_LeftToRight AsciiFrameUnitLayout = iota
	// Units increase right to left
	AsciiFrameUnitLayout_RightToLeft
)

type asciiFrame struct {
	fields     []AsciiFrameField
	frameWidth int
	unit       string
	leftpad    int
	layout     AsciiFrameUnitLayout
}

func (f *asciiFrame) TopUnit() int {
	return f.frameWidth - 1
}

// A column of the diagram, one per field
type asciiFrameColumn struct {
	index  string
	name   string
	width  string
	length int
}

// Writes text centered in length chars, filling both sides with filler.
// decoration is the number of chars the caller writes around the row.
func writeCentered(text string, decoration int, filler string, length int, builder *strings.Builder) {
	fill := length - len(text) - decoration
	left := fill / 2

	builder.WriteString(strings.Repeat(filler, left))
	builder.WriteString(text)
	builder.WriteString(strings.Repeat(filler, fill-left))
}

func (f *asciiFrame) columns() []asciiFrameColumn {
	const arrowTipsLength = 4

	columns := make([]asciiFrameColumn, len(f.fields))

	for i, field := range ConditionallyReversedRefs(f.fields, f.layout == AsciiFrameUnitLayout_RightToLeft) {
		column := &columns[i]

		if f.layout == AsciiFrameUnitLayout_RightToLeft {
			column.index = fmt.Sprint(field.TopUnit())
		} else {
			column.index = fmt.Sprint(field.Begin)
		}

		column.name = fmt.Sprintf(" %v ", field.Name)
		column.width = fmt.Sprintf(" %v %v ", field.Width, f.unit)
		column.length = Max([]int{len(column.index), len(column.name), arrowTipsLength + len(column.width)})
	}

	return columns
}

func (f *asciiFrame) Draw() string {
	var indices, border, body, widths strings.Builder

	leftpad := strings.Repeat(" ", f.leftpad)

	for _, row := range []*strings.Builder{&indices, &border, &body, &widths} {
		row.WriteString(leftpad)
	}

	for _, column := range f.columns() {
		indices.WriteString(column.index)
		indices.WriteString(strings.Repeat(" ", column.length-len(column.index)+1))
		border.WriteString("+")
		border.WriteString(strings.Repeat("-", column.length))
		body.WriteString("|")
		writeCentered(column.name, 0, " ", column.length, &body)
		widths.WriteString(" <-")
		writeCentered(column.width, 4, "-", column.length, &widths)
		widths.WriteString("->")
	}

	if f.layout == AsciiFrameUnitLayout_LeftToRight {
		indices.WriteString(fmt.Sprint(f.TopUnit()))
	} else {
		indices.WriteString("0")
	}

	border.WriteString("+")
	body.WriteString("|")
	widths.WriteString(" ")

	var result strings.Builder

	for _, row := range []*strings.Builder{&indices, &border, &body, &border, &widths} {
		result.WriteString(row.String())
		result.WriteString("\n")
	}

	return result.String()
}

func fillAsciiFrameGaps(fields []AsciiFrameField, frameWidth int) ([]AsciiFrameField, error) {
	result := make([]AsciiFrameField, 0, len(fields))
	currentUnit := 0

	for _, field := range fields {
		if field.Width <= 0 {
			return nil, MakeError(ErrInvalidFrame, "field '%v' has non-positive width %v", field.Name, field.Width)
		}

		if field.Begin > currentUnit {
			result = append(result, AsciiFrameField{
				Name:  AsciiFrameGapName,
				Begin: currentUnit,
				Width: field.Begin - currentUnit,
			})
		} else if field.Begin < currentUnit {
			return nil, MakeError(ErrInvalidFrame, "field '%v' begins at %v, overlapping the previous field (fields must be sorted by position)", field.Name, field.Begin)
		}

		result = append(result, field)

		currentUnit = field.PastTopUnit()
	}

	if currentUnit < frameWidth {
		result = append(result, AsciiFrameField{
			Name:  AsciiFrameGapName,
			Begin: currentUnit,
			Width: frameWidth - currentUnit,
		})
	}

	if len(result) == 0 {
		return nil, MakeError(ErrInvalidFrame, "empty frame")
	}

	return result, nil
}

// Prints an ascii diagram of a binary frame composed of contiguous fields of different unit lenghts
func AsciiFrame(fields []AsciiFrameField, frameWidth int, unit string, layout AsciiFrameUnitLayout, leftpad int) (string, error) {
	allFields, err := fillAsciiFrameGaps(fields, frameWidth)
	if err != nil {
		return "", err
	}

	frame := asciiFrame{
		fields:     allFields,
		frameWidth: allFields[len(allFields)-1].PastTopUnit(),
		unit:       unit,
		leftpad:    leftpad,
		layout:     layout,
	}

	return frame.Draw(), nil
}
