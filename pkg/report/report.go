// Package report computes the storage size of a fixed set of sample
// variables and writes it in a human or machine readable form.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/sizeof/pkg/memory"
	"github.com/Manu343726/sizeof/pkg/utils"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Output format of a report
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// All supported formats, default first
var Formats = []Format{FormatText, FormatYAML}

// Parses a format name. The empty string selects the text format.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}

	for _, format := range Formats {
		if strings.EqualFold(name, string(format)) {
			return format, nil
		}
	}

	return "", utils.MakeError(ErrUnknownFormat, "'%v' (expected one of %v)", name, utils.FormatSlice(Formats, ", "))
}

// Record sample: an integer field followed by a character field
type Record struct {
	A int32
	B byte
}

// Storage size of a sample variable
type Sample struct {
	// Label used in the report, named after the equivalent C type
	Label string `yaml:"label"`

	// Go type of the sample variable
	Type string `yaml:"type"`

	// Storage size in bytes
	Size uintptr `yaml:"size"`

	// The sample variable itself
	Value any `yaml:"-"`
}

// Computes the size of the sample variables with the given method, in report order
func Samples(method memory.Method) []Sample {
	var (
		a int32
		b float64
		c byte
		d Record
	)

	return []Sample{
		{Label: "int", Type: fmt.Sprintf("%T", a), Size: memory.SizeOf(method, &a), Value: a},
		{Label: "double", Type: fmt.Sprintf("%T", b), Size: memory.SizeOf(method, &b), Value: b},
		{Label: "char", Type: fmt.Sprintf("%T", c), Size: memory.SizeOf(method, &c), Value: c},
		{Label: "struct", Type: fmt.Sprintf("%T", d), Size: memory.SizeOf(method, &d), Value: d},
	}
}

// Returns the sample with the given label
func Find(samples []Sample, label string) (Sample, bool) {
	for _, sample := range samples {
		if sample.Label == label {
			return sample, true
		}
	}

	return Sample{}, false
}

// Writes one "Size of <label>: <N> bytes" line per sample
func Write(w io.Writer, samples []Sample) error {
	for _, sample := range samples {
		if _, err := fmt.Fprintf(w, "Size of %s: %d bytes\n", sample.Label, sample.Size); err != nil {
			return err
		}
	}

	return nil
}

// Writes the samples as a YAML sequence
func WriteYAML(w io.Writer, samples []Sample) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(samples); err != nil {
		return err
	}

	return encoder.Close()
}

// Writes the samples in the given format
func WriteFormat(w io.Writer, format Format, samples []Sample) error {
	switch format {
	case FormatText:
		return Write(w, samples)
	case FormatYAML:
		return WriteYAML(w, samples)
	default:
		return utils.MakeError(ErrUnknownFormat, "'%v'", format)
	}
}
