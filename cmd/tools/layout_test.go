package tools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/sizeof/pkg/memory"
	"github.com/Manu343726/sizeof/pkg/report"
	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordLayout = "" +
	`0             4             5             7
+-------------+-------------+-------------+
|   A int32   |   B uint8   |   padding   |
+-------------+-------------+-------------+
 <- 4 bytes -> <- 1 bytes -> <- 3 bytes -> 
`

func recordSample(t *testing.T) (report.Sample, memory.Layout) {
	t.Helper()

	sample, ok := report.Find(report.Samples(memory.MethodSizeof), "struct")
	require.True(t, ok)

	layout, err := memory.LayoutOf(sample.Value)
	require.NoError(t, err)

	return sample, layout
}

func disableColor(t *testing.T) {
	t.Helper()

	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })
	color.NoColor = true
}

func TestWriteLayout(t *testing.T) {
	disableColor(t)
	sample, layout := recordSample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLayout(&buf, sample, &layout, false))

	assert.Equal(t, "struct (report.Record)\n"+
		recordLayout+
		"\n"+
		"size:      8 bytes\n"+
		"alignment: 4 bytes\n"+
		"fields:    5 bytes\n"+
		"padding:   3 bytes\n"+
		"compact:   8 bytes\n",
		buf.String())
}

func TestLayoutCommand_OutputFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	output := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, layoutCmd.Flags().Set("output", output))
	t.Cleanup(func() { layoutCmd.Flags().Set("output", "") })

	require.NoError(t, runLayout(layoutCmd, nil))

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(contents), recordLayout)
	assert.NotContains(t, string(contents), "\x1b[")
}

func TestWriteLayout_HighestOffsetFirst(t *testing.T) {
	disableColor(t)
	sample, layout := recordSample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteLayout(&buf, sample, &layout, true))

	assert.Contains(t, buf.String(), ""+
		`7             4             3             0
+-------------+-------------+-------------+
|   padding   |   B uint8   |   A int32   |
+-------------+-------------+-------------+
 <- 3 bytes -> <- 1 bytes -> <- 4 bytes -> 
`)
}

func TestLayoutCommand_RestoresColor(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })
	color.NoColor = false

	require.NoError(t, layoutCmd.Flags().Set("output", filepath.Join(t.TempDir(), "layout.txt")))
	t.Cleanup(func() { layoutCmd.Flags().Set("output", "") })

	require.NoError(t, runLayout(layoutCmd, nil))
	assert.False(t, color.NoColor)
}
