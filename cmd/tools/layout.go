package tools

import (
	"fmt"
	"io"
	"os"

	"github.com/Manu343726/sizeof/pkg/config"
	"github.com/Manu343726/sizeof/pkg/logging"
	"github.com/Manu343726/sizeof/pkg/memory"
	"github.com/Manu343726/sizeof/pkg/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	colorHeader  = color.New(color.FgWhite, color.Bold, color.Underline)
	colorValue   = color.New(color.FgCyan, color.Bold)
	colorPadding = color.New(color.FgHiBlack)
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Draw the memory layout of the record sample",
	Long: `Draws the memory layout of the record sample, field by field, including
the padding bytes inserted to satisfy the alignment of the record.
Offsets grow left to right unless --reverse is given.

By default the diagram is written to stdout, but it can be redirected to a file using the --output flag.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	ToolsCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the layout is dumped to stdout.")
	layoutCmd.Flags().BoolP("reverse", "r", false, "Draw the highest offset first.")
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	sample, _ := report.Find(report.Samples(cfg.SizeMethod()), "struct")

	layout, err := memory.LayoutOf(sample.Value)
	if err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Debug("record layout", "layout", layout.String())

	reverse, _ := cmd.Flags().GetBool("reverse")
	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile == "" {
		return WriteLayout(cmd.OutOrStdout(), sample, &layout, reverse)
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	// no escape sequences in files
	defer func(noColor bool) { color.NoColor = noColor }(color.NoColor)
	color.NoColor = true

	return WriteLayout(file, sample, &layout, reverse)
}

// Writes the layout diagram of a sample, followed by a size summary
func WriteLayout(w io.Writer, sample report.Sample, layout *memory.Layout, highestFirst bool) error {
	diagram, err := layout.Draw(0, highestFirst)
	if err != nil {
		return err
	}

	colorHeader.Fprintf(w, "%v (%v)", sample.Label, sample.Type)
	fmt.Fprintln(w)
	fmt.Fprint(w, diagram)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "size:      %v bytes\n", colorValue.Sprint(sample.Size))
	fmt.Fprintf(w, "alignment: %v bytes\n", colorValue.Sprint(layout.Align))
	fmt.Fprintf(w, "fields:    %v bytes\n", colorValue.Sprint(layout.FieldsSize()))
	fmt.Fprintf(w, "padding:   %v bytes\n", colorPadding.Sprint(layout.Padding()))
	fmt.Fprintf(w, "compact:   %v bytes\n", colorValue.Sprint(layout.CompactSize()))

	return nil
}
