package memory

import (
	"fmt"

	"github.com/Manu343726/sizeof/pkg/utils"
)

const PaddingFieldName = "padding"

// Returns the fields and padding runs of the layout as contiguous frame
// fields, sorted by offset.
func (l *Layout) Frame() []utils.AsciiFrameField {
	frame := make([]utils.AsciiFrameField, 0, len(l.Fields)+len(l.Paddings))

	for _, f := range l.Fields {
		// zero sized fields take no room in the diagram
		if f.Size == 0 {
			continue
		}

		frame = append(frame, utils.AsciiFrameField{
			Name:  fmt.Sprintf("%v %v", f.Name, f.Type),
			Begin: int(f.Offset),
			Width: int(f.Size),
		})
	}

	for _, p := range l.Paddings {
		frame = append(frame, utils.AsciiFrameField{
			Name:  PaddingFieldName,
			Begin: int(p.Offset),
			Width: int(p.Size),
		})
	}

	utils.SortFrameFields(frame)
	return frame
}

// Draws an ascii diagram of the layout in bytes, lower offsets first unless
// highestFirst is set
func (l *Layout) Draw(leftpad int, highestFirst bool) (string, error) {
	if l.Size == 0 {
		return "", nil
	}

	unitLayout := utils.AsciiFrameUnitLayout_LeftToRight
	if highestFirst {
		unitLayout = utils.AsciiFrameUnitLayout_RightToLeft
	}

	return utils.AsciiFrame(l.Frame(), int(l.Size), "bytes", unitLayout, leftpad)
}
