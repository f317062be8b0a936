package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/bubblesheet-mcp/internal/sheet"
)

// Overlay draws the decoded answer grid on top of a page's rectified
// canvas: thin grid lines at every cell boundary, a thick colored frame
// around each decoded selection, and a question-number label at the
// start of each row. Each option column gets its own frame color so a
// mis-registered grid is visible at a glance.
//
// gridHex sets the grid line color as "#RRGGBB"; empty or unparseable
// values fall back to red. Ambiguous and unanswered questions get no
// frame; the absence is the diagnostic.
func Overlay(result *sheet.PageResult, gridHex string) (*image.RGBA, error) {
	if result.Err != nil {
		return nil, fmt.Errorf("cannot render a faulted page: %w", result.Err)
	}
	if result.Rectified == nil {
		return nil, fmt.Errorf("page %d has no rectified canvas", result.Page)
	}

	bounds := result.Rectified.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, result.Rectified, bounds.Min, draw.Src)

	questions := result.Type.Questions()
	blocks := result.Type.Blocks()

	gridColor := color.RGBA{R: 255, A: 255}
	if parsed, err := colorful.Hex(gridHex); err == nil {
		r, g, b := parsed.RGB255()
		gridColor = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	palette := optionPalette()

	for q := 1; q <= questions; q++ {
		answer := result.Answers[q-1]
		for opt := 0; opt < sheet.OptionsPerQuestion; opt++ {
			cell, err := sheet.CellRect(bounds, questions, blocks, q, opt)
			if err != nil {
				return nil, err
			}
			drawFrame(canvas, cell, gridColor, 1)
			if opt == 0 {
				drawLabel(canvas, cell.Min.X+3, cell.Min.Y+3, strconv.Itoa(q))
			}
			if int(answer) == opt {
				drawFrame(canvas, cell.Inset(2), palette[opt], 3)
			}
		}
	}

	return canvas, nil
}

// optionPalette returns one saturated, mutually distinct color per
// option column.
func optionPalette() []color.RGBA {
	happy := colorful.FastHappyPalette(sheet.OptionsPerQuestion)
	out := make([]color.RGBA, len(happy))
	for i, c := range happy {
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// drawFrame outlines a rectangle with the given stroke thickness,
// clipped to the canvas.
func drawFrame(img *image.RGBA, rect image.Rectangle, c color.RGBA, thickness int) {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return
	}
	for t := 0; t < thickness; t++ {
		inner := rect.Inset(t)
		if inner.Empty() {
			return
		}
		for x := inner.Min.X; x < inner.Max.X; x++ {
			img.SetRGBA(x, inner.Min.Y, c)
			img.SetRGBA(x, inner.Max.Y-1, c)
		}
		for y := inner.Min.Y; y < inner.Max.Y; y++ {
			img.SetRGBA(inner.Min.X, y, c)
			img.SetRGBA(inner.Max.X-1, y, c)
		}
	}
}

// drawLabel renders text at (x, y) in a fixed 7x13 face over a white
// backing strip so the label stays readable on dark scans.
func drawLabel(img *image.RGBA, x, y int, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	backing := image.Rect(x-1, y-1, x+width+1, y+face.Height+1).Intersect(img.Bounds())
	draw.Draw(img, backing, image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	drawer.DrawString(text)
}
