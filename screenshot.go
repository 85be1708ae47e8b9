package charrow

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is the point size used when a font is loaded without one.
const defaultFontSize = 14

var (
	// DefaultForeground is the glyph color used when ScreenshotConfig.Foreground is nil.
	DefaultForeground = color.RGBA{229, 229, 229, 255}
	// DefaultBackground is the cell color used when ScreenshotConfig.Background is nil.
	DefaultBackground = color.RGBA{0, 0, 0, 255}
)

// FontFinder locates font files by name (useful for avoiding font library dependencies).
type FontFinder interface {
	// Find returns the filesystem path to a font file matching the given name.
	Find(name string) (string, error)
}

// ScreenshotConfig controls how a row is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil and FontName is empty, uses basicfont.Face7x13.
	Font font.Face

	// FontFinder is used to find fonts by name. Optional.
	FontFinder FontFinder

	// FontName is the font name to find using FontFinder.
	FontName string

	// FontSize is the point size when using FontFinder. Values <= 0 use 14.
	FontSize float64

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Foreground is the glyph color. If nil, uses DefaultForeground.
	Foreground *color.RGBA

	// Background is the cell color. If nil, uses DefaultBackground.
	Background *color.RGBA
}

// LoadFont opens the font file at path and builds a face of the given point size.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", path, err)
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader reads a whole font file from r; see LoadFontFromBytes.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes parses TrueType or OpenType data into a face of the given
// point size, rendered at 72 DPI so one point is one pixel of cell height.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		size = defaultFontSize
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build %.1fpt face: %w", size, err)
	}
	return face, nil
}

// rowPainter holds the resolved settings of a ScreenshotConfig.
type rowPainter struct {
	face       font.Face
	cellWidth  int
	cellHeight int
	fg         color.RGBA
	bg         color.RGBA
}

func newRowPainter(cfg *ScreenshotConfig) rowPainter {
	if cfg == nil {
		cfg = &ScreenshotConfig{}
	}

	face := cfg.Font
	if face == nil && cfg.FontFinder != nil && cfg.FontName != "" {
		// A font that cannot be found or parsed falls back to basicfont.
		if path, err := cfg.FontFinder.Find(cfg.FontName); err == nil {
			if loadedFace, err := LoadFont(path, cfg.FontSize); err == nil {
				face = loadedFace
			}
		}
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	p := rowPainter{
		face:       face,
		cellWidth:  cfg.CellWidth,
		cellHeight: cfg.CellHeight,
		fg:         DefaultForeground,
		bg:         DefaultBackground,
	}
	if p.cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		p.cellWidth = adv.Ceil()
		if p.cellWidth == 0 {
			p.cellWidth = 7 // fallback for basicfont
		}
	}
	if p.cellHeight == 0 {
		p.cellHeight = face.Metrics().Height.Ceil()
	}
	if cfg.Foreground != nil {
		p.fg = *cfg.Foreground
	}
	if cfg.Background != nil {
		p.bg = *cfg.Background
	}
	return p
}

// paint draws the cells in [from, to) with their top edge at y.
// A wide glyph is drawn once, from its leading cell. A trailing cell whose
// leading half lies before from, or was blanked, draws the glyph itself.
func (p rowPainter) paint(dst draw.Image, r *CharRow, from, to, y int) image.Rectangle {
	area := image.Rect(from*p.cellWidth, y, to*p.cellWidth, y+p.cellHeight)
	draw.Draw(dst, area, image.NewUniform(p.bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(p.fg),
		Face: p.face,
	}
	baseline := y + p.face.Metrics().Ascent.Ceil()
	for col := from; col < to; col++ {
		g := r.glyphs[col]
		if g == PaddingGlyph || (r.attributes[col].IsTrailing() && r.hasLeadingGlyph(col, from)) {
			continue
		}
		d.Dot = fixed.P(col*p.cellWidth, baseline)
		d.DrawString(string(g))
	}
	return area
}

// hasLeadingGlyph returns true if the leading half of the wide glyph that
// trails at col is painted in the same pass (starting at from).
func (r *CharRow) hasLeadingGlyph(col, from int) bool {
	lead := col - 1
	return lead >= from && r.attributes[lead].IsLeading() && r.glyphs[lead] != PaddingGlyph
}

// Screenshot renders the row to an RGBA image using default settings (basicfont, default colors).
func (r *CharRow) Screenshot() *image.RGBA {
	return r.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders every cell of the row to an RGBA image one cell tall.
func (r *CharRow) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	p := newRowPainter(cfg)
	img := image.NewRGBA(image.Rect(0, 0, r.width*p.cellWidth, p.cellHeight))
	p.paint(img, r, 0, r.width, 0)
	return img
}

// RedrawSpan repaints only the columns in [MeasureLeft, MeasureRight) of the
// row onto dst at pixel row y and returns the rectangle it touched.
// A blank row touches nothing and returns an empty rectangle.
func RedrawSpan(dst draw.Image, r *CharRow, y int, cfg *ScreenshotConfig) image.Rectangle {
	left, right := r.MeasureLeft(), r.MeasureRight()
	if left >= right {
		return image.Rectangle{}
	}
	return newRowPainter(cfg).paint(dst, r, left, right, y)
}
