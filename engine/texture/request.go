package texture

import (
	"image/color"

	"github.com/Carmen-Shannon/pika-go/common"
	"golang.org/x/image/colornames"
)

// Pattern selects what a Request draws.
type Pattern int

const (
	// PatternChecker fills with the first color and paints the top-left and bottom-right quadrants with the second.
	PatternChecker Pattern = iota
	// PatternStripe fills with the first color and paints the top half with the second.
	PatternStripe
	// PatternCircle paints a ring of the second color on a background of the first.
	PatternCircle
	// PatternText draws centered text in the first color on a transparent background.
	PatternText
)

func (p Pattern) String() string {
	switch p {
	case PatternChecker:
		return "checker"
	case PatternStripe:
		return "stripe"
	case PatternCircle:
		return "circle"
	case PatternText:
		return "text"
	default:
		return "unknown"
	}
}

// Request describes one texture image to rasterize. Zero fields take the defaults of the pattern.
type Request struct {
	Pattern  Pattern
	Width    int
	Height   int
	Color1   color.Color
	Color2   color.Color
	Text     string
	FontSize float64
}

const defaultFontSize = 28

func (r Request) withDefaults() Request {
	width, height := 2, 2
	switch r.Pattern {
	case PatternCircle:
		width, height = 128, 128
	case PatternText:
		width, height = 128, 32
	}

	r.Width = common.Coalesce(r.Width, width)
	r.Height = common.Coalesce(r.Height, height)
	if r.Color1 == nil {
		r.Color1 = colornames.White
	}
	if r.Color2 == nil {
		r.Color2 = colornames.Gray
	}
	r.FontSize = common.Coalesce(r.FontSize, defaultFontSize)
	return r
}

// TextureOption adjusts a Request built by the Synthesizer pattern methods.
type TextureOption func(*Request)

// WithSize is an option builder that sets the image size.
//
// Parameters:
//   - width: the width in pixels
//   - height: the height in pixels
//
// Returns:
//   - TextureOption: a function that applies the size to a request
func WithSize(width, height int) TextureOption {
	return func(r *Request) {
		r.Width = width
		r.Height = height
	}
}

// WithColors is an option builder that sets the two pattern colors. Text is drawn in the first.
//
// Parameters:
//   - color1: the background, or the text color
//   - color2: the foreground of the pattern
//
// Returns:
//   - TextureOption: a function that applies the colors to a request
func WithColors(color1, color2 color.Color) TextureOption {
	return func(r *Request) {
		r.Color1 = color1
		r.Color2 = color2
	}
}

// WithFontSize is an option builder that sets the text size in points.
//
// Parameters:
//   - size: the font size
//
// Returns:
//   - TextureOption: a function that applies the font size to a request
func WithFontSize(size float64) TextureOption {
	return func(r *Request) {
		r.FontSize = size
	}
}
