package graphics

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextStyle describes how text is measured and drawn.
type TextStyle struct {
	// Face supplies glyph metrics. Nil uses DefaultFace.
	Face  font.Face
	Color Color
}

// DefaultFace returns the bundled fixed-width face.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// TextLine is a single laid-out line.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains the measured lines of a paragraph.
type TextLayout struct {
	Lines      []TextLine
	Width      float64
	Height     float64
	LineHeight float64
	Ascent     float64
	Descent    float64
}

// LayoutText breaks text into lines at newlines and, when maxWidth is
// positive and finite, at spaces so that each line fits. A single word
// wider than maxWidth keeps its own line.
func LayoutText(text string, style TextStyle, maxWidth float64) *TextLayout {
	face := style.Face
	if face == nil {
		face = DefaultFace()
	}
	metrics := face.Metrics()
	layout := &TextLayout{
		LineHeight: fixedToFloat(metrics.Height),
		Ascent:     fixedToFloat(metrics.Ascent),
		Descent:    fixedToFloat(metrics.Descent),
	}
	wrap := maxWidth > 0 && !math.IsInf(maxWidth, 1)
	for _, paragraph := range strings.Split(text, "\n") {
		if !wrap {
			layout.addLine(face, paragraph)
			continue
		}
		layout.wrapParagraph(face, paragraph, maxWidth)
	}
	layout.Height = float64(len(layout.Lines)) * layout.LineHeight
	return layout
}

// MeasureText returns the advance width of a single line.
func MeasureText(face font.Face, text string) float64 {
	if face == nil {
		face = DefaultFace()
	}
	return fixedToFloat(font.MeasureString(face, text))
}

func (l *TextLayout) wrapParagraph(face font.Face, paragraph string, maxWidth float64) {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		l.addLine(face, "")
		return
	}
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if MeasureText(face, candidate) > maxWidth {
			l.addLine(face, line)
			line = w
			continue
		}
		line = candidate
	}
	l.addLine(face, line)
}

func (l *TextLayout) addLine(face font.Face, text string) {
	w := MeasureText(face, text)
	l.Lines = append(l.Lines, TextLine{Text: text, Width: w})
	if w > l.Width {
		l.Width = w
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
