// Package element defines overlay elements and the edits applied to them.
package element

import (
	"errors"
	"math"

	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/constraint"
	"github.com/PapaFaly666/printalma-website-dep-sub009/internal/delimit"
	"github.com/google/uuid"
)

// Kind identifies the element variant.
type Kind string

const (
	// KindText is a text layer.
	KindText Kind = "text"
	// KindImage is an image layer.
	KindImage Kind = "image"
)

const (
	defaultFontSize   = 24
	defaultFontFamily = "Arial"
	defaultColor      = "#000000"
	// initialFill is the share of the region an element may cover when created.
	initialFill = 0.5
)

// ErrNoRegion is returned when an element is created without a usable delimitation.
var ErrNoRegion = errors.New("delimitation is not set")

// Element is a positioned, sized, rotated overlay.
type Element struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	// X and Y are the center as a fraction of the viewport size.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Width and Height are in reference units.
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Rotation float64     `json:"rotation"`
	ZOrder   int         `json:"zOrder"`
	Text     *TextProps  `json:"text,omitempty"`
	Image    *ImageProps `json:"image,omitempty"`
}

// TextProps holds text content, font scaling state and style.
type TextProps struct {
	Content  string  `json:"content"`
	FontSize float64 `json:"fontSize"`
	// BaseFontSize and BaseWidth are recorded at the last manual font size edit.
	BaseFontSize float64 `json:"baseFontSize"`
	BaseWidth    float64 `json:"baseWidth"`
	Curve        int     `json:"curve"`
	FontFamily   string  `json:"fontFamily"`
	Color        string  `json:"color"`
	FontWeight   string  `json:"fontWeight"`
	Align        string  `json:"align"`
}

// ImageProps holds the image source and commerce metadata.
type ImageProps struct {
	SourceURL     string  `json:"sourceUrl"`
	NaturalWidth  float64 `json:"naturalWidth"`
	NaturalHeight float64 `json:"naturalHeight"`
	DesignID      string  `json:"designId,omitempty"`
	DesignName    string  `json:"designName,omitempty"`
	Price         float64 `json:"price,omitempty"`
}

// Placement returns the geometry used by the constraint engine.
func (e Element) Placement() constraint.Placement {
	return constraint.Placement{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height, Rotation: e.Rotation}
}

// IsText reports whether e is a text element.
func (e Element) IsText() bool {
	return e.Kind == KindText && e.Text != nil
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	out := e
	if e.Text != nil {
		t := *e.Text
		out.Text = &t
	}
	if e.Image != nil {
		img := *e.Image
		out.Image = &img
	}
	return out
}

// NewText creates a straight, unrotated text element centered in d.
func NewText(content string, fontSize float64, zOrder int, d delimit.Delimitation) (Element, error) {
	if !d.Valid() {
		return Element{}, ErrNoRegion
	}
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	// Rough single-line box: 0.6em per glyph, 1.2em line height.
	w := math.Max(float64(len([]rune(content)))*fontSize*0.6, fontSize)
	h := fontSize * 1.2
	if scale := fitScale(w, h, d); scale < 1 {
		w *= scale
		h *= scale
		fontSize *= scale
	}
	x, y := d.CenterFraction()
	return Element{
		ID:     uuid.NewString(),
		Kind:   KindText,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		ZOrder: zOrder,
		Text: &TextProps{
			Content:      content,
			FontSize:     fontSize,
			BaseFontSize: fontSize,
			BaseWidth:    w,
			FontFamily:   defaultFontFamily,
			Color:        defaultColor,
			FontWeight:   "normal",
			Align:        "center",
		},
	}, nil
}

// NewImage creates an unrotated image element centered in d, keeping the natural aspect ratio.
func NewImage(img ImageProps, zOrder int, d delimit.Delimitation) (Element, error) {
	if !d.Valid() {
		return Element{}, ErrNoRegion
	}
	if img.NaturalWidth <= 0 || img.NaturalHeight <= 0 {
		return Element{}, errors.New("image natural size must be positive")
	}
	w, h := img.NaturalWidth, img.NaturalHeight
	scale := fitScale(w, h, d)
	x, y := d.CenterFraction()
	return Element{
		ID:     uuid.NewString(),
		Kind:   KindImage,
		X:      x,
		Y:      y,
		Width:  w * scale,
		Height: h * scale,
		ZOrder: zOrder,
		Image:  &img,
	}, nil
}

// fitScale returns the factor that fits w x h into the initial share of d.
func fitScale(w, h float64, d delimit.Delimitation) float64 {
	return math.Min(d.Width*initialFill/w, d.Height*initialFill/h)
}
