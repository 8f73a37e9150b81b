package richtext

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// HorizontalFormatting specifies how lines are placed within the area width.
type HorizontalFormatting uint8

const (
	// HorzLeft aligns lines to the left edge (default).
	HorzLeft HorizontalFormatting = iota
	// HorzRight aligns lines to the right edge.
	HorzRight
	// HorzCentre centres lines.
	HorzCentre
	// HorzJustified stretches justifyable glyphs so lines fill the area width.
	HorzJustified

	// HorzWordWrapLeft is HorzLeft with word wrapping enabled.
	HorzWordWrapLeft
	// HorzWordWrapRight is HorzRight with word wrapping enabled.
	HorzWordWrapRight
	// HorzWordWrapCentre is HorzCentre with word wrapping enabled.
	HorzWordWrapCentre
	// HorzWordWrapJustified is HorzJustified with word wrapping enabled.
	HorzWordWrapJustified
)

// String returns the string representation of the formatting.
func (f HorizontalFormatting) String() string {
	switch f {
	case HorzLeft:
		return "LeftAligned"
	case HorzRight:
		return "RightAligned"
	case HorzCentre:
		return "CentreAligned"
	case HorzJustified:
		return "Justified"
	case HorzWordWrapLeft:
		return "WordWrapLeftAligned"
	case HorzWordWrapRight:
		return "WordWrapRightAligned"
	case HorzWordWrapCentre:
		return "WordWrapCentreAligned"
	case HorzWordWrapJustified:
		return "WordWrapJustified"
	default:
		return unknownStr
	}
}

// DecomposeHorizontalFormatting splits a word-wrapping formatting into its
// base alignment and the word wrap flag. Base alignments are returned as is.
func DecomposeHorizontalFormatting(f HorizontalFormatting) (base HorizontalFormatting, wordWrap bool) {
	switch f {
	case HorzWordWrapLeft:
		return HorzLeft, true
	case HorzWordWrapRight:
		return HorzRight, true
	case HorzWordWrapCentre:
		return HorzCentre, true
	case HorzWordWrapJustified:
		return HorzJustified, true
	case HorzLeft, HorzRight, HorzCentre, HorzJustified:
		return f, false
	default:
		return HorzLeft, false
	}
}

// VerticalFormatting specifies how a glyph is placed inside a taller line.
type VerticalFormatting uint8

const (
	// VertBottom aligns the glyph box with the line bottom (default).
	VertBottom VerticalFormatting = iota
	// VertCentre centres the glyph box vertically.
	VertCentre
	// VertTop aligns the glyph box with the line top.
	VertTop
	// VertStretched scales the glyph box to the line height.
	VertStretched
)

// String returns the string representation of the formatting.
func (f VerticalFormatting) String() string {
	switch f {
	case VertBottom:
		return "BottomAligned"
	case VertCentre:
		return "CentreAligned"
	case VertTop:
		return "TopAligned"
	case VertStretched:
		return "Stretched"
	default:
		return unknownStr
	}
}

// Direction is the base direction of a paragraph.
type Direction uint8

const (
	// DirectionLTR is left-to-right (default).
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left.
	DirectionRTL
	// DirectionAuto picks the direction of the first strong character.
	DirectionAuto
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LeftToRight"
	case DirectionRTL:
		return "RightToLeft"
	case DirectionAuto:
		return "Automatic"
	default:
		return unknownStr
	}
}

// composeHorizontalFormatting is the inverse of DecomposeHorizontalFormatting.
func composeHorizontalFormatting(base HorizontalFormatting, wordWrap bool) HorizontalFormatting {
	base, _ = DecomposeHorizontalFormatting(base)
	if !wordWrap {
		return base
	}
	return base + HorzWordWrapLeft
}
