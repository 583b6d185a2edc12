package modal

import "strings"

// Size selects the width of the dialog box.
type Size string

const (
	SizeSmall      Size = "small"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra-large"

	// DefaultSize is used when no size is given.
	DefaultSize = SizeExtraLarge
)

// Position selects the vertical placement of the dialog box.
type Position string

const (
	PositionTop    Position = "top"
	PositionCenter Position = "center"
	PositionBottom Position = "bottom"

	// DefaultPosition is used when no position is given.
	DefaultPosition = PositionCenter
)

// Class tokens emitted for each size and position. Small and top have none.
const (
	ClassLarge      = "modal-lg"
	ClassExtraLarge = "modal-xl"
	ClassCentered   = "modal-dialog-centered"
	ClassBottom     = "modal-dialog-bottom"
)

var sizeClasses = map[Size]string{
	SizeSmall:      "",
	SizeLarge:      ClassLarge,
	SizeExtraLarge: ClassExtraLarge,
}

var positionClasses = map[Position]string{
	PositionTop:    "",
	PositionCenter: ClassCentered,
	PositionBottom: ClassBottom,
}

var sizeAliases = map[string]Size{
	"sm":          SizeSmall,
	"small":       SizeSmall,
	"lg":          SizeLarge,
	"large":       SizeLarge,
	"xl":          SizeExtraLarge,
	"extra-large": SizeExtraLarge,
	"extralarge":  SizeExtraLarge,
}

// Sizes lists the recognized sizes, smallest first.
func Sizes() []Size { return []Size{SizeSmall, SizeLarge, SizeExtraLarge} }

// Positions lists the recognized positions, top to bottom.
func Positions() []Position { return []Position{PositionTop, PositionCenter, PositionBottom} }

// ParseSize maps a user-facing name ("sm", "lg", "xl" or the long form) to a
// Size. The empty string yields DefaultSize. Unrecognized names are returned
// unchanged with ok=false; they render without a size class.
func ParseSize(s string) (size Size, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSize, true
	}
	if size, ok := sizeAliases[s]; ok {
		return size, true
	}
	return Size(s), false
}

// ParsePosition maps a name to a Position. The empty string yields
// DefaultPosition. Unrecognized names are returned unchanged with ok=false.
func ParsePosition(s string) (pos Position, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPosition, true
	}
	p := Position(s)
	if _, ok := positionClasses[p]; ok {
		return p, true
	}
	return p, false
}

// Valid reports whether s is a recognized size.
func (s Size) Valid() bool {
	_, ok := sizeClasses[s]
	return ok
}

// Valid reports whether p is a recognized position.
func (p Position) Valid() bool {
	_, ok := positionClasses[p]
	return ok
}

// SizeClass returns the class token for size, or "" for small and unknown sizes.
func SizeClass(size Size) string {
	return sizeClasses[size]
}

// PositionClass returns the class token for pos, or "" for top and unknown positions.
func PositionClass(pos Position) string {
	return positionClasses[pos]
}
