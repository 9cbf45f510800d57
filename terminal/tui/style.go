package tui

import (
	"sort"
	"strings"
)

// BoxStyle holds the eight glyphs of a box border
type BoxStyle struct {
	TopLeft, Top, TopRight string
	Left, Right            string
	BottomLeft, Bottom     string
	BottomRight            string
}

// String previews the style as a 3x3 box
func (b BoxStyle) String() string {
	var sb strings.Builder
	sb.WriteString(b.TopLeft + b.Top + b.TopRight + "\n")
	sb.WriteString(b.Left + " " + b.Right + "\n")
	sb.WriteString(b.BottomLeft + b.Bottom + b.BottomRight)
	return sb.String()
}

// SepStyle holds the three glyphs of a vertical separator between grouped
// buttons: top row, middle rows, bottom row
type SepStyle struct {
	Top, Middle, Bottom string
}

// String previews the separator as a 1x3 column
func (s SepStyle) String() string {
	return s.Top + "\n" + s.Middle + "\n" + s.Bottom
}

var (
	SquareBox    = BoxStyle{"┌", "─", "┐", "│", "│", "└", "─", "┘"}
	NullBox      = BoxStyle{"🮣", "─", "┐", "│", "│", "└", "─", "🮠"}
	ChamferedBox = BoxStyle{"🮣", "─", "🮢", "│", "│", "🮡", "─", "🮠"}
	RoundedBox   = BoxStyle{"╭", "─", "╮", "│", "│", "╰", "─", "╯"}
	DoubleBox    = BoxStyle{"╔", "═", "╗", "║", "║", "╚", "═", "╝"}
	HeavyBox     = BoxStyle{"┏", "━", "┓", "┃", "┃", "┗", "━", "┛"}
)

var (
	ConnectedSep = SepStyle{"┬", "│", "┴"}
	NotchSep     = SepStyle{"│", "│", "│"}
	DashedSep    = SepStyle{"╎", "╎", "╎"}
	DottedSep    = SepStyle{"┊", "┊", "┊"}
)

var boxStyles = map[string]BoxStyle{
	"square":    SquareBox,
	"null":      NullBox,
	"chamfered": ChamferedBox,
	"rounded":   RoundedBox,
	"double":    DoubleBox,
	"heavy":     HeavyBox,
}

var sepStyles = map[string]SepStyle{
	"connected": ConnectedSep,
	"notch":     NotchSep,
	"dashed":    DashedSep,
	"dotted":    DottedSep,
}

// BoxStyleByName looks up a catalogued box style
func BoxStyleByName(name string) (BoxStyle, bool) {
	s, ok := boxStyles[strings.ToLower(name)]
	return s, ok
}

// SepStyleByName looks up a catalogued separator style
func SepStyleByName(name string) (SepStyle, bool) {
	s, ok := sepStyles[strings.ToLower(name)]
	return s, ok
}

// BoxStyleNames returns the catalogued box style names, sorted
func BoxStyleNames() []string { return sortedKeys(boxStyles) }

// SepStyleNames returns the catalogued separator style names, sorted
func SepStyleNames() []string { return sortedKeys(sepStyles) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
