package tui

// Group is an ordered list of widgets; it renders members in order, so
// list order is z-order
type Group []Widget

// Compose builds a Group from widgets and groups. Nested groups are
// flattened in place and nil widgets dropped, so Compose(a, Compose(b, c))
// equals Compose(Compose(a, b), c).
func Compose(parts ...Widget) Group {
	out := make(Group, 0, len(parts))
	for _, p := range parts {
		out = appendFlat(out, p)
	}
	return out
}

func appendFlat(dst Group, w Widget) Group {
	switch v := w.(type) {
	case nil:
		return dst
	case Group:
		for _, c := range v {
			dst = appendFlat(dst, c)
		}
		return dst
	default:
		return append(dst, w)
	}
}

func (g Group) Render(s *Screen) {
	for _, w := range g {
		w.Render(s)
	}
}
