package tui

import "testing"

func TestStyleLookup(t *testing.T) {
	if s, ok := BoxStyleByName("Rounded"); !ok || s != RoundedBox {
		t.Errorf("BoxStyleByName(Rounded) = %v, %v", s, ok)
	}
	if _, ok := BoxStyleByName("wavy"); ok {
		t.Error("unknown box style should not resolve")
	}
	if s, ok := SepStyleByName("connected"); !ok || s != ConnectedSep {
		t.Errorf("SepStyleByName(connected) = %v, %v", s, ok)
	}
	if got := len(BoxStyleNames()); got != 6 {
		t.Errorf("BoxStyleNames has %d entries", got)
	}
	if got := SepStyleNames(); len(got) != 4 || got[0] != "connected" {
		t.Errorf("SepStyleNames = %v", got)
	}
}

func TestStylePreview(t *testing.T) {
	if got, want := SquareBox.String(), "┌─┐\n│ │\n└─┘"; got != want {
		t.Errorf("SquareBox = %q, want %q", got, want)
	}
	if got, want := ChamferedBox.String(), "🮣─🮢\n│ │\n🮡─🮠"; got != want {
		t.Errorf("ChamferedBox = %q, want %q", got, want)
	}
	if got, want := DottedSep.String(), "┊\n┊\n┊"; got != want {
		t.Errorf("DottedSep = %q, want %q", got, want)
	}
}
