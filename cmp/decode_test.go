package cmp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// header builds a 16-byte header followed by payload
func header(w, h int, flags byte, marker []byte, payload ...byte) []byte {
	b := make([]byte, headerSize)
	copy(b, Magic)
	b[2], b[3] = byte(w>>8), byte(w)
	b[4], b[5] = byte(h>>8), byte(h)
	b[6] = flags
	copy(b[offMarker:], marker)
	return append(b, payload...)
}

func TestDecodeUTF32(t *testing.T) {
	data := header(2, 1, flagUTF32, nil,
		0, 0, 0, 'A',
		0, 0, 0, 'B',
	)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Errorf("size = %dx%d, want 2x1", img.Width, img.Height)
	}
	if len(img.Cells) != 2 || img.Cells[0] != 'A' || img.Cells[1] != 'B' {
		t.Errorf("cells = %q, want [A B]", img.Cells)
	}
	if got := img.Read(); got != "AB" {
		t.Errorf("Read() = %q, want %q", got, "AB")
	}
}

func TestDecodeUTF16Grid(t *testing.T) {
	// 2x2 of box glyphs ┌┐ / └┘
	data := header(2, 2, flagUTF16, nil,
		0x25, 0x0C, 0x25, 0x10,
		0x25, 0x14, 0x25, 0x18,
	)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := img.Read(); got != "┌┐\n└┘" {
		t.Errorf("Read() = %q", got)
	}
	if img.At(1, 1) != '┘' {
		t.Errorf("At(1,1) = %q", img.At(1, 1))
	}
	if img.At(2, 0) != Transparent {
		t.Errorf("out of range cell should read as Transparent")
	}
}

func TestDecodeTransparency(t *testing.T) {
	tests := []struct {
		name   string
		flags  byte
		marker []byte
		cells  []byte
		unit   int
	}{
		{"UTF16", flagUTF16 | flagTransparent, []byte{0, '.'}, []byte{0, 'x', 0, '.', 0, 'y'}, 2},
		{"UTF32", flagUTF32 | flagTransparent, []byte{0, 0, 0, '.'}, []byte{0, 0, 0, 'x', 0, 0, 0, '.', 0, 0, 0, 'y'}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(header(3, 1, tt.flags, tt.marker, tt.cells...))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Flags.TransparentChar != '.' {
				t.Errorf("marker = %q, want '.'", img.Flags.TransparentChar)
			}
			want := []rune{'x', Transparent, 'y'}
			for i, c := range want {
				if img.Cells[i] != c {
					t.Errorf("cell %d = %d, want %d", i, img.Cells[i], c)
				}
			}
			// Read exposes the raw marker for inspection
			if got := img.Read(); got != "x.y" {
				t.Errorf("Read() = %q, want %q", got, "x.y")
			}
		})
	}
}

func TestReadSanitizesVisibleCellsOnly(t *testing.T) {
	img := &Image{
		Width:  3,
		Height: 1,
		Flags:  Flags{UTF32: true, Transparent: true, TransparentChar: 0x07},
		Cells:  []rune{0x1b, Transparent, 'z'},
	}
	if got := img.Read(); got != "␛\az" {
		t.Errorf("Read() = %q", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		format      bool
		unsupported bool
	}{
		{"Empty", nil, true, false},
		{"Bad magic", append([]byte("PK"), make([]byte, 20)...), true, false},
		{"Short header", []byte("CM\x00\x01"), true, false},
		{"Truncated payload", header(2, 2, flagUTF16, nil, 0, 'a', 0, 'b'), true, false},
		{"Code point out of range", header(1, 1, flagUTF32, nil, 0x7f, 0xff, 0xff, 0xff), true, false},
		{"Colored", header(1, 1, flagColored|flagUTF32, nil, 0, 0, 0, 'a'), false, true},
		{"Plain bytes", header(1, 1, 0, nil, 'a'), false, true},
		{"Plain transparent", header(1, 1, flagTransparent, []byte{'.'}, 'a'), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data)
			if err == nil {
				t.Fatalf("expected error, got image %+v", img)
			}
			if img != nil {
				t.Error("no partial image may accompany an error")
			}
			if IsFormat(err) != tt.format {
				t.Errorf("IsFormat(%v) = %v, want %v", err, IsFormat(err), tt.format)
			}
			if IsNotSupported(err) != tt.unsupported {
				t.Errorf("IsNotSupported(%v) = %v, want %v", err, IsNotSupported(err), tt.unsupported)
			}
		})
	}
}

func TestDecodeIsPure(t *testing.T) {
	data := header(2, 1, flagUTF16|flagTransparent, []byte{0, ' '}, 0, 'q', 0, ' ')
	a, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if a.Read() != b.Read() || a.Flags != b.Flags {
		t.Error("decoding the same bytes twice differs")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	flags := Flags{UTF16: true, Transparent: true, TransparentChar: '~'}
	src := FromText("ab~\nc", flags)
	if src.Width != 3 || src.Height != 2 {
		t.Fatalf("FromText size = %dx%d", src.Width, src.Height)
	}

	data, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Read() != "ab~\nc  " {
		t.Errorf("Read() = %q", got.Read())
	}
	if got.At(2, 0) != Transparent {
		t.Error("marker cell should decode as Transparent")
	}
}

func TestEncodeRejects(t *testing.T) {
	tests := []struct {
		name string
		img  *Image
	}{
		{"Colored", &Image{Width: 1, Height: 1, Flags: Flags{Colored: true, UTF32: true}, Cells: []rune{'a'}}},
		{"Cell count", &Image{Width: 2, Height: 1, Flags: Flags{UTF32: true}, Cells: []rune{'a'}}},
		{"Wide rune in UTF16", &Image{Width: 1, Height: 1, Flags: Flags{UTF16: true}, Cells: []rune{'🮰'}}},
		{"Transparent without flag", &Image{Width: 1, Height: 1, Flags: Flags{UTF32: true}, Cells: []rune{Transparent}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode(tt.img); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.cmp")
	if err := os.WriteFile(path, header(1, 1, flagUTF32, nil, 0, 1, 0xFB, 0xF0), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Read() != "🯰" {
		t.Errorf("Read() = %q", img.Read())
	}

	if _, err := Load(filepath.Join(dir, "missing.cmp")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.cmp")
	os.WriteFile(bad, []byte("nope"), 0o644)
	if _, err := Load(bad); !IsFormat(err) {
		t.Errorf("Load(bad) = %v, want FormatError", err)
	}
}
