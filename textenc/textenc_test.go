package textenc

import "testing"

func TestDetectBOM(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantEnc Encoding
		wantLen int
	}{
		{"none", []byte("abc"), UTF8, 0},
		{"utf8", append([]byte{0xEF, 0xBB, 0xBF}, "abc"...), UTF8, 3},
		{"utf16le", append([]byte{0xFF, 0xFE}, 'a', 0), UTF16LE, 2},
		{"utf16be", append([]byte{0xFE, 0xFF}, 0, 'a'), UTF16BE, 2},
		{"utf32le", append([]byte{0xFF, 0xFE, 0x00, 0x00}, 'a', 0, 0, 0), UTF32LE, 4},
		{"utf32be", append([]byte{0x00, 0x00, 0xFE, 0xFF}, 0, 0, 0, 'a'), UTF32BE, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, n := DetectBOM(tt.data)
			if enc != tt.wantEnc || n != tt.wantLen {
				t.Errorf("DetectBOM(%s) = %v, %d; want %v, %d", tt.name, enc, n, tt.wantEnc, tt.wantLen)
			}
		})
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	s := "hello, 世界"
	for _, enc := range []Encoding{UTF16LE, UTF16BE} {
		b, err := Encode(s, enc)
		if err != nil {
			t.Fatalf("Encode(%s): %v", enc, err)
		}
		got, err := Decode(b, enc)
		if err != nil {
			t.Fatalf("Decode(%s): %v", enc, err)
		}
		if got != s {
			t.Errorf("round trip via %s: got %q, want %q", enc, got, s)
		}
	}
}

func TestUTF32RoundTrip(t *testing.T) {
	s := "hello \U0001F600 world"
	for _, enc := range []Encoding{UTF32LE, UTF32BE} {
		b, err := Encode(s, enc)
		if err != nil {
			t.Fatalf("Encode(%s): %v", enc, err)
		}
		got, err := Decode(b, enc)
		if err != nil {
			t.Fatalf("Decode(%s): %v", enc, err)
		}
		if got != s {
			t.Errorf("round trip via %s: got %q, want %q", enc, got, s)
		}
	}
}

func TestDecodeUTF8_RejectsInvalid(t *testing.T) {
	if _, err := Decode([]byte{0xFF, 0xFE, 0xFD}, UTF8); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestJoinLines(t *testing.T) {
	if got := JoinLines([]string{"a", "b", "c"}); got != "a\nb\nc" {
		t.Errorf("JoinLines = %q", got)
	}
}
