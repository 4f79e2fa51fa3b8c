package bytestring

import (
	"bytes"
	"testing"
)

func TestCursorSkipAndBytes(t *testing.T) {
	c := NewCursor([]byte{22, 33, 44})
	if err := c.Skip(1, "field"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	b, err := c.Bytes(2, "field")
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Equal(b, []byte{33, 44}) {
		t.Fatalf("miscompare after Bytes(): %v", b)
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after consuming every byte")
	}
	if err := c.Skip(1, "field"); err == nil {
		t.Fatal("expected underflow skipping past the end")
	}
	if _, err := c.Bytes(1, "field"); err == nil {
		t.Fatal("expected underflow reading past the end")
	}
}

func TestCursorByte(t *testing.T) {
	c := NewCursor([]byte{22, 33})
	b, err := c.Byte("field")
	if err != nil || b != 22 {
		t.Fatalf("Byte case 0: want 22, have %v %v", b, err)
	}
	b, err = c.Byte("field")
	if err != nil || b != 33 {
		t.Fatalf("Byte case 1: want 33, have %v %v", b, err)
	}
	if _, err := c.Byte("field"); err == nil {
		t.Fatal("expected underflow reading past the end")
	}
}

func TestCursorReadRest(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if err := c.Skip(1, "field"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	rest := c.ReadRest()
	if !bytes.Equal(rest, []byte{2, 3}) {
		t.Fatalf("miscompare after ReadRest(): %v", rest)
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after ReadRest()")
	}
}

var compactSizeTests = []struct {
	in       []byte
	ok       bool
	expected uint64
}{
	/* 00 */ {[]byte{}, false, 0},
	/* 01 */ {[]byte{43}, true, 43},
	/* 02 */ {[]byte{252}, true, 252},
	/* 03 */ {[]byte{253, 1, 0}, false, 0}, // 1 < minSize (253)
	/* 04 */ {[]byte{253, 252, 0}, false, 0}, // 252 < minSize (253)
	/* 05 */ {[]byte{253, 253, 0}, true, 253},
	/* 06 */ {[]byte{253, 255, 255}, true, 0xffff},
	/* 07 */ {[]byte{254, 0xff, 0xff, 0, 0}, false, 0}, // 0xffff < minSize
	/* 08 */ {[]byte{254, 0, 0, 1, 0}, true, 0x00010000},
	/* 09 */ {[]byte{254, 7, 0, 1, 0}, true, 0x00010007},
	/* 10 */ {[]byte{254, 0, 0, 0, 2}, true, 0x02000000},
	/* 11 */ {[]byte{254, 1, 0, 0, 2}, false, 0}, // > MaxCompactSize
	/* 12 */ {[]byte{255, 0, 0, 0, 2, 0, 0, 0, 0}, false, 0},
}

func TestCursorCompactSize(t *testing.T) {
	for i, tt := range compactSizeTests {
		c := NewCursor(tt.in)
		v, err := c.CompactSize("field")
		if ok := err == nil; ok != tt.ok {
			t.Fatalf("CompactSize case %d: want ok=%v, have err=%v", i, tt.ok, err)
		}
		if tt.ok && v != tt.expected {
			t.Fatalf("CompactSize case %d: want %v, have %v", i, tt.expected, v)
		}
	}
}

func TestCursorCompactBytes(t *testing.T) {
	c := NewCursor([]byte{3, 55, 66, 77, 2, 88, 99})
	v, err := c.CompactBytes("field")
	if err != nil {
		t.Fatalf("CompactBytes failed: %v", err)
	}
	if !bytes.Equal(v, []byte{55, 66, 77}) {
		t.Fatalf("miscompare after CompactBytes(): %v", v)
	}
	v, err = c.CompactBytes("field")
	if err != nil {
		t.Fatalf("CompactBytes failed: %v", err)
	}
	if !bytes.Equal(v, []byte{88, 99}) {
		t.Fatalf("miscompare after CompactBytes(): %v", v)
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after consuming every byte")
	}
	if _, err := c.CompactBytes("field"); err == nil {
		t.Fatal("expected underflow reading past the end")
	}

	// length prefix claims more data than follows.
	c = NewCursor([]byte{3, 55, 66})
	if _, err := c.CompactBytes("field"); err == nil {
		t.Fatal("expected underflow when the prefixed length exceeds what follows")
	}
}

func TestCursorShortString(t *testing.T) {
	c := NewCursor([]byte{3, 'a', 'b', 'c', 0})
	s, err := c.ShortString("field")
	if err != nil || s != "abc" {
		t.Fatalf("ShortString: want \"abc\", have %q %v", s, err)
	}
	s, err = c.ShortString("field")
	if err != nil || s != "" {
		t.Fatalf("ShortString: want \"\", have %q %v", s, err)
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after consuming every byte")
	}
}

var int32Tests = []struct {
	in       []byte
	expected int32
}{
	/* 00 */ {[]byte{0, 0, 0, 0}, 0},
	/* 01 */ {[]byte{17, 0, 0, 0}, 17},
	/* 02 */ {[]byte{0xde, 0x8a, 0x7b, 0x72}, 0x727b8ade},
	/* 03 */ {[]byte{0xde, 0x8a, 0x7b, 0x92}, -1837397282}, // signed overflow
	/* 04 */ {[]byte{0xff, 0xff, 0xff, 0xff}, -1},
}

func TestCursorInt32(t *testing.T) {
	var all []byte
	for _, tt := range int32Tests {
		all = append(all, tt.in...)
	}
	c := NewCursor(all)
	for i, tt := range int32Tests {
		v, err := c.Int32("field")
		if err != nil {
			t.Fatalf("Int32 case %d: %v", i, err)
		}
		if v != tt.expected {
			t.Fatalf("Int32 case %d: want %v, have %v", i, tt.expected, v)
		}
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after every case")
	}
	if _, err := NewCursor([]byte{1, 2, 3}).Int32("field"); err == nil {
		t.Fatal("expected underflow reading too few bytes")
	}
}

var int64Tests = []struct {
	in       []byte
	expected int64
}{
	/* 00 */ {[]byte{0, 0, 0, 0, 0, 0, 0, 0}, 0},
	/* 01 */ {[]byte{17, 0, 0, 0, 0, 0, 0, 0}, 17},
	/* 02 */ {[]byte{0xde, 0x8a, 0x7b, 0x72, 0x27, 0xa3, 0x94, 0x55}, 0x5594a327727b8ade},
	/* 03 */ {[]byte{0xde, 0x8a, 0x7b, 0x72, 0x27, 0xa3, 0x94, 0x85}, -8821246380292207906}, // signed overflow
	/* 04 */ {[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, -1},
}

func TestCursorInt64(t *testing.T) {
	var all []byte
	for _, tt := range int64Tests {
		all = append(all, tt.in...)
	}
	c := NewCursor(all)
	for i, tt := range int64Tests {
		v, err := c.Int64("field")
		if err != nil {
			t.Fatalf("Int64 case %d: %v", i, err)
		}
		if v != tt.expected {
			t.Fatalf("Int64 case %d: want %v, have %v", i, tt.expected, v)
		}
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after every case")
	}
	if _, err := NewCursor([]byte{1, 2, 3, 4, 5, 6, 7}).Int64("field"); err == nil {
		t.Fatal("expected underflow reading too few bytes")
	}
}

var uint16Tests = []struct {
	in       []byte
	expected uint16
}{
	/* 00 */ {[]byte{0, 0}, 0},
	/* 01 */ {[]byte{23, 0}, 23},
	/* 02 */ {[]byte{0xde, 0x8a}, 0x8ade},
	/* 03 */ {[]byte{0xff, 0xff}, 0xffff},
}

func TestCursorUint16(t *testing.T) {
	var all []byte
	for _, tt := range uint16Tests {
		all = append(all, tt.in...)
	}
	c := NewCursor(all)
	for i, tt := range uint16Tests {
		v, err := c.Uint16("field")
		if err != nil {
			t.Fatalf("Uint16 case %d: %v", i, err)
		}
		if v != tt.expected {
			t.Fatalf("Uint16 case %d: want %v, have %v", i, tt.expected, v)
		}
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after every case")
	}
	if _, err := NewCursor([]byte{1}).Uint16("field"); err == nil {
		t.Fatal("expected underflow reading too few bytes")
	}
}

var uint32Tests = []struct {
	in       []byte
	expected uint32
}{
	/* 00 */ {[]byte{0, 0, 0, 0}, 0},
	/* 01 */ {[]byte{23, 0, 0, 0}, 23},
	/* 02 */ {[]byte{0xde, 0x8a, 0x7b, 0x92}, 0x927b8ade},
	/* 03 */ {[]byte{0xff, 0xff, 0xff, 0xff}, 0xffffffff},
}

func TestCursorUint32(t *testing.T) {
	var all []byte
	for _, tt := range uint32Tests {
		all = append(all, tt.in...)
	}
	c := NewCursor(all)
	for i, tt := range uint32Tests {
		v, err := c.Uint32("field")
		if err != nil {
			t.Fatalf("Uint32 case %d: %v", i, err)
		}
		if v != tt.expected {
			t.Fatalf("Uint32 case %d: want %v, have %v", i, tt.expected, v)
		}
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after every case")
	}
	if _, err := NewCursor([]byte{1, 2, 3}).Uint32("field"); err == nil {
		t.Fatal("expected underflow reading too few bytes")
	}
}

var uint64Tests = []struct {
	in       []byte
	expected uint64
}{
	/* 00 */ {[]byte{0, 0, 0, 0, 0, 0, 0, 0}, 0},
	/* 01 */ {[]byte{17, 0, 0, 0, 0, 0, 0, 0}, 17},
	/* 02 */ {[]byte{0xde, 0x8a, 0x7b, 0x72, 0x27, 0xa3, 0x94, 0x55}, 0x5594a327727b8ade},
	/* 03 */ {[]byte{0xde, 0x8a, 0x7b, 0x72, 0x27, 0xa3, 0x94, 0x85}, 0x8594a327727b8ade},
	/* 04 */ {[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0xffffffffffffffff},
}

func TestCursorUint64(t *testing.T) {
	var all []byte
	for _, tt := range uint64Tests {
		all = append(all, tt.in...)
	}
	c := NewCursor(all)
	for i, tt := range uint64Tests {
		v, err := c.Uint64("field")
		if err != nil {
			t.Fatalf("Uint64 case %d: %v", i, err)
		}
		if v != tt.expected {
			t.Fatalf("Uint64 case %d: want %v, have %v", i, tt.expected, v)
		}
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after every case")
	}
	if _, err := NewCursor([]byte{1, 2, 3, 4, 5, 6, 7}).Uint64("field"); err == nil {
		t.Fatal("expected underflow reading too few bytes")
	}
}

func TestCursorBoolRejectsInvalidDiscriminant(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x00, 0x02})
	v, err := c.Bool("field")
	if err != nil || !v {
		t.Fatalf("Bool case 0: want true, have %v %v", v, err)
	}
	v, err = c.Bool("field")
	if err != nil || v {
		t.Fatalf("Bool case 1: want false, have %v %v", v, err)
	}
	if _, err := c.Bool("field"); err == nil {
		t.Fatal("expected error for discriminant other than 0x00/0x01")
	}
}

func TestCursorOptionalReportsPresenceFlag(t *testing.T) {
	c := NewCursor([]byte{0x01, 0xAA, 0x00})
	present, err := c.Optional("field")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !present {
		t.Fatal("expected present=true for discriminant 0x01")
	}
	b, err := c.Byte("payload")
	if err != nil || b != 0xAA {
		t.Fatalf("expected to read the value following a present discriminant, got %v %v", b, err)
	}
	present, err = c.Optional("field")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present {
		t.Fatal("expected present=false for discriminant 0x00")
	}
	if !c.AtEnd() {
		t.Fatal("expected no trailing bytes after an absent optional")
	}
}

func TestCursorOptionalRejectsInvalidDiscriminant(t *testing.T) {
	c := NewCursor([]byte{0x02})
	if _, err := c.Optional("field"); err == nil {
		t.Fatal("expected error for discriminant other than 0x00/0x01")
	}
}

func TestCursorOptionalUnderflows(t *testing.T) {
	c := NewCursor(nil)
	if _, err := c.Optional("field"); err == nil {
		t.Fatal("expected underflow error reading discriminant from empty input")
	}
}
