// Package bytestring provides a cryptobyte-inspired API specialized to the
// needs of parsing Zcash wire-format data: wallet records, transactions, and
// the primitive types zcashd serializes them with.
package bytestring

import (
	"github.com/pkg/errors"
)

// MaxCompactSize mirrors Bitcoin's CompactSize upper bound; no serialized
// vector or string in a zcashd wallet legitimately exceeds it.
const MaxCompactSize uint64 = 0x02000000

// Cursor reads sequentially through a byte slice with error-returning
// methods, so that callers can build context-chain error messages the way
// parser/transaction.go builds them. It is the base every zcashd
// record/primitive decoder is built on.
type Cursor struct {
	b []byte
}

// NewCursor wraps data for sequential decoding. The caller retains ownership
// of data; NewCursor does not copy it.
func NewCursor(data []byte) *Cursor {
	return &Cursor{b: data}
}

// Len reports the number of unconsumed bytes.
func (c *Cursor) Len() int { return len(c.b) }

// Rest returns the unconsumed tail without advancing the cursor.
func (c *Cursor) Rest() []byte { return c.b }

// ReadRest consumes and returns all remaining bytes.
func (c *Cursor) ReadRest() []byte {
	rest := c.b
	c.b = c.b[len(c.b):]
	return rest
}

// AtEnd reports whether every byte has been consumed. Callers use this to
// enforce the "no trailing bytes" invariant after decoding a record whose
// length is already known.
func (c *Cursor) AtEnd() bool { return len(c.b) == 0 }

func underflow(what string) error {
	return errors.Errorf("underflow: could not read %s", what)
}

// read advances the cursor by n bytes and returns them, or nil if fewer than
// n bytes remain.
func (c *Cursor) read(n int) []byte {
	if len(c.b) < n {
		return nil
	}
	out := c.b[:n]
	c.b = c.b[n:]
	return out
}

// Skip advances n bytes without interpreting them.
func (c *Cursor) Skip(n int, what string) error {
	if c.read(n) == nil {
		return underflow(what)
	}
	return nil
}

// Byte reads a single byte.
func (c *Cursor) Byte(what string) (byte, error) {
	v := c.read(1)
	if v == nil {
		return 0, underflow(what)
	}
	return v[0], nil
}

// Bytes reads exactly n bytes, returning a slice that aliases the input.
func (c *Cursor) Bytes(n int, what string) ([]byte, error) {
	v := c.read(n)
	if v == nil {
		return nil, underflow(what)
	}
	return v, nil
}

// Uint16 reads a little-endian uint16.
func (c *Cursor) Uint16(what string) (uint16, error) {
	v := c.read(2)
	if v == nil {
		return 0, underflow(what)
	}
	return uint16(v[0]) | uint16(v[1])<<8, nil
}

// Uint32 reads a little-endian uint32.
func (c *Cursor) Uint32(what string) (uint32, error) {
	v := c.read(4)
	if v == nil {
		return 0, underflow(what)
	}
	return uint32(v[0]) | uint32(v[1])<<8 | uint32(v[2])<<16 | uint32(v[3])<<24, nil
}

// Int32 reads a little-endian, two's-complement int32.
func (c *Cursor) Int32(what string) (int32, error) {
	v, err := c.Uint32(what)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// Uint64 reads a little-endian uint64.
func (c *Cursor) Uint64(what string) (uint64, error) {
	v := c.read(8)
	if v == nil {
		return 0, underflow(what)
	}
	return uint64(v[0]) | uint64(v[1])<<8 | uint64(v[2])<<16 | uint64(v[3])<<24 |
		uint64(v[4])<<32 | uint64(v[5])<<40 | uint64(v[6])<<48 | uint64(v[7])<<56, nil
}

// Int64 reads a little-endian, two's-complement int64.
func (c *Cursor) Int64(what string) (int64, error) {
	v, err := c.Uint64(what)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// CompactSize reads a Bitcoin-style CompactSize integer, rejecting any
// non-minimal encoding (e.g. 0xFD0000 for the value 0).
func (c *Cursor) CompactSize(what string) (uint64, error) {
	lenBytes := c.read(1)
	if lenBytes == nil {
		return 0, underflow(what)
	}
	lenByte := lenBytes[0]

	var lenLen int
	var length, minSize uint64

	switch {
	case lenByte < 253:
		length = uint64(lenByte)
	case lenByte == 253:
		lenLen = 2
		minSize = 253
	case lenByte == 254:
		lenLen = 4
		minSize = 0x10000
	case lenByte == 255:
		lenLen = 8
		minSize = 0x100000000
	}

	if lenLen > 0 {
		rest := c.read(lenLen)
		if rest == nil {
			return 0, underflow(what)
		}
		for i := lenLen - 1; i >= 0; i-- {
			length <<= 8
			length |= uint64(rest[i])
		}
	}

	if length > MaxCompactSize || length < minSize {
		return 0, errors.Errorf("out of range: %s is not a canonical CompactSize", what)
	}
	return length, nil
}

// CompactSizeInt is CompactSize narrowed to int, for use as a slice length or
// loop bound. It rejects sizes that would overflow int on 32-bit platforms,
// which MaxCompactSize already guarantees cannot happen on any platform Go
// targets in practice.
func (c *Cursor) CompactSizeInt(what string) (int, error) {
	v, err := c.CompactSize(what)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// CompactBytes reads a CompactSize-length-prefixed byte string.
func (c *Cursor) CompactBytes(what string) ([]byte, error) {
	n, err := c.CompactSizeInt(what)
	if err != nil {
		return nil, err
	}
	return c.Bytes(n, what)
}

// ShortString reads a u8-length-prefixed UTF-8 string -- the "short string"
// encoding zcashd uses for things like HD key paths and mnemonic language
// tags, as distinct from CompactSize-length-prefixed Data.
func (c *Cursor) ShortString(what string) (string, error) {
	n, err := c.Byte(what)
	if err != nil {
		return "", err
	}
	b, err := c.Bytes(int(n), what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Bool reads a single byte and interprets it as a boolean. Any value other
// than 0x00 or 0x01 is out of range.
func (c *Cursor) Bool(what string) (bool, error) {
	b, err := c.Byte(what)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Errorf("out of range: %s discriminant must be 0 or 1, got 0x%02x", what, b)
	}
}

// Optional reads the presence-flag byte used throughout zcashd's
// serialization of Option<T> fields (0x00 = absent, 0x01 = present), and
// reports whether a value follows. Any other discriminant byte is an error.
func (c *Cursor) Optional(what string) (bool, error) {
	b, err := c.Byte(what)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Errorf("out of range: %s optional discriminant must be 0x00 or 0x01, got 0x%02x", what, b)
	}
}

// ptrDecoder is implemented by *T for types decodable off a Cursor with no
// extra parameters. It is the building block for ParseVec, which replaces
// the hand-unrolled per-type vector loops a direct byte-level port would
// otherwise need one of for each element type.
type ptrDecoder[T any] interface {
	*T
	Decode(c *Cursor) error
}

// ParseVec reads a CompactSize element count followed by that many
// CompactSize-homogeneous elements, each decoded with T's Decode method.
func ParseVec[T any, PT ptrDecoder[T]](c *Cursor, what string) ([]T, error) {
	n, err := c.CompactSizeInt(what + " count")
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		if err := PT(&out[i]).Decode(c); err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", what, i)
		}
	}
	return out, nil
}

// ParseFixed reads exactly n elements (no length prefix), each decoded with
// T's Decode method. It is used where the count is implied by context (e.g.
// the two nullifiers of a Sprout JoinSplit) rather than self-describing.
func ParseFixed[T any, PT ptrDecoder[T]](c *Cursor, n int, what string) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		if err := PT(&out[i]).Decode(c); err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", what, i)
		}
	}
	return out, nil
}
