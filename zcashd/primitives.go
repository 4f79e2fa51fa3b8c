// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
	"github.com/pkg/errors"
)

// Data is a CompactSize-length-prefixed byte string, zcashd's generic
// "blob of arbitrary length" wire encoding.
type Data []byte

func (d *Data) Decode(c *bytestring.Cursor) error {
	b, err := c.CompactBytes("Data")
	if err != nil {
		return err
	}
	*d = Data(append([]byte(nil), b...))
	return nil
}

// Blob20 is a fixed 20-byte value: a RIPEMD160(SHA256(...)) digest, used for
// transparent key and script IDs.
type Blob20 [20]byte

func (b *Blob20) Decode(c *bytestring.Cursor) error {
	raw, err := c.Bytes(20, "Blob20")
	if err != nil {
		return err
	}
	copy(b[:], raw)
	return nil
}

// Blob32 is a fixed 32-byte value: a hash, commitment, key, or nullifier.
type Blob32 [32]byte

func (b *Blob32) Decode(c *bytestring.Cursor) error {
	raw, err := c.Bytes(32, "Blob32")
	if err != nil {
		return err
	}
	copy(b[:], raw)
	return nil
}

// Blob64 is a fixed 64-byte value: a signature or MAC.
type Blob64 [64]byte

func (b *Blob64) Decode(c *bytestring.Cursor) error {
	raw, err := c.Bytes(64, "Blob64")
	if err != nil {
		return err
	}
	copy(b[:], raw)
	return nil
}

// U160 is a 160-bit value (a transparent address's key or script ID) kept
// distinct from Blob20 at the type level so field types read as what they
// mean rather than just their width.
type U160 struct{ Blob20 }

// U256 is a 256-bit value: a hash, a Pedersen commitment, or a key.
type U256 struct{ Blob32 }

// U252 is a 252-bit value used for the Sprout spending key. Its wire
// encoding is a 32-byte blob whose top 4 bits must be zero.
type U252 struct{ Blob32 }

func (u *U252) Decode(c *bytestring.Cursor) error {
	if err := u.Blob32.Decode(c); err != nil {
		return err
	}
	if u.Blob32[0]&0xF0 != 0 {
		return errors.Wrap(ErrOutOfRange, "u252 high nibble must be zero")
	}
	return nil
}

// SecondsSinceEpoch is a Unix timestamp as zcashd stores it: a raw value of
// zero means "unknown", not the Unix epoch itself.
type SecondsSinceEpoch uint64

func (s *SecondsSinceEpoch) Decode(c *bytestring.Cursor) error {
	v, err := c.Uint64("SecondsSinceEpoch")
	if err != nil {
		return err
	}
	*s = SecondsSinceEpoch(v)
	return nil
}

// Known reports whether the timestamp carries a real value. zcashd's own
// Optional<SecondsSinceEpoch> fields (e.g. KeyMetadata.create_time) collapse
// to this rather than using the 0x00/0x01 optional discriminant.
func (s SecondsSinceEpoch) Known() bool { return s != 0 }

// ClientVersion decodes zcashd's packed CLIENT_VERSION integer
// (1000000*major + 10000*minor + 100*revision + build) into its components.
type ClientVersion struct {
	Raw      int32
	Major    int32
	Minor    int32
	Revision int32
	Build    int32
}

func (v *ClientVersion) Decode(c *bytestring.Cursor) error {
	raw, err := c.Int32("ClientVersion")
	if err != nil {
		return err
	}
	v.fromRaw(raw)
	return nil
}

func (v *ClientVersion) fromRaw(raw int32) {
	v.Raw = raw
	n := raw
	v.Major = n / 1000000
	n -= v.Major * 1000000
	v.Minor = n / 10000
	n -= v.Minor * 10000
	v.Revision = n / 100
	n -= v.Revision * 100
	v.Build = n
}

// Amount is a transparent value in zatoshi.
type Amount uint64

func (a *Amount) Decode(c *bytestring.Cursor) error {
	v, err := c.Uint64("Amount")
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// LockTime is a transaction's nLockTime field.
type LockTime uint32

func (l *LockTime) Decode(c *bytestring.Cursor) error {
	v, err := c.Uint32("LockTime")
	if err != nil {
		return err
	}
	*l = LockTime(v)
	return nil
}

// ExpiryHeight is a transaction's nExpiryHeight field, present from
// Overwinter onward.
type ExpiryHeight uint32

func (e *ExpiryHeight) Decode(c *bytestring.Cursor) error {
	v, err := c.Uint32("ExpiryHeight")
	if err != nil {
		return err
	}
	*e = ExpiryHeight(v)
	return nil
}

// IntID is a 32-bit identifier displayed in zero-padded hex, such as a
// consensus branch ID.
type IntID uint32

func (i *IntID) Decode(c *bytestring.Cursor) error {
	v, err := c.Uint32("IntID")
	if err != nil {
		return err
	}
	*i = IntID(v)
	return nil
}

func (i IntID) String() string {
	const hexdigits = "0123456789abcdef"
	out := [10]byte{'0', 'x', '0', '0', '0', '0', '0', '0', '0', '0'}
	v := uint32(i)
	for p := 9; p >= 2; p-- {
		out[p] = hexdigits[v&0xF]
		v >>= 4
	}
	return string(out[:])
}

// Script is a CompactSize-length-prefixed scriptSig/scriptPubKey.
type Script []byte

func (s *Script) Decode(c *bytestring.Cursor) error {
	b, err := c.CompactBytes("Script")
	if err != nil {
		return err
	}
	*s = Script(append([]byte(nil), b...))
	return nil
}
