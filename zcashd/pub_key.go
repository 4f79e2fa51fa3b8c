// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
	"github.com/pkg/errors"
)

// PubKey is a secp256k1 public key as zcashd serializes it: a CompactSize
// length (always 33 or 65) followed by the SEC1 encoding. The first byte
// must agree with the declared length: 0x02/0x03 for 33-byte compressed
// keys, 0x04 for 65-byte uncompressed keys.
type PubKey []byte

func (p *PubKey) Decode(c *bytestring.Cursor) error {
	n, err := c.CompactSizeInt("PubKey.size")
	if err != nil {
		return err
	}
	if n != 33 && n != 65 {
		return errors.Wrapf(ErrOutOfRange, "PubKey size %d must be 33 or 65", n)
	}
	data, err := c.Bytes(n, "PubKey.data")
	if err != nil {
		return err
	}
	switch {
	case n == 33 && (data[0] == 0x02 || data[0] == 0x03):
	case n == 65 && data[0] == 0x04:
	default:
		return errors.Wrapf(ErrOutOfRange, "PubKey prefix byte 0x%02x does not match key length %d", data[0], n)
	}
	*p = PubKey(append([]byte(nil), data...))
	return nil
}

// Hash160 returns RIPEMD160(SHA256(pubkey)), the key ID used in P2PKH
// scripts and transparent t-addresses.
func (p PubKey) Hash160() Blob20 {
	return hash160(p)
}
