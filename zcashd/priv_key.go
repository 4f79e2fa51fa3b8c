// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
	"github.com/pkg/errors"
)

// PrivKey is a CPrivKey record value: a DER-encoded EC private key followed
// by a trailing checksum hash. zcashd only ever writes it at one of two
// fixed sizes, one for compressed and one for uncompressed public keys.
type PrivKey struct {
	Data []byte
	Hash Blob32
}

const (
	privKeySizeCompressed   = 214
	privKeySizeUncompressed = 279
)

func (p *PrivKey) Decode(c *bytestring.Cursor) error {
	n, err := c.CompactSizeInt("PrivKey.size")
	if err != nil {
		return err
	}
	if n != privKeySizeCompressed && n != privKeySizeUncompressed {
		return errors.Wrapf(ErrOutOfRange, "PrivKey size %d must be %d or %d", n, privKeySizeCompressed, privKeySizeUncompressed)
	}
	data, err := c.Bytes(n, "PrivKey.data")
	if err != nil {
		return err
	}
	p.Data = append([]byte(nil), data...)
	return p.Hash.Decode(c)
}
