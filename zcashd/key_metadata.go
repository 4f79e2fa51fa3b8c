// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// versionWithHDData is the CKeyMetadata version at and above which HD
// derivation metadata (hd_keypath, seed_fp) is present in the record.
const versionWithHDData = 10

// KeyMetadata is the metadata zcashd stores alongside a transparent or
// Sapling key: when it was created, and (for keys derived from the wallet's
// HD seed) the derivation path and seed fingerprint that produced it.
type KeyMetadata struct {
	Version    int32
	CreateTime SecondsSinceEpoch // zero means unknown
	HDKeypath  string            // empty unless Version >= versionWithHDData
	SeedFP     Blob32
	HasSeedFP  bool
}

func (m *KeyMetadata) Decode(c *bytestring.Cursor) error {
	var err error
	if m.Version, err = c.Int32("KeyMetadata.version"); err != nil {
		return err
	}
	if err = m.CreateTime.Decode(c); err != nil {
		return err
	}
	if m.Version >= versionWithHDData {
		hdKeypath, err := c.ShortString("KeyMetadata.hd_keypath")
		if err != nil {
			return err
		}
		m.HDKeypath = hdKeypath
		if err := m.SeedFP.Decode(c); err != nil {
			return err
		}
		m.HasSeedFP = true
	}
	return nil
}
