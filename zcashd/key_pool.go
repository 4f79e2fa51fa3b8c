// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// KeyPoolEntry is a pre-generated, not-yet-assigned transparent key held in
// zcashd's keypool.
type KeyPoolEntry struct {
	Version   ClientVersion
	Timestamp SecondsSinceEpoch
	Key       PubKey
}

func (e *KeyPoolEntry) Decode(c *bytestring.Cursor) error {
	if err := e.Version.Decode(c); err != nil {
		return err
	}
	if err := e.Timestamp.Decode(c); err != nil {
		return err
	}
	return e.Key.Decode(c)
}
