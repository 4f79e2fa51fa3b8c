// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// BlockLocator is the "bestblock"/"bestblock_nomerkle" record's value: a
// sparse list of block hashes (most recent first, thinning out toward
// genesis) that zcashd uses to locate the wallet's last-seen chain tip
// without storing every block hash it has seen.
type BlockLocator struct {
	Have []Blob32
}

func (l *BlockLocator) Decode(c *bytestring.Cursor) error {
	have, err := bytestring.ParseVec[Blob32](c, "BlockLocator.vHave")
	if err != nil {
		return err
	}
	l.Have = have
	return nil
}
