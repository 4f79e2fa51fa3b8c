// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// NetworkInfo is the "networkinfo" record's value: a network name paired
// with a protocol identifier string.
type NetworkInfo struct {
	Zcash      string
	Identifier string
}

func (n *NetworkInfo) Decode(c *bytestring.Cursor) error {
	zcash, err := c.ShortString("NetworkInfo.zcash")
	if err != nil {
		return err
	}
	identifier, err := c.ShortString("NetworkInfo.identifier")
	if err != nil {
		return err
	}
	n.Zcash, n.Identifier = zcash, identifier
	return nil
}
