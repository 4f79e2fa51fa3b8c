// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// SaplingPaymentAddress is a Sapling shielded payment address: an 11-byte
// diversifier and the 32-byte diversified transmission key it derives.
type SaplingPaymentAddress struct {
	Diversifier [11]byte
	Pkd         Blob32
}

func (a *SaplingPaymentAddress) Decode(c *bytestring.Cursor) error {
	div, err := c.Bytes(11, "SaplingPaymentAddress.diversifier")
	if err != nil {
		return err
	}
	copy(a.Diversifier[:], div)
	return a.Pkd.Decode(c)
}

// RecipientMapping records a recipient address the wallet associated with
// a transaction it sent, recovered from a "recipientmapping" record. The
// source does not distinguish unified from plain addresses at this layer;
// the migrator's attribution pass (spec §4.5 step 1) treats every entry
// uniformly.
type RecipientMapping struct {
	Address string
}

func (m *RecipientMapping) Decode(c *bytestring.Cursor) error {
	s, err := c.ShortString("RecipientMapping.address")
	if err != nil {
		return err
	}
	m.Address = s
	return nil
}

// UnifiedFullViewingKey is a "unifiedfvk" record's value: the encoded full
// viewing key string for a unified account's key-id.
type UnifiedFullViewingKey struct {
	Encoded string
}

func (k *UnifiedFullViewingKey) Decode(c *bytestring.Cursor) error {
	s, err := c.ShortString("UnifiedFullViewingKey.encoded")
	if err != nil {
		return err
	}
	k.Encoded = s
	return nil
}
