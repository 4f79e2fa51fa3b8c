// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// SaplingIncomingViewingKey is a Sapling ivk, used as the zkey family's
// address handle for Sapling spending keys.
type SaplingIncomingViewingKey struct{ Blob32 }

// SaplingExpandedSpendingKey is the (ask, nsk, ovk) triple a Sapling
// extended spending key wraps.
type SaplingExpandedSpendingKey struct {
	ASK Blob32
	NSK Blob32
	OVK Blob32
}

func (k *SaplingExpandedSpendingKey) Decode(c *bytestring.Cursor) error {
	if err := k.ASK.Decode(c); err != nil {
		return err
	}
	if err := k.NSK.Decode(c); err != nil {
		return err
	}
	return k.OVK.Decode(c)
}

// SaplingExtendedSpendingKey is a ZIP-32 extended spending key: the
// expanded key plus the HD derivation parameters needed to derive further
// child keys.
type SaplingExtendedSpendingKey struct {
	Depth         uint8
	ParentFVKTag  [4]byte
	ChildIndex    uint32
	ChainCode     Blob32
	ExpSK         SaplingExpandedSpendingKey
	DK            Blob32
}

func (k *SaplingExtendedSpendingKey) Decode(c *bytestring.Cursor) error {
	depth, err := c.Byte("SaplingExtendedSpendingKey.depth")
	if err != nil {
		return err
	}
	k.Depth = depth
	tag, err := c.Bytes(4, "SaplingExtendedSpendingKey.parent_fvk_tag")
	if err != nil {
		return err
	}
	copy(k.ParentFVKTag[:], tag)
	if k.ChildIndex, err = c.Uint32("SaplingExtendedSpendingKey.child_index"); err != nil {
		return err
	}
	if err = k.ChainCode.Decode(c); err != nil {
		return err
	}
	if err = k.ExpSK.Decode(c); err != nil {
		return err
	}
	return k.DK.Decode(c)
}

// SaplingKey is a "sapzkey" record: a Sapling extended spending key, the
// incoming viewing key it was filed under, and its metadata.
type SaplingKey struct {
	IVK      SaplingIncomingViewingKey
	Key      SaplingExtendedSpendingKey
	Metadata KeyMetadata
}
