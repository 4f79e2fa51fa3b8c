// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// Address is an address string as zcashd stores it in "name"/"purpose"
// record keys -- transparent, Sapling, or unified, zcashd doesn't
// distinguish at this layer.
type Address string

func (a *Address) Decode(c *bytestring.Cursor) error {
	s, err := c.ShortString("Address")
	if err != nil {
		return err
	}
	*a = Address(s)
	return nil
}

// ReceiverType tags which protocol a unified address's component receiver
// belongs to.
type ReceiverType byte

const (
	ReceiverP2PKH   ReceiverType = 0x00
	ReceiverP2SH    ReceiverType = 0x01
	ReceiverSapling ReceiverType = 0x02
	ReceiverOrchard ReceiverType = 0x03
)

func (r *ReceiverType) Decode(c *bytestring.Cursor) error {
	b, err := c.Byte("ReceiverType")
	if err != nil {
		return err
	}
	*r = ReceiverType(b)
	return nil
}

// UnifiedAccountMetadata is the value of an "unifiedaccount" record, keyed
// by a ZIP-32 account key-id. It is what lets the migrator recover real
// account structure instead of falling back to a single default account.
type UnifiedAccountMetadata struct {
	AccountID uint32 // ZIP-32 account index
	SeedFP    Blob32
}

func (m *UnifiedAccountMetadata) Decode(c *bytestring.Cursor) error {
	var err error
	if m.AccountID, err = c.Uint32("UnifiedAccountMetadata.account_id"); err != nil {
		return err
	}
	return m.SeedFP.Decode(c)
}

// UnifiedAddressMetadata is the value of an "unifiedaddrmeta" record, keyed
// by an address-id. It links a derived address back to the account that
// owns it and the receiver protocols the address exposes.
type UnifiedAddressMetadata struct {
	AccountID        uint32
	DiversifierIndex [11]byte
	Receivers        []ReceiverType
}

func (m *UnifiedAddressMetadata) Decode(c *bytestring.Cursor) error {
	var err error
	if m.AccountID, err = c.Uint32("UnifiedAddressMetadata.account_id"); err != nil {
		return err
	}
	div, err := c.Bytes(11, "UnifiedAddressMetadata.diversifier_index")
	if err != nil {
		return err
	}
	copy(m.DiversifierIndex[:], div)
	m.Receivers, err = bytestring.ParseVec[ReceiverType](c, "UnifiedAddressMetadata.receivers")
	return err
}
