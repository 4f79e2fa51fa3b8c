// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
	"github.com/pkg/errors"
)

// TxVersionGroup names the network-upgrade era a transaction's version
// group ID identifies.
type TxVersionGroup int

const (
	TxVersionGroupPreOverwinter TxVersionGroup = iota
	TxVersionGroupOverwinter
	TxVersionGroupSapling
	TxVersionGroupZip225
	TxVersionGroupFuture
)

const (
	overwinterVersionGroupID = 0x03C48270
	saplingVersionGroupID    = 0x892F2085
	zip225VersionGroupID     = 0x26A7270A
	zfutureVersionGroupID    = 0xFFFFFFFF

	overwinterTxVersion = 3
	saplingTxVersion     = 4
	zip225TxVersion       = 5
	zfutureTxVersion       = 0x0000FFFF

	// Zip225ConsensusBranchID is the only consensus branch ID a v5
	// transaction in a zcashd wallet file may declare.
	Zip225ConsensusBranchID = 0x37519621
)

// TxVersion is the (fOverwintered, nVersionGroupId, version) triple that
// determines a transaction's wire format.
type TxVersion struct {
	Overwintered    bool
	VersionGroupID  uint32
	Number          uint32
	Group           TxVersionGroup
}

func (v TxVersion) IsOverwinter() bool { return v.Group == TxVersionGroupOverwinter }
func (v TxVersion) IsSapling() bool    { return v.Group == TxVersionGroupSapling }
func (v TxVersion) IsZip225() bool     { return v.Group == TxVersionGroupZip225 }
func (v TxVersion) IsFuture() bool     { return v.Group == TxVersionGroupFuture }

// classifyTxVersion maps the raw triple onto a TxVersionGroup, rejecting any
// combination not defined by a shipped Zcash consensus rule.
func classifyTxVersion(overwintered bool, versionGroupID, number uint32) (TxVersionGroup, error) {
	if !overwintered {
		return TxVersionGroupPreOverwinter, nil
	}
	switch {
	case versionGroupID == overwinterVersionGroupID && number == overwinterTxVersion:
		return TxVersionGroupOverwinter, nil
	case versionGroupID == saplingVersionGroupID && number == saplingTxVersion:
		return TxVersionGroupSapling, nil
	case versionGroupID == zip225VersionGroupID && number == zip225TxVersion:
		return TxVersionGroupZip225, nil
	case versionGroupID == zfutureVersionGroupID && number == zfutureTxVersion:
		return TxVersionGroupFuture, nil
	default:
		return 0, errors.Wrapf(ErrVersionMismatch, "overwintered=%v versionGroupId=0x%08x version=%d", overwintered, versionGroupID, number)
	}
}

func (v *TxVersion) Decode(c *bytestring.Cursor) error {
	header, err := c.Uint32("TxVersion.header")
	if err != nil {
		return err
	}
	v.Overwintered = header>>31 == 1
	v.Number = header & 0x7FFFFFFF
	if v.Overwintered {
		if v.VersionGroupID, err = c.Uint32("TxVersion.version_group_id"); err != nil {
			return err
		}
	}
	v.Group, err = classifyTxVersion(v.Overwintered, v.VersionGroupID, v.Number)
	return err
}
