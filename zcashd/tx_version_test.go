// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"encoding/binary"
	"testing"

	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
)

func encodeTxHeader(overwintered bool, versionGroupID, number uint32) []byte {
	header := number
	if overwintered {
		header |= 1 << 31
	}
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, header)
	if !overwintered {
		return buf
	}
	vg := make([]byte, 4)
	binary.LittleEndian.PutUint32(vg, versionGroupID)
	return append(buf, vg...)
}

func TestTxVersionClassifiesKnownCombinations(t *testing.T) {
	cases := []struct {
		name           string
		overwintered   bool
		versionGroupID uint32
		number         uint32
		want           TxVersionGroup
	}{
		{"pre-overwinter", false, 0, 2, TxVersionGroupPreOverwinter},
		{"overwinter", true, overwinterVersionGroupID, overwinterTxVersion, TxVersionGroupOverwinter},
		{"sapling", true, saplingVersionGroupID, saplingTxVersion, TxVersionGroupSapling},
		{"zip225", true, zip225VersionGroupID, zip225TxVersion, TxVersionGroupZip225},
		{"future", true, zfutureVersionGroupID, zfutureTxVersion, TxVersionGroupFuture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := bytestring.NewCursor(encodeTxHeader(tc.overwintered, tc.versionGroupID, tc.number))
			var v TxVersion
			if err := v.Decode(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Group != tc.want {
				t.Fatalf("got group %v, want %v", v.Group, tc.want)
			}
		})
	}
}

func TestTxVersionRejectsUnknownCombination(t *testing.T) {
	c := bytestring.NewCursor(encodeTxHeader(true, 0xDEADBEEF, 9))
	var v TxVersion
	if err := v.Decode(c); err == nil {
		t.Fatal("expected version mismatch error, got nil")
	}
}
