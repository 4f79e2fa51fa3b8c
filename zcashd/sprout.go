// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// SproutPaymentAddress is a Sprout shielded address: an (a_pk, pk_enc) pair.
type SproutPaymentAddress struct {
	APK   Blob32
	PKEnc Blob32
}

func (a *SproutPaymentAddress) Decode(c *bytestring.Cursor) error {
	if err := a.APK.Decode(c); err != nil {
		return err
	}
	return a.PKEnc.Decode(c)
}

// SproutSpendingKey is the 252-bit secret key behind a Sprout address.
type SproutSpendingKey struct{ U252 }

// SproutKeys is the "zkey" record family collapsed into the address-to-key
// map the migrator needs. An empty (but non-nil) map is distinct from "no
// zkey records were present at all" at the decoder layer (see
// RecordStream/Decoder.parseSproutKeys), matching the original's
// Option<SproutKeys>.
type SproutKeys map[SproutPaymentAddress]SproutSpendingKey

func (k SproutKeys) Get(addr SproutPaymentAddress) (SproutSpendingKey, bool) {
	sk, ok := k[addr]
	return sk, ok
}
