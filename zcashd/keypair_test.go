// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "testing"

func compressedPubKey() PubKey {
	pk := make([]byte, 33)
	pk[0] = 0x02
	for i := 1; i < 33; i++ {
		pk[i] = byte(i)
	}
	return PubKey(pk)
}

func TestNewKeyAcceptsMatchingChecksum(t *testing.T) {
	pubKey := compressedPubKey()
	privData := make([]byte, 214)
	for i := range privData {
		privData[i] = byte(i + 1)
	}
	concat := append(append([]byte{}, pubKey...), privData...)
	hash := hash256(concat)

	_, err := NewKey(pubKey, PrivKey{Data: privData, Hash: hash}, KeyMetadata{})
	if err != nil {
		t.Fatalf("expected matching checksum to validate, got %v", err)
	}
}

func TestNewKeyRejectsMismatchedChecksum(t *testing.T) {
	pubKey := compressedPubKey()
	privData := make([]byte, 214)
	_, err := NewKey(pubKey, PrivKey{Data: privData, Hash: Blob32{}}, KeyMetadata{})
	if err == nil {
		t.Fatal("expected checksum mismatch error, got nil")
	}
}
