// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Bitcoin-style Hash160
)

// hash160 computes RIPEMD160(SHA256(data)), the digest Bitcoin/Zcash use for
// P2PKH key IDs and P2SH script IDs.
func hash160(data []byte) Blob20 {
	sh := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sh[:])
	var out Blob20
	copy(out[:], h.Sum(nil))
	return out
}

// hash256 computes double SHA-256, used for zcashd's keypair checksum and
// for pre-ZIP-244 transaction IDs.
func hash256(data []byte) Blob32 {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return Blob32(second)
}
