package zewif

import "encoding/hex"

// TxId is a transaction identifier: the double-SHA-256 (pre-v5) or
// ZIP-244 (v5) transaction digest, stored internal-byte-order as zcashd
// computes it. String renders it the conventional display way (reversed
// hex), matching block-explorer and RPC convention.
type TxId [32]byte

func (t TxId) String() string {
	var rev [32]byte
	for i := range t {
		rev[i] = t[32-1-i]
	}
	return hex.EncodeToString(rev[:])
}
