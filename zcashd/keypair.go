// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/pkg/errors"

// Key is a validated transparent keypair: a public key, its matching
// private key, and the metadata zcashd recorded about it. NewKey enforces
// the checksum invariant that ties a "key" record's public-key payload to
// the PrivKey.Hash field carried in that same record's value.
type Key struct {
	PubKey   PubKey
	PrivKey  PrivKey
	Metadata KeyMetadata
}

// NewKey validates that privKey.Hash equals hash256(pubkey || privKey.Data)
// and returns the assembled keypair. A mismatch means the dump is corrupt or
// the two records were paired incorrectly.
func NewKey(pubKey PubKey, privKey PrivKey, metadata KeyMetadata) (*Key, error) {
	concat := make([]byte, 0, len(pubKey)+len(privKey.Data))
	concat = append(concat, pubKey...)
	concat = append(concat, privKey.Data...)
	got := hash256(concat)
	if got != Blob32(privKey.Hash) {
		return nil, errors.Wrapf(ErrChecksumMismatch, "pubkey/privkey hash mismatch")
	}
	return &Key{PubKey: pubKey, PrivKey: privKey, Metadata: metadata}, nil
}
