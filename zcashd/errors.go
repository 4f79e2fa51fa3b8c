// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/pkg/errors"

// This package's own parsers report their failures wrapped around one of a
// small set of sentinel errors so callers (and tests) can tell kinds of
// failure apart without parsing message strings. Wrap with
// errors.Wrap/errors.Wrapf to add positional context; errors.Is still
// matches through the wrap. Failures raised inside internal/bytestring's
// Cursor (truncated input, a non-canonical CompactSize, a bool or optional
// discriminant other than 0x00/0x01) are plain errors that match none of
// these sentinels.
var (
	// ErrUnderflow names the "fewer bytes remained than a field required"
	// kind. No parser in this package returns it: underflow is reported by
	// Cursor as a plain error.
	ErrUnderflow = errors.New("underflow")

	// ErrTrailing names the "bytes remained after a record was fully
	// parsed" kind. No parser in this package returns it: record decoders
	// do not check for leftover bytes, and WalletTx keeps its tail in Rest.
	ErrTrailing = errors.New("trailing bytes")

	// ErrOutOfRange means a value was present and complete but outside its
	// legal domain: a u252 with a nonzero high nibble, a PrivKey of the
	// wrong size, or a PubKey whose length or prefix byte is invalid.
	ErrOutOfRange = errors.New("out of range")

	// ErrStructuralMismatch means two logically paired records disagree:
	// mismatched key/keymeta counts, a duplicate key where the format
	// requires uniqueness, or a record missing its required companion.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrVersionMismatch means a transaction's (overwintered, version
	// group ID, version) triple does not correspond to any known Zcash
	// transaction format.
	ErrVersionMismatch = errors.New("version mismatch")

	// ErrChecksumMismatch means a keypair's recorded checksum does not
	// match the hash of its public and private key material.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
