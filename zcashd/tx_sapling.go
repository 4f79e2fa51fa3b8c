// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// SpendV4 is a Sapling Spend Description in its v4 (pre-ZIP-225) wire
// shape: the proof and signature are inline, one per spend.
type SpendV4 struct {
	CV           Blob32
	Anchor       Blob32
	Nullifier    Blob32
	RK           Blob32
	Proof        GrothProof
	SpendAuthSig Blob64
}

func (s *SpendV4) Decode(c *bytestring.Cursor) error {
	for _, f := range []*Blob32{&s.CV, &s.Anchor, &s.Nullifier, &s.RK} {
		if err := f.Decode(c); err != nil {
			return err
		}
	}
	if err := s.Proof.Decode(c); err != nil {
		return err
	}
	return s.SpendAuthSig.Decode(c)
}

// OutputV4 is a Sapling Output Description in its v4 wire shape.
type OutputV4 struct {
	CV            Blob32
	CMU           Blob32
	EphemeralKey  Blob32
	EncCiphertext [580]byte
	OutCiphertext [80]byte
	Proof         GrothProof
}

func (o *OutputV4) Decode(c *bytestring.Cursor) error {
	for _, f := range []*Blob32{&o.CV, &o.CMU, &o.EphemeralKey} {
		if err := f.Decode(c); err != nil {
			return err
		}
	}
	enc, err := c.Bytes(580, "OutputV4.enc_ciphertext")
	if err != nil {
		return err
	}
	copy(o.EncCiphertext[:], enc)
	out, err := c.Bytes(80, "OutputV4.out_ciphertext")
	if err != nil {
		return err
	}
	copy(o.OutCiphertext[:], out)
	return o.Proof.Decode(c)
}

// SaplingBundleV4 is a v4 (Sapling/Overwinter-era) transaction's full
// shielded Sapling section. ValueBalance and a per-transaction binding
// signature are always present once any spend or output exists.
type SaplingBundleV4 struct {
	ValueBalance int64
	Spends       []SpendV4
	Outputs      []OutputV4
	BindingSig   *Blob64
}

// SpendV5 is a Sapling Spend Description in its v5 (ZIP-225) wire shape:
// cv/nullifier/rk only -- the anchor is shared across all spends and the
// proof is stored in a separate parallel array (see SaplingBundleV5).
type SpendV5 struct {
	CV        Blob32
	Nullifier Blob32
	RK        Blob32
}

func (s *SpendV5) Decode(c *bytestring.Cursor) error {
	for _, f := range []*Blob32{&s.CV, &s.Nullifier, &s.RK} {
		if err := f.Decode(c); err != nil {
			return err
		}
	}
	return nil
}

// OutputV5 is a Sapling Output Description in its v5 wire shape: no inline
// proof.
type OutputV5 struct {
	CV            Blob32
	CMU           Blob32
	EphemeralKey  Blob32
	EncCiphertext [580]byte
	OutCiphertext [80]byte
}

func (o *OutputV5) Decode(c *bytestring.Cursor) error {
	for _, f := range []*Blob32{&o.CV, &o.CMU, &o.EphemeralKey} {
		if err := f.Decode(c); err != nil {
			return err
		}
	}
	enc, err := c.Bytes(580, "OutputV5.enc_ciphertext")
	if err != nil {
		return err
	}
	copy(o.EncCiphertext[:], enc)
	out, err := c.Bytes(80, "OutputV5.out_ciphertext")
	if err != nil {
		return err
	}
	copy(o.OutCiphertext[:], out)
	return nil
}

// SaplingBundleV5 is a v5 transaction's Sapling section: spends, outputs,
// and their proofs are stored as separate parallel vectors rather than
// interleaved per-description, and ValueBalance/Anchor are only present
// when the bundle is non-empty.
type SaplingBundleV5 struct {
	Spends        []SpendV5
	Outputs       []OutputV5
	ValueBalance  int64
	Anchor        *Blob32
	SpendProofs   []GrothProof
	SpendAuthSigs []Blob64
	OutputProofs  []GrothProof
	BindingSig    *Blob64
}

// SaplingBundle is the version-dispatched sum type every WalletTx carries
// in place of inheriting from a common "SaplingBundle" base: exactly one of
// V4 or V5 is set, matching which wire shape the transaction used.
type SaplingBundle struct {
	V4 *SaplingBundleV4
	V5 *SaplingBundleV5
}

// HasShieldedElements reports whether the bundle carries any spend or
// output, in either shape.
func (b SaplingBundle) HasShieldedElements() bool {
	switch {
	case b.V4 != nil:
		return len(b.V4.Spends)+len(b.V4.Outputs) > 0
	case b.V5 != nil:
		return len(b.V5.Spends)+len(b.V5.Outputs) > 0
	default:
		return false
	}
}
