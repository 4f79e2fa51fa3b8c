// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// g1CompressedPoint is a BN128 G1 point in PHGR13's compressed encoding: a
// sign/infinity flag byte followed by a 32-byte coordinate.
type g1CompressedPoint [33]byte

func (g *g1CompressedPoint) Decode(c *bytestring.Cursor) error {
	raw, err := c.Bytes(33, "g1CompressedPoint")
	if err != nil {
		return err
	}
	copy(g[:], raw)
	return nil
}

// g2CompressedPoint is a BN128 G2 point in PHGR13's compressed encoding: a
// sign/infinity flag byte followed by a 64-byte coordinate pair.
type g2CompressedPoint [65]byte

func (g *g2CompressedPoint) Decode(c *bytestring.Cursor) error {
	raw, err := c.Bytes(65, "g2CompressedPoint")
	if err != nil {
		return err
	}
	copy(g[:], raw)
	return nil
}

// PHGRProof is the pre-Sapling zero-knowledge proof format used by Sprout
// JoinSplits when use_groth is false: seven compressed G1 points and one
// compressed G2 point (g_B), 296 bytes total.
type PHGRProof struct {
	GA, GAPrime g1CompressedPoint
	GB          g2CompressedPoint
	GBPrime     g1CompressedPoint
	GC, GCPrime g1CompressedPoint
	GK          g1CompressedPoint
	GH          g1CompressedPoint
}

func (p *PHGRProof) Decode(c *bytestring.Cursor) error {
	for _, f := range []*g1CompressedPoint{&p.GA, &p.GAPrime} {
		if err := f.Decode(c); err != nil {
			return err
		}
	}
	if err := p.GB.Decode(c); err != nil {
		return err
	}
	for _, f := range []*g1CompressedPoint{&p.GBPrime, &p.GC, &p.GCPrime, &p.GK, &p.GH} {
		if err := f.Decode(c); err != nil {
			return err
		}
	}
	return nil
}

// GrothProof is the Groth16 zero-knowledge proof format used by Sprout
// JoinSplits when use_groth is true, and by Sapling v4 spends/outputs.
type GrothProof struct{ Bytes [192]byte }

func (g *GrothProof) Decode(c *bytestring.Cursor) error {
	b, err := c.Bytes(192, "GrothProof")
	if err != nil {
		return err
	}
	copy(g.Bytes[:], b)
	return nil
}

// SproutProof is PHGRProof or GrothProof depending on the transaction's
// use_groth flag, modeled as a nilable-pointer sum type rather than an
// interface so callers can switch on which field is set without a type
// assertion.
type SproutProof struct {
	PHGR  *PHGRProof
	Groth *GrothProof
}

func decodeSproutProof(c *bytestring.Cursor, useGroth bool) (SproutProof, error) {
	if useGroth {
		g := &GrothProof{}
		if err := g.Decode(c); err != nil {
			return SproutProof{}, err
		}
		return SproutProof{Groth: g}, nil
	}
	p := &PHGRProof{}
	if err := p.Decode(c); err != nil {
		return SproutProof{}, err
	}
	return SproutProof{PHGR: p}, nil
}

// JoinSplitDescription is a single Sprout JoinSplit description (protocol
// spec 7.2). Its proof format depends on the transaction-wide use_groth
// flag, so it cannot implement the single-parameter Decode a ParseVec call
// needs; decodeJoinSplits below drives it directly.
type JoinSplitDescription struct {
	VPubOld        Amount
	VPubNew        Amount
	Anchor         Blob32
	Nullifiers     [2]U256
	Commitments    [2]U256
	EphemeralKey   Blob32
	RandomSeed     Blob32
	Vmacs          [2]Blob32
	Proof          SproutProof
	EncCiphertexts [2][601]byte
}

func (j *JoinSplitDescription) decode(c *bytestring.Cursor, useGroth bool) error {
	var err error
	if err = j.VPubOld.Decode(c); err != nil {
		return err
	}
	if err = j.VPubNew.Decode(c); err != nil {
		return err
	}
	if err = j.Anchor.Decode(c); err != nil {
		return err
	}
	for i := range j.Nullifiers {
		if err = j.Nullifiers[i].Decode(c); err != nil {
			return err
		}
	}
	for i := range j.Commitments {
		if err = j.Commitments[i].Decode(c); err != nil {
			return err
		}
	}
	if err = j.EphemeralKey.Decode(c); err != nil {
		return err
	}
	if err = j.RandomSeed.Decode(c); err != nil {
		return err
	}
	for i := range j.Vmacs {
		if err = j.Vmacs[i].Decode(c); err != nil {
			return err
		}
	}
	if j.Proof, err = decodeSproutProof(c, useGroth); err != nil {
		return err
	}
	for i := range j.EncCiphertexts {
		b, err := c.Bytes(601, "JoinSplitDescription.enc_ciphertext")
		if err != nil {
			return err
		}
		copy(j.EncCiphertexts[i][:], b)
	}
	return nil
}

// JoinSplits is the full vector of a transaction's Sprout JoinSplits plus
// the joinsplit signing key and signature that accompany it when the
// vector is non-empty.
type JoinSplits struct {
	Descriptions []JoinSplitDescription
	PubKey       *Blob32
	Sig          *Blob64
}

func decodeJoinSplits(c *bytestring.Cursor, useGroth bool) (JoinSplits, error) {
	n, err := c.CompactSizeInt("JoinSplits count")
	if err != nil {
		return JoinSplits{}, err
	}
	js := JoinSplits{Descriptions: make([]JoinSplitDescription, n)}
	for i := range js.Descriptions {
		if err := js.Descriptions[i].decode(c, useGroth); err != nil {
			return JoinSplits{}, err
		}
	}
	if n > 0 {
		pk := &Blob32{}
		if err := pk.Decode(c); err != nil {
			return JoinSplits{}, err
		}
		sig := &Blob64{}
		if err := sig.Decode(c); err != nil {
			return JoinSplits{}, err
		}
		js.PubKey, js.Sig = pk, sig
	}
	return js, nil
}
