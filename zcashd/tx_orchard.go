// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// OrchardAction is one Orchard action: the combined spend+output
// description Orchard uses in place of Sapling's separate spend/output
// descriptions. Its wire shape is always exactly 820 bytes:
// cv(32) + nullifier(32) + rk(32) + cmx(32) + ephemeralKey(32) +
// encCiphertext(580) + outCiphertext(80).
type OrchardAction struct {
	CV            Blob32
	Nullifier     Blob32
	RK            Blob32
	CMX           Blob32
	EphemeralKey  Blob32
	EncCiphertext [580]byte
	OutCiphertext [80]byte
}

func (a *OrchardAction) Decode(c *bytestring.Cursor) error {
	for _, f := range []*Blob32{&a.CV, &a.Nullifier, &a.RK, &a.CMX, &a.EphemeralKey} {
		if err := f.Decode(c); err != nil {
			return err
		}
	}
	enc, err := c.Bytes(580, "OrchardAction.enc_ciphertext")
	if err != nil {
		return err
	}
	copy(a.EncCiphertext[:], enc)
	out, err := c.Bytes(80, "OrchardAction.out_ciphertext")
	if err != nil {
		return err
	}
	copy(a.OutCiphertext[:], out)
	return nil
}

// OrchardBundle is a v5 transaction's Orchard section. It is only present
// (non-nil, on WalletTx) when the transaction has at least one action.
type OrchardBundle struct {
	Actions       []OrchardAction
	Flags         byte
	ValueBalance  int64
	Anchor        Blob32
	Proof         Data
	SpendAuthSigs []Blob64
	BindingSig    Blob64
}

func decodeOrchardBundle(c *bytestring.Cursor) (*OrchardBundle, error) {
	actions, err := bytestring.ParseVec[OrchardAction](c, "OrchardBundle.actions")
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, nil
	}
	b := &OrchardBundle{Actions: actions}
	if b.Flags, err = c.Byte("OrchardBundle.flags"); err != nil {
		return nil, err
	}
	vb, err := c.Int64("OrchardBundle.value_balance")
	if err != nil {
		return nil, err
	}
	b.ValueBalance = vb
	if err = b.Anchor.Decode(c); err != nil {
		return nil, err
	}
	if err = b.Proof.Decode(c); err != nil {
		return nil, err
	}
	b.SpendAuthSigs, err = bytestring.ParseFixed[Blob64](c, len(actions), "OrchardBundle.spend_auth_sigs")
	if err != nil {
		return nil, err
	}
	return b, b.BindingSig.Decode(c)
}
