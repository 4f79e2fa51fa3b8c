// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// OutPoint identifies a previous transaction's output by txid and index.
type OutPoint struct {
	Hash Blob32
	N    uint32
}

func (o *OutPoint) Decode(c *bytestring.Cursor) error {
	if err := o.Hash.Decode(c); err != nil {
		return err
	}
	var err error
	o.N, err = c.Uint32("OutPoint.n")
	return err
}

// TxIn is a transparent transaction input.
type TxIn struct {
	Prevout   OutPoint
	ScriptSig Script
	Sequence  uint32
}

func (t *TxIn) Decode(c *bytestring.Cursor) error {
	if err := t.Prevout.Decode(c); err != nil {
		return err
	}
	if err := t.ScriptSig.Decode(c); err != nil {
		return err
	}
	var err error
	t.Sequence, err = c.Uint32("TxIn.sequence")
	return err
}

// TxOut is a transparent transaction output.
type TxOut struct {
	Value         Amount
	ScriptPubKey Script
}

func (t *TxOut) Decode(c *bytestring.Cursor) error {
	if err := t.Value.Decode(c); err != nil {
		return err
	}
	return t.ScriptPubKey.Decode(c)
}
