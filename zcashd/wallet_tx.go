// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
	"github.com/pkg/errors"
)

// WalletTx is a "tx" record's value: a full Zcash transaction, fully
// structured for every version except the ZFuture format, whose body is not
// decoded and lands in Rest after the header (see SaplingBundle,
// OrchardBundle), plus
// the wallet-level annotations zcashd's CWalletTx wrapper appends after the
// raw transaction (hashBlock, mapValue, fFromMe, note data, and similar
// bookkeeping). That tail's exact layout is wallet-version-dependent and is
// not needed for migration, so it is preserved verbatim in Rest rather than
// decoded field-by-field.
type WalletTx struct {
	Version            TxVersion
	TransparentInputs  []TxIn
	TransparentOutputs []TxOut
	LockTime           LockTime
	ExpiryHeight       ExpiryHeight
	SaplingBundle      SaplingBundle
	OrchardBundle      *OrchardBundle
	JoinSplits         JoinSplits
	Rest               []byte

	// RawBytes is the serialized transaction (header through the last
	// Orchard/Sapling signature), excluding the wallet-level tail kept in
	// Rest. It is retained because the ZIP-244 txid digest tree is far more
	// reliably computed by re-walking these bytes (see TxID) than by
	// re-serializing the decoded struct fields.
	RawBytes []byte
}

func (tx *WalletTx) Decode(c *bytestring.Cursor) error {
	full := c.Rest()

	if err := tx.Version.Decode(c); err != nil {
		return err
	}

	switch {
	case tx.Version.IsZip225():
		if err := tx.decodeZip225Body(c); err != nil {
			return err
		}
	case tx.Version.IsFuture():
		// No consensus rule defines this wire format; preserve it opaquely.
	default:
		if err := tx.decodeLegacyBody(c); err != nil {
			return err
		}
	}

	tx.RawBytes = full[:len(full)-c.Len()]
	tx.Rest = c.ReadRest()
	return nil
}

// decodeLegacyBody decodes everything before ZIP-225: PreOverwinter,
// Overwinter, and Sapling (v4) transactions.
func (tx *WalletTx) decodeLegacyBody(c *bytestring.Cursor) error {
	var err error
	if tx.TransparentInputs, err = bytestring.ParseVec[TxIn](c, "WalletTx.vin"); err != nil {
		return err
	}
	if tx.TransparentOutputs, err = bytestring.ParseVec[TxOut](c, "WalletTx.vout"); err != nil {
		return err
	}
	if err = tx.LockTime.Decode(c); err != nil {
		return err
	}

	if tx.Version.IsOverwinter() || tx.Version.IsSapling() {
		if err = tx.ExpiryHeight.Decode(c); err != nil {
			return err
		}
	}

	var spendCount, outputCount int
	if tx.Version.IsSapling() {
		bundle := &SaplingBundleV4{}
		if bundle.ValueBalance, err = c.Int64("WalletTx.valueBalanceSapling"); err != nil {
			return err
		}
		if bundle.Spends, err = bytestring.ParseVec[SpendV4](c, "WalletTx.vShieldedSpend"); err != nil {
			return err
		}
		if bundle.Outputs, err = bytestring.ParseVec[OutputV4](c, "WalletTx.vShieldedOutput"); err != nil {
			return err
		}
		spendCount, outputCount = len(bundle.Spends), len(bundle.Outputs)
		tx.SaplingBundle.V4 = bundle
	}

	useGroth := tx.Version.IsSapling()
	if tx.JoinSplits, err = decodeJoinSplits(c, useGroth); err != nil {
		return err
	}

	if tx.Version.IsSapling() && spendCount+outputCount > 0 {
		sig := &Blob64{}
		if err = sig.Decode(c); err != nil {
			return err
		}
		tx.SaplingBundle.V4.BindingSig = sig
	}
	return nil
}

// decodeZip225Body decodes the ZIP-225 (v5) wire format in full: consensus
// branch ID, transparent bundle, structured Sapling bundle, and Orchard
// bundle.
func (tx *WalletTx) decodeZip225Body(c *bytestring.Cursor) error {
	branchID, err := c.Uint32("WalletTx.consensusBranchId")
	if err != nil {
		return err
	}
	if branchID != Zip225ConsensusBranchID {
		return errors.Wrapf(ErrVersionMismatch, "v5 transaction has unknown consensusBranchId 0x%08x", branchID)
	}

	if err = tx.LockTime.Decode(c); err != nil {
		return err
	}
	if err = tx.ExpiryHeight.Decode(c); err != nil {
		return err
	}
	if tx.TransparentInputs, err = bytestring.ParseVec[TxIn](c, "WalletTx.vin"); err != nil {
		return err
	}
	if tx.TransparentOutputs, err = bytestring.ParseVec[TxOut](c, "WalletTx.vout"); err != nil {
		return err
	}

	bundle := &SaplingBundleV5{}
	if bundle.Spends, err = bytestring.ParseVec[SpendV5](c, "WalletTx.vSpendsSapling"); err != nil {
		return err
	}
	if bundle.Outputs, err = bytestring.ParseVec[OutputV5](c, "WalletTx.vOutputsSapling"); err != nil {
		return err
	}
	spendCount, outputCount := len(bundle.Spends), len(bundle.Outputs)

	if spendCount+outputCount > 0 {
		if bundle.ValueBalance, err = c.Int64("WalletTx.valueBalanceSapling"); err != nil {
			return err
		}
	}
	if spendCount > 0 {
		anchor := &Blob32{}
		if err = anchor.Decode(c); err != nil {
			return err
		}
		bundle.Anchor = anchor
	}
	if bundle.SpendProofs, err = bytestring.ParseFixed[GrothProof](c, spendCount, "WalletTx.vSpendProofsSapling"); err != nil {
		return err
	}
	if bundle.SpendAuthSigs, err = bytestring.ParseFixed[Blob64](c, spendCount, "WalletTx.vSpendAuthSigsSapling"); err != nil {
		return err
	}
	if bundle.OutputProofs, err = bytestring.ParseFixed[GrothProof](c, outputCount, "WalletTx.vOutputProofsSapling"); err != nil {
		return err
	}
	if spendCount+outputCount > 0 {
		sig := &Blob64{}
		if err = sig.Decode(c); err != nil {
			return err
		}
		bundle.BindingSig = sig
	}
	tx.SaplingBundle.V5 = bundle

	tx.OrchardBundle, err = decodeOrchardBundle(c)
	return err
}
