package migrate

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/blockchaincommons/zewif-migrate/zcashd"
	"github.com/blockchaincommons/zewif-migrate/zewif"
)

// convertTransactions implements Phase D: every "tx" record becomes one
// interchange Transaction, keyed by its computed txid.
func convertTransactions(w *zcashd.ZcashdWallet) (map[zewif.TxId]*zewif.Transaction, error) {
	out := make(map[zewif.TxId]*zewif.Transaction, len(w.Transactions))
	for sourceTxid, wtx := range w.Transactions {
		tx, err := convertTransaction(wtx)
		if err != nil {
			return nil, errors.Wrapf(err, "converting transaction %s", sourceTxid)
		}
		out[tx.TxId] = tx
	}
	return out, nil
}

func convertTransaction(wtx *zcashd.WalletTx) (*zewif.Transaction, error) {
	txid, err := wtx.TxID()
	if err != nil {
		return nil, errors.Wrap(err, "computing txid")
	}

	tx := &zewif.Transaction{
		TxId:     zewif.TxId(txid),
		RawBytes: wtx.RawBytes,
	}

	for _, in := range wtx.TransparentInputs {
		tx.TransparentInputs = append(tx.TransparentInputs, zewif.TxIn{
			PrevTxId:  zewif.TxId(in.Prevout.Hash),
			PrevIndex: in.Prevout.N,
			ScriptSig: []byte(in.ScriptSig),
			Sequence:  in.Sequence,
		})
	}
	for _, out := range wtx.TransparentOutputs {
		tx.TransparentOutputs = append(tx.TransparentOutputs, zewif.TxOut{
			Value:        int64(out.Value),
			ScriptPubKey: []byte(out.ScriptPubKey),
		})
	}

	convertSaplingBundle(wtx, tx)
	convertOrchardBundle(wtx, tx)
	convertJoinSplits(wtx, tx)

	return tx, nil
}

func convertSaplingBundle(wtx *zcashd.WalletTx, tx *zewif.Transaction) {
	switch {
	case wtx.SaplingBundle.V4 != nil:
		bundle := wtx.SaplingBundle.V4
		var spendValue *int64
		if bundle.ValueBalance > 0 {
			v := bundle.ValueBalance
			spendValue = &v
		}
		for i, spend := range bundle.Spends {
			tx.SaplingSpends = append(tx.SaplingSpends, zewif.SaplingSpendDescription{
				Index:     i,
				Nullifier: [32]byte(spend.Nullifier),
				ZkProof:   spend.Proof.Bytes[:],
				Value:     spendValue,
			})
		}
		for i, output := range bundle.Outputs {
			tx.SaplingOutputs = append(tx.SaplingOutputs, zewif.SaplingOutputDescription{
				Index:         i,
				Commitment:    [32]byte(output.CMU),
				EphemeralKey:  [32]byte(output.EphemeralKey),
				EncCiphertext: output.EncCiphertext[:],
			})
		}
	case wtx.SaplingBundle.V5 != nil:
		bundle := wtx.SaplingBundle.V5
		for i, spend := range bundle.Spends {
			var proof []byte
			if i < len(bundle.SpendProofs) {
				proof = bundle.SpendProofs[i].Bytes[:]
			}
			tx.SaplingSpends = append(tx.SaplingSpends, zewif.SaplingSpendDescription{
				Index:     i,
				Nullifier: [32]byte(spend.Nullifier),
				ZkProof:   proof,
				// v5 hides per-spend values behind the aggregate
				// valueBalance; nothing here recovers them individually.
				Value: nil,
			})
		}
		for i, output := range bundle.Outputs {
			tx.SaplingOutputs = append(tx.SaplingOutputs, zewif.SaplingOutputDescription{
				Index:         i,
				Commitment:    [32]byte(output.CMU),
				EphemeralKey:  [32]byte(output.EphemeralKey),
				EncCiphertext: output.EncCiphertext[:],
			})
		}
	}
}

func convertOrchardBundle(wtx *zcashd.WalletTx, tx *zewif.Transaction) {
	if wtx.OrchardBundle == nil {
		return
	}
	for i, action := range wtx.OrchardBundle.Actions {
		tx.OrchardActions = append(tx.OrchardActions, zewif.OrchardActionDescription{
			Index:         i,
			Nullifier:     [32]byte(action.Nullifier),
			Commitment:    [32]byte(action.CMX),
			Anchor:        [32]byte(wtx.OrchardBundle.Anchor),
			EphemeralKey:  [32]byte(action.EphemeralKey),
			EncCiphertext: action.EncCiphertext[:],
		})
	}
}

func convertJoinSplits(wtx *zcashd.WalletTx, tx *zewif.Transaction) {
	for i, js := range wtx.JoinSplits.Descriptions {
		shape, proofBytes := encodeSproutProof(js.Proof)
		tx.JoinSplits = append(tx.JoinSplits, zewif.JoinSplitDescription{
			Index:       i,
			Anchor:      [32]byte(js.Anchor),
			Nullifiers:  [2][32]byte{[32]byte(js.Nullifiers[0].Blob32), [32]byte(js.Nullifiers[1].Blob32)},
			Commitments: [2][32]byte{[32]byte(js.Commitments[0].Blob32), [32]byte(js.Commitments[1].Blob32)},
			ProofShape:  shape,
			ZkProof:     proofBytes,
		})
	}
}

// encodeSproutProof flattens a JoinSplit's proof into a single byte slice,
// tagged with which shape produced it. PHGR's eight group elements (seven
// G1 points and one G2 point) are concatenated in their wire order; Groth16
// is already one opaque blob.
func encodeSproutProof(p zcashd.SproutProof) (zewif.SproutProofShape, []byte) {
	if p.Groth != nil {
		return zewif.SproutProofGroth, p.Groth.Bytes[:]
	}
	phgr := p.PHGR
	out := make([]byte, 0, 33*7+65)
	out = append(out, phgr.GA[:]...)
	out = append(out, phgr.GAPrime[:]...)
	out = append(out, phgr.GB[:]...)
	out = append(out, phgr.GBPrime[:]...)
	out = append(out, phgr.GC[:]...)
	out = append(out, phgr.GCPrime[:]...)
	out = append(out, phgr.GK[:]...)
	out = append(out, phgr.GH[:]...)
	return zewif.SproutProofPHGR, out
}

// sortedTxids returns txs's keys sorted by their display hex, for callers
// that need a deterministic iteration order (logging, tests).
func sortedTxids(txs map[zewif.TxId]*zewif.Transaction) []zewif.TxId {
	out := make([]zewif.TxId, 0, len(txs))
	for txid := range txs {
		out = append(out, txid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
