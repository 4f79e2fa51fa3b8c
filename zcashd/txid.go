// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/blockchaincommons/zewif-migrate/internal/blake2b"
	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
	"github.com/pkg/errors"
)

// TxID is a transaction's 32-byte identifier, stored internally in the
// little-endian, display-reversed order a Cursor would read it in off the
// wire, matching the rest of this package's Blob32 convention.
type TxID Blob32

// String renders the txid the way zcashd and block explorers display it:
// big-endian hex, i.e. the byte-reverse of the wire encoding.
func (t TxID) String() string {
	var rev [32]byte
	for i, b := range t {
		rev[31-i] = b
	}
	return hex.EncodeToString(rev[:])
}

// TxID computes the transaction's identifier, dispatching on version the
// same way decoding does: legacy transactions hash their full serialization,
// v5 transactions use the ZIP-244 digest tree, which excludes proofs and
// signatures and therefore cannot simply hash RawBytes.
func (tx *WalletTx) TxID() (TxID, error) {
	if tx.Version.IsZip225() {
		return zip244TxID(tx.RawBytes)
	}
	return TxID(hash256(tx.RawBytes)), nil
}

func personalization(s string) [16]byte {
	var p [16]byte
	copy(p[:], s)
	return p
}

func txidPersonalization(consensusBranchID uint32) [16]byte {
	var p [16]byte
	copy(p[:12], "ZcashTxHash_")
	binary.LittleEndian.PutUint32(p[12:], consensusBranchID)
	return p
}

func sumDigest(h hash.Hash) [32]byte {
	var d [32]byte
	copy(d[:], h.Sum(nil))
	return d
}

func writeCompactSize(h hash.Hash, n int) {
	switch {
	case n < 253:
		h.Write([]byte{byte(n)})
	case n < 0x10000:
		var buf [3]byte
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(n))
		h.Write(buf[:])
	default:
		var buf [5]byte
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(n))
		h.Write(buf[:])
	}
}

// zip244TxID computes the transaction ID for a v5 transaction per ZIP 244,
// re-walking rawBytes to build the txid_digest tree:
//
//	txid = H("ZcashTxHash_"||branchID,
//	  header_digest || transparent_digest || sapling_digest || orchard_digest)
func zip244TxID(rawBytes []byte) (TxID, error) {
	c := bytestring.NewCursor(rawBytes)

	headerDigest, branchID, err := readAndHashHeader(c)
	if err != nil {
		return TxID{}, errors.Wrap(err, "txid header")
	}
	transparentDigest, err := readAndHashTransparent(c)
	if err != nil {
		return TxID{}, errors.Wrap(err, "txid transparent")
	}
	saplingDigest, spendCount, outputCount, err := readAndHashSapling(c)
	if err != nil {
		return TxID{}, errors.Wrap(err, "txid sapling")
	}
	if err := skipSaplingProofsAndSigs(c, spendCount, outputCount); err != nil {
		return TxID{}, errors.Wrap(err, "txid sapling proofs")
	}
	orchardDigest, err := readAndHashOrchard(c)
	if err != nil {
		return TxID{}, errors.Wrap(err, "txid orchard")
	}
	// Remaining bytes (Orchard proofs, auth sigs, binding sig) are excluded
	// from the txid by design; they are not consumed.

	h := blake2b.New256Personalized(txidPersonalization(branchID))
	h.Write(headerDigest[:])
	h.Write(transparentDigest[:])
	h.Write(saplingDigest[:])
	h.Write(orchardDigest[:])

	var id TxID
	copy(id[:], h.Sum(nil))
	return id, nil
}

func readAndHashHeader(c *bytestring.Cursor) ([32]byte, uint32, error) {
	headerBytes, err := c.Bytes(20, "txid header fields")
	if err != nil {
		return [32]byte{}, 0, err
	}
	branchID := binary.LittleEndian.Uint32(headerBytes[8:12])
	return blake2b.Sum256Personalized(personalization("ZTxIdHeadersHash"), headerBytes), branchID, nil
}

func readAndHashTransparent(c *bytestring.Cursor) ([32]byte, error) {
	txInCount, err := c.CompactSizeInt("txid tx_in_count")
	if err != nil {
		return [32]byte{}, err
	}

	prevoutsHasher := blake2b.New256Personalized(personalization("ZTxIdPrevoutHash"))
	sequenceHasher := blake2b.New256Personalized(personalization("ZTxIdSequencHash"))

	for i := 0; i < txInCount; i++ {
		prevout, err := c.Bytes(36, "txid input prevout")
		if err != nil {
			return [32]byte{}, errors.Wrapf(err, "input %d", i)
		}
		prevoutsHasher.Write(prevout)

		if _, err := c.CompactBytes("txid input scriptSig"); err != nil {
			return [32]byte{}, errors.Wrapf(err, "input %d scriptSig", i)
		}

		seq, err := c.Bytes(4, "txid input sequence")
		if err != nil {
			return [32]byte{}, errors.Wrapf(err, "input %d sequence", i)
		}
		sequenceHasher.Write(seq)
	}

	txOutCount, err := c.CompactSizeInt("txid tx_out_count")
	if err != nil {
		return [32]byte{}, err
	}

	outputsHasher := blake2b.New256Personalized(personalization("ZTxIdOutputsHash"))

	for i := 0; i < txOutCount; i++ {
		value, err := c.Bytes(8, "txid output value")
		if err != nil {
			return [32]byte{}, errors.Wrapf(err, "output %d", i)
		}
		outputsHasher.Write(value)

		scriptLen, err := c.CompactSizeInt("txid output script length")
		if err != nil {
			return [32]byte{}, errors.Wrapf(err, "output %d", i)
		}
		writeCompactSize(outputsHasher, scriptLen)

		script, err := c.Bytes(scriptLen, "txid output script")
		if err != nil {
			return [32]byte{}, errors.Wrapf(err, "output %d script", i)
		}
		outputsHasher.Write(script)
	}

	if txInCount == 0 && txOutCount == 0 {
		return blake2b.Sum256Personalized(personalization("ZTxIdTranspaHash"), nil), nil
	}

	h := blake2b.New256Personalized(personalization("ZTxIdTranspaHash"))
	prevoutsDigest := sumDigest(prevoutsHasher)
	sequenceDigest := sumDigest(sequenceHasher)
	outputsDigest := sumDigest(outputsHasher)
	h.Write(prevoutsDigest[:])
	h.Write(sequenceDigest[:])
	h.Write(outputsDigest[:])
	return sumDigest(h), nil
}

func readAndHashSapling(c *bytestring.Cursor) (digest [32]byte, spendCount, outputCount int, err error) {
	spendCount, err = c.CompactSizeInt("txid sapling spend count")
	if err != nil {
		return
	}

	var compactHasher hash.Hash
	var spendCvRk []byte
	if spendCount > 0 {
		compactHasher = blake2b.New256Personalized(personalization("ZTxIdSSpendCHash"))
		spendCvRk = make([]byte, 0, spendCount*64)
	}

	for i := 0; i < spendCount; i++ {
		cv, e := c.Bytes(32, "txid spend cv")
		if e != nil {
			err = errors.Wrapf(e, "spend %d", i)
			return
		}
		nullifier, e := c.Bytes(32, "txid spend nullifier")
		if e != nil {
			err = errors.Wrapf(e, "spend %d", i)
			return
		}
		rk, e := c.Bytes(32, "txid spend rk")
		if e != nil {
			err = errors.Wrapf(e, "spend %d", i)
			return
		}
		compactHasher.Write(nullifier)
		spendCvRk = append(spendCvRk, cv...)
		spendCvRk = append(spendCvRk, rk...)
	}

	outputCount, err = c.CompactSizeInt("txid sapling output count")
	if err != nil {
		return
	}

	var outCompactHasher, outMemosHasher, outNoncompactHasher hash.Hash
	if outputCount > 0 {
		outCompactHasher = blake2b.New256Personalized(personalization("ZTxIdSOutC__Hash"))
		outMemosHasher = blake2b.New256Personalized(personalization("ZTxIdSOutM__Hash"))
		outNoncompactHasher = blake2b.New256Personalized(personalization("ZTxIdSOutN__Hash"))
	}

	for i := 0; i < outputCount; i++ {
		cv, e := c.Bytes(32, "txid output cv")
		if e != nil {
			err = errors.Wrapf(e, "output %d", i)
			return
		}
		cmu, e := c.Bytes(32, "txid output cmu")
		if e != nil {
			err = errors.Wrapf(e, "output %d", i)
			return
		}
		ephemeralKey, e := c.Bytes(32, "txid output ephemeralKey")
		if e != nil {
			err = errors.Wrapf(e, "output %d", i)
			return
		}
		encCiphertext, e := c.Bytes(580, "txid output encCiphertext")
		if e != nil {
			err = errors.Wrapf(e, "output %d", i)
			return
		}
		outCiphertext, e := c.Bytes(80, "txid output outCiphertext")
		if e != nil {
			err = errors.Wrapf(e, "output %d", i)
			return
		}

		outCompactHasher.Write(cmu)
		outCompactHasher.Write(ephemeralKey)
		outCompactHasher.Write(encCiphertext[:52])
		outMemosHasher.Write(encCiphertext[52:564])
		outNoncompactHasher.Write(cv)
		outNoncompactHasher.Write(encCiphertext[564:])
		outNoncompactHasher.Write(outCiphertext)
	}

	var valueBalance, anchor []byte
	if spendCount+outputCount > 0 {
		if valueBalance, err = c.Bytes(8, "txid valueBalanceSapling"); err != nil {
			return
		}
	}
	if spendCount > 0 {
		if anchor, err = c.Bytes(32, "txid anchorSapling"); err != nil {
			return
		}
	}

	if spendCount+outputCount == 0 {
		digest = blake2b.Sum256Personalized(personalization("ZTxIdSaplingHash"), nil)
		return
	}

	var spendsDigest [32]byte
	if spendCount == 0 {
		spendsDigest = blake2b.Sum256Personalized(personalization("ZTxIdSSpendsHash"), nil)
	} else {
		compactDigest := sumDigest(compactHasher)
		noncompactHasher := blake2b.New256Personalized(personalization("ZTxIdSSpendNHash"))
		for i := 0; i < spendCount; i++ {
			off := i * 64
			noncompactHasher.Write(spendCvRk[off : off+32])
			noncompactHasher.Write(anchor)
			noncompactHasher.Write(spendCvRk[off+32 : off+64])
		}
		noncompactDigest := sumDigest(noncompactHasher)

		h := blake2b.New256Personalized(personalization("ZTxIdSSpendsHash"))
		h.Write(compactDigest[:])
		h.Write(noncompactDigest[:])
		spendsDigest = sumDigest(h)
	}

	var outputsDigest [32]byte
	if outputCount == 0 {
		outputsDigest = blake2b.Sum256Personalized(personalization("ZTxIdSOutputHash"), nil)
	} else {
		compactDigest := sumDigest(outCompactHasher)
		memosDigest := sumDigest(outMemosHasher)
		noncompactDigest := sumDigest(outNoncompactHasher)

		h := blake2b.New256Personalized(personalization("ZTxIdSOutputHash"))
		h.Write(compactDigest[:])
		h.Write(memosDigest[:])
		h.Write(noncompactDigest[:])
		outputsDigest = sumDigest(h)
	}

	saplingHasher := blake2b.New256Personalized(personalization("ZTxIdSaplingHash"))
	saplingHasher.Write(spendsDigest[:])
	saplingHasher.Write(outputsDigest[:])
	saplingHasher.Write(valueBalance)
	digest = sumDigest(saplingHasher)
	return
}

func skipSaplingProofsAndSigs(c *bytestring.Cursor, spendCount, outputCount int) error {
	if err := c.Skip(192*spendCount, "txid vSpendProofsSapling"); err != nil {
		return err
	}
	if err := c.Skip(64*spendCount, "txid vSpendAuthSigsSapling"); err != nil {
		return err
	}
	if err := c.Skip(192*outputCount, "txid vOutputProofsSapling"); err != nil {
		return err
	}
	if spendCount+outputCount > 0 {
		if err := c.Skip(64, "txid bindingSigSapling"); err != nil {
			return err
		}
	}
	return nil
}

func readAndHashOrchard(c *bytestring.Cursor) ([32]byte, error) {
	actionsCount, err := c.CompactSizeInt("txid orchard actions count")
	if err != nil {
		return [32]byte{}, err
	}
	if actionsCount == 0 {
		return blake2b.Sum256Personalized(personalization("ZTxIdOrchardHash"), nil), nil
	}

	compactHasher := blake2b.New256Personalized(personalization("ZTxIdOrcActCHash"))
	memosHasher := blake2b.New256Personalized(personalization("ZTxIdOrcActMHash"))
	noncompactHasher := blake2b.New256Personalized(personalization("ZTxIdOrcActNHash"))

	for i := 0; i < actionsCount; i++ {
		cv, e := c.Bytes(32, "txid action cv")
		if e != nil {
			return [32]byte{}, errors.Wrapf(e, "action %d", i)
		}
		nullifier, e := c.Bytes(32, "txid action nullifier")
		if e != nil {
			return [32]byte{}, errors.Wrapf(e, "action %d", i)
		}
		rk, e := c.Bytes(32, "txid action rk")
		if e != nil {
			return [32]byte{}, errors.Wrapf(e, "action %d", i)
		}
		cmx, e := c.Bytes(32, "txid action cmx")
		if e != nil {
			return [32]byte{}, errors.Wrapf(e, "action %d", i)
		}
		ephemeralKey, e := c.Bytes(32, "txid action ephemeralKey")
		if e != nil {
			return [32]byte{}, errors.Wrapf(e, "action %d", i)
		}
		encCiphertext, e := c.Bytes(580, "txid action encCiphertext")
		if e != nil {
			return [32]byte{}, errors.Wrapf(e, "action %d", i)
		}
		outCiphertext, e := c.Bytes(80, "txid action outCiphertext")
		if e != nil {
			return [32]byte{}, errors.Wrapf(e, "action %d", i)
		}

		compactHasher.Write(nullifier)
		compactHasher.Write(cmx)
		compactHasher.Write(ephemeralKey)
		compactHasher.Write(encCiphertext[:52])
		memosHasher.Write(encCiphertext[52:564])
		noncompactHasher.Write(cv)
		noncompactHasher.Write(rk)
		noncompactHasher.Write(encCiphertext[564:])
		noncompactHasher.Write(outCiphertext)
	}

	flags, err := c.Bytes(1, "txid flagsOrchard")
	if err != nil {
		return [32]byte{}, err
	}
	valueBalance, err := c.Bytes(8, "txid valueBalanceOrchard")
	if err != nil {
		return [32]byte{}, err
	}
	anchor, err := c.Bytes(32, "txid anchorOrchard")
	if err != nil {
		return [32]byte{}, err
	}

	compactDigest := sumDigest(compactHasher)
	memosDigest := sumDigest(memosHasher)
	noncompactDigest := sumDigest(noncompactHasher)

	h := blake2b.New256Personalized(personalization("ZTxIdOrchardHash"))
	h.Write(compactDigest[:])
	h.Write(memosDigest[:])
	h.Write(noncompactDigest[:])
	h.Write(flags)
	h.Write(valueBalance)
	h.Write(anchor)
	return sumDigest(h), nil
}
