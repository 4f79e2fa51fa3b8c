// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"sort"

	"github.com/blockchaincommons/zewif-migrate/internal/bytestring"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Decoder drives a RecordStream through every record-kind parser and
// assembles a ZcashdWallet. It tracks which record keys go unclaimed so a
// caller can flag forward-incompatible or malformed dumps without the
// decode itself failing.
type Decoder struct {
	rs       RecordStream
	unparsed map[string]map[string][]byte // keyname -> payload(string) -> payload bytes
}

// NewDecoder wraps a record stream for decoding. It does not consume rs
// until Parse is called.
func NewDecoder(rs RecordStream) *Decoder {
	d := &Decoder{rs: rs, unparsed: map[string]map[string][]byte{}}
	for _, r := range rs.All() {
		m, ok := d.unparsed[r.Key.Keyname]
		if !ok {
			m = map[string][]byte{}
			d.unparsed[r.Key.Keyname] = m
		}
		m[string(r.Key.Payload)] = r.Value
	}
	return d
}

func (d *Decoder) markParsed(keyname string, payload []byte) {
	if m, ok := d.unparsed[keyname]; ok {
		delete(m, string(payload))
		if len(m) == 0 {
			delete(d.unparsed, keyname)
		}
	}
}

// Parse decodes every record in the stream into a ZcashdWallet. Records
// whose keyname nothing above claims are preserved in the result's
// Unparsed field rather than causing a decode failure: unfamiliar record
// kinds are expected when parsing a wallet from a zcashd release newer
// than this decoder.
func (d *Decoder) Parse() (*ZcashdWallet, error) {
	w := &ZcashdWallet{}
	var err error

	if w.Bestblock, err = d.parseBlockLocator("bestblock"); err != nil {
		return nil, err
	}
	if d.rs.HasKeyname("bestblock_nomerkle") {
		loc, err := d.parseBlockLocator("bestblock_nomerkle")
		if err != nil {
			return nil, err
		}
		w.BestblockNomerkle = &loc
	}
	if w.DefaultKey, err = d.parseDefaultKey(); err != nil {
		return nil, err
	}
	if w.Keys, err = d.parseKeys(); err != nil {
		return nil, err
	}
	if w.MinVersion, err = d.parseClientVersion("minversion"); err != nil {
		return nil, err
	}
	if w.AddressNames, err = d.parseAddressStrings("name"); err != nil {
		return nil, err
	}
	if d.rs.HasKeyname("orderposnext") {
		v, err := d.parseI64("orderposnext")
		if err != nil {
			return nil, err
		}
		w.OrderPosNext = &v
	}
	if w.KeyPool, err = d.parseKeyPool(); err != nil {
		return nil, err
	}
	if w.AddressPurposes, err = d.parseAddressStrings("purpose"); err != nil {
		return nil, err
	}
	if w.Transactions, err = d.parseTransactions(); err != nil {
		return nil, err
	}
	if w.ClientVersion, err = d.parseClientVersion("version"); err != nil {
		return nil, err
	}
	if w.WitnessCacheSize, err = d.parseI64("witnesscachesize"); err != nil {
		return nil, err
	}
	if w.SproutKeys, err = d.parseSproutKeys(); err != nil {
		return nil, err
	}
	if w.SaplingKeys, err = d.parseSaplingKeys(); err != nil {
		return nil, err
	}
	if w.NetworkInfo, err = decodeOne[NetworkInfo](d, "networkinfo"); err != nil {
		return nil, err
	}
	if w.OrchardNoteCommitmentTree, err = d.parseOrchardNoteCommitmentTree(); err != nil {
		return nil, err
	}
	if w.UnifiedAccounts, err = d.parseUnifiedAccounts(); err != nil {
		return nil, err
	}
	if w.UnifiedAddressMeta, err = d.parseUnifiedAddressMeta(); err != nil {
		return nil, err
	}
	if w.UnifiedFVKs, err = d.parseUnifiedFVKs(); err != nil {
		return nil, err
	}
	if w.SaplingAddresses, err = d.parseSaplingAddresses(); err != nil {
		return nil, err
	}
	if w.RecipientMappings, err = d.parseRecipientMappings(); err != nil {
		return nil, err
	}
	if w.MnemonicPhrase, err = d.parseMnemonicPhrase(); err != nil {
		return nil, err
	}
	if d.rs.HasKeyname("mnemonichdchain") {
		if w.MnemonicHDChain, err = decodeOne[MnemonicHDChain](d, "mnemonichdchain"); err != nil {
			return nil, err
		}
	}

	w.Unparsed = make(map[string][][]byte, len(d.unparsed))
	for keyname, m := range d.unparsed {
		for _, v := range m {
			w.Unparsed[keyname] = append(w.Unparsed[keyname], v)
		}
	}
	if len(w.Unparsed) > 0 {
		log.WithField("keynames", len(w.Unparsed)).Warn("zcashd dump contains record kinds this decoder did not claim")
	}

	return w, nil
}

// decodeOne decodes a single record's value -- the sole record expected for
// a given keyname -- with T's Decode method, marking it parsed.
func decodeOne[T any, PT ptrDecoder[T]](d *Decoder, keyname string) (T, error) {
	var zero T
	r, err := soleRecord(d.rs, keyname)
	if err != nil {
		return zero, err
	}
	var out T
	if err := PT(&out).Decode(bytestring.NewCursor(r.Value)); err != nil {
		return zero, errors.Wrapf(err, "decoding %q", keyname)
	}
	d.markParsed(keyname, r.Key.Payload)
	return out, nil
}

type ptrDecoder[T any] interface {
	*T
	Decode(c *bytestring.Cursor) error
}

func (d *Decoder) parseI64(keyname string) (int64, error) {
	r, err := soleRecord(d.rs, keyname)
	if err != nil {
		return 0, err
	}
	v, err := bytestring.NewCursor(r.Value).Int64(keyname)
	if err != nil {
		return 0, errors.Wrapf(err, "decoding %q", keyname)
	}
	d.markParsed(keyname, r.Key.Payload)
	return v, nil
}

func (d *Decoder) parseBlockLocator(keyname string) (BlockLocator, error) {
	return decodeOne[BlockLocator](d, keyname)
}

func (d *Decoder) parseClientVersion(keyname string) (ClientVersion, error) {
	return decodeOne[ClientVersion](d, keyname)
}

func (d *Decoder) parseDefaultKey() (PubKey, error) {
	return decodeOne[PubKey](d, "defaultkey")
}

func (d *Decoder) parseOrchardNoteCommitmentTree() ([]byte, error) {
	r, err := soleRecord(d.rs, "orchard_note_commitment_tree")
	if err != nil {
		return nil, err
	}
	d.markParsed("orchard_note_commitment_tree", r.Key.Payload)
	return append([]byte(nil), r.Value...), nil
}

func (d *Decoder) parseMnemonicPhrase() (*Bip39Mnemonic, error) {
	records := d.rs.ByKeyname("mnemonicphrase")
	if len(records) == 0 {
		return nil, nil
	}
	if len(records) != 1 {
		return nil, errors.Wrapf(ErrStructuralMismatch, "expected at most one %q record, found %d", "mnemonicphrase", len(records))
	}
	r := records[0]
	var fp Blob32
	if err := fp.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
		return nil, errors.Wrap(err, "mnemonicphrase fingerprint")
	}
	var m Bip39Mnemonic
	if err := m.Decode(bytestring.NewCursor(r.Value)); err != nil {
		return nil, errors.Wrap(err, "mnemonicphrase")
	}
	m.SetFingerprint(fp)
	d.markParsed("mnemonicphrase", r.Key.Payload)
	return &m, nil
}

func (d *Decoder) parseKeys() (map[string]*Key, error) {
	keyRecords := d.rs.ByKeyname("key")
	metaRecords := d.rs.ByKeyname("keymeta")
	if len(keyRecords) != len(metaRecords) {
		return nil, errors.Wrapf(ErrStructuralMismatch, "mismatched key (%d) and keymeta (%d) records", len(keyRecords), len(metaRecords))
	}
	metaByPayload := make(map[string][]byte, len(metaRecords))
	for _, r := range metaRecords {
		metaByPayload[string(r.Key.Payload)] = r.Value
	}

	out := make(map[string]*Key, len(keyRecords))
	for _, r := range keyRecords {
		var pub PubKey
		if err := pub.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrap(err, "key record pubkey")
		}
		var priv PrivKey
		if err := priv.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "key record privkey")
		}
		metaValue, ok := metaByPayload[string(r.Key.Payload)]
		if !ok {
			return nil, errors.Wrapf(ErrStructuralMismatch, "missing keymeta companion for key")
		}
		var meta KeyMetadata
		if err := meta.Decode(bytestring.NewCursor(metaValue)); err != nil {
			return nil, errors.Wrap(err, "keymeta")
		}
		keypair, err := NewKey(pub, priv, meta)
		if err != nil {
			return nil, errors.Wrap(err, "creating keypair")
		}
		out[string(pub)] = keypair

		d.markParsed("key", r.Key.Payload)
		d.markParsed("keymeta", r.Key.Payload)
	}
	return out, nil
}

func (d *Decoder) parseSproutKeys() (SproutKeys, error) {
	if !d.rs.HasKeyname("zkey") {
		return nil, nil
	}
	zkeyRecords := d.rs.ByKeyname("zkey")
	zmetaRecords := d.rs.ByKeyname("zkeymeta")
	if len(zkeyRecords) != len(zmetaRecords) {
		return nil, errors.Wrapf(ErrStructuralMismatch, "mismatched zkey (%d) and zkeymeta (%d) records", len(zkeyRecords), len(zmetaRecords))
	}
	metaByPayload := make(map[string][]byte, len(zmetaRecords))
	for _, r := range zmetaRecords {
		metaByPayload[string(r.Key.Payload)] = r.Value
	}

	out := make(SproutKeys, len(zkeyRecords))
	for _, r := range zkeyRecords {
		var addr SproutPaymentAddress
		if err := addr.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrap(err, "zkey record payment address")
		}
		var sk SproutSpendingKey
		if err := sk.U252.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "zkey record spending key")
		}
		if _, ok := metaByPayload[string(r.Key.Payload)]; !ok {
			return nil, errors.Wrapf(ErrStructuralMismatch, "missing zkeymeta companion for zkey")
		}
		out[addr] = sk

		d.markParsed("zkey", r.Key.Payload)
		d.markParsed("zkeymeta", r.Key.Payload)
	}
	return out, nil
}

func (d *Decoder) parseSaplingKeys() (map[SaplingIncomingViewingKey]*SaplingKey, error) {
	if !d.rs.HasKeyname("sapzkey") {
		return nil, nil
	}
	keyRecords := d.rs.ByKeyname("sapzkey")
	metaRecords := d.rs.ByKeyname("sapzkeymeta")
	if len(keyRecords) != len(metaRecords) {
		return nil, errors.Wrapf(ErrStructuralMismatch, "mismatched sapzkey (%d) and sapzkeymeta (%d) records", len(keyRecords), len(metaRecords))
	}
	metaByPayload := make(map[string][]byte, len(metaRecords))
	for _, r := range metaRecords {
		metaByPayload[string(r.Key.Payload)] = r.Value
	}

	out := make(map[SaplingIncomingViewingKey]*SaplingKey, len(keyRecords))
	for _, r := range keyRecords {
		var ivk SaplingIncomingViewingKey
		if err := ivk.Blob32.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrap(err, "sapzkey record ivk")
		}
		var esk SaplingExtendedSpendingKey
		if err := esk.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "sapzkey record extended spending key")
		}
		metaValue, ok := metaByPayload[string(r.Key.Payload)]
		if !ok {
			return nil, errors.Wrapf(ErrStructuralMismatch, "missing sapzkeymeta companion for sapzkey")
		}
		var meta KeyMetadata
		if err := meta.Decode(bytestring.NewCursor(metaValue)); err != nil {
			return nil, errors.Wrap(err, "sapzkeymeta")
		}
		out[ivk] = &SaplingKey{IVK: ivk, Key: esk, Metadata: meta}

		d.markParsed("sapzkey", r.Key.Payload)
		d.markParsed("sapzkeymeta", r.Key.Payload)
	}
	return out, nil
}

func (d *Decoder) parseAddressStrings(keyname string) (map[Address]string, error) {
	records := d.rs.ByKeyname(keyname)
	out := make(map[Address]string, len(records))
	for _, r := range records {
		var addr Address
		if err := addr.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrapf(err, "%s record address", keyname)
		}
		s, err := decodeShortStringValue(r.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "%s record value", keyname)
		}
		if _, dup := out[addr]; dup {
			return nil, errors.Wrapf(ErrStructuralMismatch, "duplicate address in %s records: %s", keyname, addr)
		}
		out[addr] = s
		d.markParsed(keyname, r.Key.Payload)
	}
	return out, nil
}

func decodeShortStringValue(value []byte) (string, error) {
	c := bytestring.NewCursor(value)
	s, err := c.ShortString("value")
	if err != nil {
		return "", err
	}
	return s, nil
}

func (d *Decoder) parseKeyPool() (map[int64]KeyPoolEntry, error) {
	records := d.rs.ByKeyname("pool")
	out := make(map[int64]KeyPoolEntry, len(records))
	for _, r := range records {
		idx, err := bytestring.NewCursor(r.Key.Payload).Int64("pool record index")
		if err != nil {
			return nil, err
		}
		var entry KeyPoolEntry
		if err := entry.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "pool record entry")
		}
		out[idx] = entry
		d.markParsed("pool", r.Key.Payload)
	}
	return out, nil
}

func (d *Decoder) parseUnifiedAccounts() (map[string]UnifiedAccountMetadata, error) {
	records := d.rs.ByKeyname("unifiedaccount")
	if len(records) == 0 {
		return nil, nil
	}
	out := make(map[string]UnifiedAccountMetadata, len(records))
	for _, r := range records {
		var meta UnifiedAccountMetadata
		if err := meta.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "unifiedaccount record")
		}
		out[string(r.Key.Payload)] = meta
		d.markParsed("unifiedaccount", r.Key.Payload)
	}
	return out, nil
}

// parseUnifiedAddressMeta keys by the address-id record key decoded the
// same way a "name"/"purpose" record's key is: as a short-string encoded
// Address. This is what lets the migrator join unifiedaddrmeta directly
// against AddressNames for transparent addresses (see migrate's buildAccounts
// and populateAddresses); nothing in the retrievable record layout links a
// Sapling payment address to an address-id the same way, so Sapling
// addresses are placed in the first account.
func (d *Decoder) parseUnifiedAddressMeta() (map[Address]UnifiedAddressMetadata, error) {
	records := d.rs.ByKeyname("unifiedaddrmeta")
	if len(records) == 0 {
		return nil, nil
	}
	out := make(map[Address]UnifiedAddressMetadata, len(records))
	for _, r := range records {
		var addr Address
		if err := addr.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrap(err, "unifiedaddrmeta record key")
		}
		var meta UnifiedAddressMetadata
		if err := meta.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "unifiedaddrmeta record")
		}
		out[addr] = meta
		d.markParsed("unifiedaddrmeta", r.Key.Payload)
	}
	return out, nil
}

func (d *Decoder) parseUnifiedFVKs() (map[string]UnifiedFullViewingKey, error) {
	records := d.rs.ByKeyname("unifiedfvk")
	if len(records) == 0 {
		return nil, nil
	}
	out := make(map[string]UnifiedFullViewingKey, len(records))
	for _, r := range records {
		var fvk UnifiedFullViewingKey
		if err := fvk.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "unifiedfvk record")
		}
		out[string(r.Key.Payload)] = fvk
		d.markParsed("unifiedfvk", r.Key.Payload)
	}
	return out, nil
}

func (d *Decoder) parseSaplingAddresses() (map[SaplingPaymentAddress]SaplingIncomingViewingKey, error) {
	records := d.rs.ByKeyname("sapzaddr")
	if len(records) == 0 {
		return nil, nil
	}
	out := make(map[SaplingPaymentAddress]SaplingIncomingViewingKey, len(records))
	for _, r := range records {
		var addr SaplingPaymentAddress
		if err := addr.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrap(err, "sapzaddr record address")
		}
		var ivk SaplingIncomingViewingKey
		if err := ivk.Blob32.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrap(err, "sapzaddr record ivk")
		}
		out[addr] = ivk
		d.markParsed("sapzaddr", r.Key.Payload)
	}
	return out, nil
}

func (d *Decoder) parseRecipientMappings() (map[TxID][]RecipientMapping, error) {
	records := d.rs.ByKeyname("recipientmapping")
	if len(records) == 0 {
		return nil, nil
	}
	out := make(map[TxID][]RecipientMapping, len(records))
	for _, r := range records {
		var txid Blob32
		if err := txid.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrap(err, "recipientmapping record key")
		}
		mappings, err := bytestring.ParseVec[RecipientMapping](bytestring.NewCursor(r.Value), "recipientmapping record value")
		if err != nil {
			return nil, errors.Wrap(err, "recipientmapping record value")
		}
		out[TxID(txid)] = mappings
		d.markParsed("recipientmapping", r.Key.Payload)
	}
	return out, nil
}

// parseTransactions decodes the "tx" record family, sorting by raw key
// payload first so that which records were inserted in which physical
// order in the BerkeleyDB file has no bearing on the result -- the B-tree
// storage itself already orders pages by key, but callers that hand the
// decoder records from an unordered intermediate format (e.g. JSON) would
// otherwise get a wallet whose processing order is not reproducible.
func (d *Decoder) parseTransactions() (map[TxID]*WalletTx, error) {
	if !d.rs.HasKeyname("tx") {
		return nil, nil
	}
	records := d.rs.ByKeyname("tx")
	sorted := append([]Record(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		return string(sorted[i].Key.Payload) < string(sorted[j].Key.Payload)
	})

	out := make(map[TxID]*WalletTx, len(sorted))
	for _, r := range sorted {
		var keyTxid Blob32
		if err := keyTxid.Decode(bytestring.NewCursor(r.Key.Payload)); err != nil {
			return nil, errors.Wrap(err, "tx record key")
		}
		tx := &WalletTx{}
		if err := tx.Decode(bytestring.NewCursor(r.Value)); err != nil {
			return nil, errors.Wrapf(err, "tx record %x", keyTxid)
		}
		txid, err := tx.TxID()
		if err != nil {
			return nil, errors.Wrapf(err, "computing txid for tx record %x", keyTxid)
		}
		if _, dup := out[txid]; dup {
			return nil, errors.Wrapf(ErrStructuralMismatch, "duplicate transaction found: %s", txid)
		}
		out[txid] = tx
		d.markParsed("tx", r.Key.Payload)
	}
	return out, nil
}
