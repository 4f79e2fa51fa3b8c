// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import (
	"encoding/binary"
	"testing"
)

func compactSizeByte(n int) []byte { return []byte{byte(n)} }

func shortStringBytes(s string) []byte {
	return append([]byte{byte(len(s))}, []byte(s)...)
}

func int32LE(v int32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return buf
}

func int64LE(v int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return buf
}

// minimalWalletRecords builds the smallest record set Decoder.Parse accepts:
// every keyname decodeOne/parseI64 fetches with soleRecord, and nothing else.
// This is scenario S1 (empty wallet) from the migration test matrix.
func minimalWalletRecords() SliceRecordStream {
	pub := compressedPubKey()
	defaultKeyValue := append(compactSizeByte(len(pub)), pub...)
	networkInfoValue := append(shortStringBytes("zcash"), shortStringBytes("main")...)

	return SliceRecordStream{
		{Key: RecordKey{Keyname: "bestblock"}, Value: compactSizeByte(0)},
		{Key: RecordKey{Keyname: "defaultkey"}, Value: defaultKeyValue},
		{Key: RecordKey{Keyname: "minversion"}, Value: int32LE(4020050)},
		{Key: RecordKey{Keyname: "witnesscachesize"}, Value: int64LE(0)},
		{Key: RecordKey{Keyname: "version"}, Value: int32LE(4020050)},
		{Key: RecordKey{Keyname: "networkinfo"}, Value: networkInfoValue},
		{Key: RecordKey{Keyname: "orchard_note_commitment_tree"}, Value: []byte{}},
	}
}

func TestDecoderParsesMinimalWalletWithNoResidue(t *testing.T) {
	w, err := NewDecoder(minimalWalletRecords()).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Unparsed) != 0 {
		t.Fatalf("expected no unparsed record kinds, got %v", w.Unparsed)
	}
	if len(w.Transactions) != 0 {
		t.Fatalf("expected no transactions, got %d", len(w.Transactions))
	}
	if len(w.Keys) != 0 {
		t.Fatalf("expected no keys, got %d", len(w.Keys))
	}
}

func TestDecoderPreservesUnrecognizedRecordKinds(t *testing.T) {
	records := minimalWalletRecords()
	records = append(records, Record{
		Key:   RecordKey{Keyname: "some_future_record", Payload: []byte("x")},
		Value: []byte{0x01, 0x02},
	})

	w, err := NewDecoder(records).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Unparsed["some_future_record"]) != 1 {
		t.Fatalf("expected unrecognized record kind to survive in Unparsed, got %v", w.Unparsed)
	}
}

func TestDecoderRejectsDuplicateSoleRecord(t *testing.T) {
	records := minimalWalletRecords()
	records = append(records, Record{Key: RecordKey{Keyname: "bestblock"}, Value: compactSizeByte(0)})

	if _, err := NewDecoder(records).Parse(); err == nil {
		t.Fatal("expected duplicate bestblock record to produce a structural-mismatch error")
	}
}

func TestDecoderRejectsMissingMandatoryRecord(t *testing.T) {
	records := minimalWalletRecords()[1:] // drop bestblock

	if _, err := NewDecoder(records).Parse(); err == nil {
		t.Fatal("expected missing bestblock record to error")
	}
}

func TestDecoderParsesKeyAndKeymetaPair(t *testing.T) {
	records := minimalWalletRecords()

	pub := compressedPubKey()
	privData := make([]byte, 214)
	for i := range privData {
		privData[i] = byte(i + 1)
	}
	concat := append(append([]byte{}, pub...), privData...)
	checksum := hash256(concat)
	keyValue := append(compactSizeByte(len(privData)), privData...)
	keyValue = append(keyValue, checksum[:]...)

	// version 1: no HD keypath/seed fingerprint follow create_time
	metaValue := append(int32LE(1), int64LE(0)...)

	pubPayload := append(compactSizeByte(len(pub)), pub...)
	records = append(records,
		Record{Key: RecordKey{Keyname: "key", Payload: pubPayload}, Value: keyValue},
		Record{Key: RecordKey{Keyname: "keymeta", Payload: pubPayload}, Value: metaValue},
	)

	w, err := NewDecoder(records).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Keys) != 1 {
		t.Fatalf("expected exactly one keypair, got %d", len(w.Keys))
	}
	if len(w.Unparsed) != 0 {
		t.Fatalf("expected no unparsed record kinds, got %v", w.Unparsed)
	}
}
