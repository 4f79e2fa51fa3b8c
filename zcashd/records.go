// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/pkg/errors"

// RecordKey identifies a BerkeleyDB wallet record: the keyname under which
// it was stored ("key", "tx", "name", ...) plus the raw key payload that
// distinguishes records sharing a keyname.
type RecordKey struct {
	Keyname string
	Payload []byte
}

// Record is a single decoded (key, value) pair as the BerkeleyDB page-level
// reader hands it to the decoder. Producing this stream is explicitly out of
// scope here; Decoder only consumes it through RecordStream.
type Record struct {
	Key   RecordKey
	Value []byte
}

// RecordStream is the input contract Decoder drives: a finite collection of
// records queryable by keyname, without prescribing how the underlying
// BerkeleyDB pages were read or ordered.
type RecordStream interface {
	// All returns every record in the stream, in implementation-defined
	// order.
	All() []Record
	// ByKeyname returns every record whose key's Keyname matches, in the
	// order the stream holds them.
	ByKeyname(keyname string) []Record
	// HasKeyname reports whether any record with the given keyname exists.
	HasKeyname(keyname string) bool
}

// SliceRecordStream is the simplest RecordStream: an in-memory slice,
// sufficient for tests and for callers that already have the full record
// set materialized (e.g. a BerkeleyDB dump read entirely into memory).
type SliceRecordStream []Record

func (s SliceRecordStream) All() []Record { return []Record(s) }

func (s SliceRecordStream) ByKeyname(keyname string) []Record {
	var out []Record
	for _, r := range s {
		if r.Key.Keyname == keyname {
			out = append(out, r)
		}
	}
	return out
}

func (s SliceRecordStream) HasKeyname(keyname string) bool {
	for _, r := range s {
		if r.Key.Keyname == keyname {
			return true
		}
	}
	return false
}

// soleRecord returns the single record expected for a keyname, erroring if
// it is missing or duplicated.
func soleRecord(rs RecordStream, keyname string) (Record, error) {
	records := rs.ByKeyname(keyname)
	if len(records) != 1 {
		return Record{}, errors.Wrapf(ErrStructuralMismatch, "expected exactly one %q record, found %d", keyname, len(records))
	}
	return records[0], nil
}
