// Package envelope defines the boundary between the migrator's in-memory
// interchange object and whatever serializes it for storage or transport.
// The real Gordian Envelope (tagged CBOR, UR text rendering) is out of
// scope: no CBOR/UR library exists anywhere this build draws dependencies
// from, so this package exposes only the interfaces the CLI needs plus one
// concrete, minimal codec (Dump) sufficient to round-trip a zewif.Top for
// testing and demonstration.
package envelope

import "github.com/blockchaincommons/zewif-migrate/zewif"

// Format names an output encoding the CLI's --to flag can request.
type Format string

const (
	FormatZewif  Format = "zewif"
	FormatUR     Format = "ur"
	FormatFormat Format = "format"
	FormatDump   Format = "dump"
)

// Writer serializes a migrated interchange root into a byte slice.
type Writer interface {
	Write(top *zewif.Top) ([]byte, error)
}

// Reader deserializes an interchange root previously produced by a Writer.
type Reader interface {
	Read(data []byte) (*zewif.Top, error)
}
