package envelope

import (
	"github.com/pkg/errors"

	"github.com/blockchaincommons/zewif-migrate/zewif"
)

// Unsupported is a Writer/Reader stub for an output format accepted on the
// CLI surface but not implemented in this build: UR text rendering and the
// Gordian "format" text encoding both require a CBOR/UR library, and none
// is available to this module (see the package doc comment). It fails
// loudly instead of silently writing nothing.
type Unsupported struct {
	Format Format
}

func (u Unsupported) Write(*zewif.Top) ([]byte, error) {
	return nil, errors.Errorf("--to %s is not implemented in this build: no CBOR/UR library available", u.Format)
}

func (u Unsupported) Read([]byte) (*zewif.Top, error) {
	return nil, errors.Errorf("--from %s is not implemented in this build: no CBOR/UR library available", u.Format)
}
