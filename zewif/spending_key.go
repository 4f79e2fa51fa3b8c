package zewif

// SpendingKey is a Sapling ZIP-32 extended spending key, carried on a
// Shielded Address when the source wallet holds matching key material for
// its incoming viewing key.
type SpendingKey struct {
	ASK           [32]byte
	NSK           [32]byte
	OVK           [32]byte
	Depth         uint8
	ParentFVKTag  [4]byte
	ChildIndex    uint32
	ChainCode     [32]byte
	DiversifierKey [32]byte
}
