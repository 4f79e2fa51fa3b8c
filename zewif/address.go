package zewif

// Protocol tags which receiver type an Address encodes.
type Protocol string

const (
	ProtocolTransparent Protocol = "transparent"
	ProtocolShielded     Protocol = "shielded"
	ProtocolUnified       Protocol = "unified"
)

// Address is one address the wallet holds or has held, tagged with the
// protocol it belongs to. Name and Purpose mirror zcashd's "name"/"purpose"
// records; IVK and SpendingKey are only set for Shielded addresses the
// source wallet carries key material for.
type Address struct {
	String      string
	Protocol    Protocol
	Name        *string
	Purpose     *string
	IVK         *[32]byte
	SpendingKey *SpendingKey
}

// NewTransparentAddress builds a Transparent-protocol address with no key
// material attached, as recovered from a "name" record.
func NewTransparentAddress(s string) *Address {
	return &Address{String: s, Protocol: ProtocolTransparent}
}

// NewShieldedAddress builds a Shielded-protocol address carrying the
// incoming viewing key the source wallet filed it under.
func NewShieldedAddress(s string, ivk [32]byte) *Address {
	return &Address{String: s, Protocol: ProtocolShielded, IVK: &ivk}
}

// SetName attaches the human-readable label a "name" record gave this
// address, returning the receiver for chaining.
func (a *Address) SetName(name string) *Address {
	a.Name = &name
	return a
}

// SetPurpose attaches the purpose tag a "purpose" record gave this
// address, returning the receiver for chaining.
func (a *Address) SetPurpose(purpose string) *Address {
	a.Purpose = &purpose
	return a
}

// SetSpendingKey attaches the extended spending key matching this
// address's incoming viewing key, returning the receiver for chaining.
func (a *Address) SetSpendingKey(sk *SpendingKey) *Address {
	a.SpendingKey = sk
	return a
}
