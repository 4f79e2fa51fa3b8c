package zewif

import "github.com/pkg/errors"

// Account is one spending/viewing account within a wallet: a named group
// of addresses (at most one entry per address string) and the set of
// transactions relevant to it.
type Account struct {
	Name              string
	ZIP32AccountIndex *uint32
	addresses         map[string]*Address
	relevantTxIds     map[TxId]struct{}
}

// NewAccount constructs an empty account with the given display name.
func NewAccount(name string) *Account {
	return &Account{
		Name:          name,
		addresses:     make(map[string]*Address),
		relevantTxIds: make(map[TxId]struct{}),
	}
}

// SetZIP32AccountIndex records this account's ZIP-32 hardened derivation
// index, for accounts recovered from unified-accounts metadata.
func (a *Account) SetZIP32AccountIndex(index uint32) *Account {
	a.ZIP32AccountIndex = &index
	return a
}

// AddAddress adds addr to this account. An address string appearing twice
// in the same account is a migrator defect, not a source-data condition,
// so it is reported rather than silently overwritten.
func (a *Account) AddAddress(addr *Address) error {
	if _, exists := a.addresses[addr.String]; exists {
		return errors.Errorf("address %q already present in account %q", addr.String, a.Name)
	}
	a.addresses[addr.String] = addr
	return nil
}

// Address looks up an address this account holds by its string encoding.
func (a *Account) Address(s string) (*Address, bool) {
	addr, ok := a.addresses[s]
	return addr, ok
}

// Addresses returns every address this account holds, in implementation-
// defined order.
func (a *Account) Addresses() []*Address {
	out := make([]*Address, 0, len(a.addresses))
	for _, addr := range a.addresses {
		out = append(out, addr)
	}
	return out
}

// AddRelevantTxId marks txid as relevant to this account. Idempotent: a
// transaction already marked relevant is left unchanged.
func (a *Account) AddRelevantTxId(txid TxId) {
	a.relevantTxIds[txid] = struct{}{}
}

// HasRelevantTxId reports whether txid was previously marked relevant to
// this account.
func (a *Account) HasRelevantTxId(txid TxId) bool {
	_, ok := a.relevantTxIds[txid]
	return ok
}

// RelevantTxIds returns every transaction id marked relevant to this
// account, in implementation-defined order.
func (a *Account) RelevantTxIds() []TxId {
	out := make([]TxId, 0, len(a.relevantTxIds))
	for txid := range a.relevantTxIds {
		out = append(out, txid)
	}
	return out
}
