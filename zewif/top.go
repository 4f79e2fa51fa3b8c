package zewif

import "github.com/pkg/errors"

// Top is the root of the interchange model: a set of migrated wallets
// plus a flat txid-to-transaction map shared across all of them. It is
// constructed once by the migrator and read-only thereafter.
type Top struct {
	Wallets      []*Wallet
	transactions map[TxId]*Transaction
}

// NewTop constructs an empty interchange root.
func NewTop() *Top {
	return &Top{transactions: make(map[TxId]*Transaction)}
}

// AddWallet appends a migrated wallet to the interchange root.
func (t *Top) AddWallet(w *Wallet) {
	t.Wallets = append(t.Wallets, w)
}

// AddTransaction records tx in the top-level transaction map. A txid
// appearing twice is a migrator defect (the source decoder already
// rejects duplicate "tx" records), so it is reported rather than
// silently overwritten.
func (t *Top) AddTransaction(tx *Transaction) error {
	if _, exists := t.transactions[tx.TxId]; exists {
		return errors.Errorf("transaction %s already present in top-level map", tx.TxId)
	}
	t.transactions[tx.TxId] = tx
	return nil
}

// Transaction looks up a transaction by its id.
func (t *Top) Transaction(txid TxId) (*Transaction, bool) {
	tx, ok := t.transactions[txid]
	return tx, ok
}

// Transactions returns every transaction in the top-level map, in
// implementation-defined order.
func (t *Top) Transactions() []*Transaction {
	out := make([]*Transaction, 0, len(t.transactions))
	for _, tx := range t.transactions {
		out = append(out, tx)
	}
	return out
}

// TransactionCount reports how many transactions the top-level map holds.
func (t *Top) TransactionCount() int {
	return len(t.transactions)
}
