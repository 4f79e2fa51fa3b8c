// Package migrate is the migrator: given a decoded zcashd wallet, it
// produces the interchange model (package zewif). It is a pure pipeline
// over immutable inputs -- every phase reads the source wallet and
// appends to the output accumulator, never mutating either.
package migrate

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/blockchaincommons/zewif-migrate/zcashd"
	"github.com/blockchaincommons/zewif-migrate/zewif"
)

// Migrate converts a fully decoded zcashd wallet into the interchange
// model. Every phase (A-F) runs in sequence; only Phase E (attribution)
// recovers from its own errors rather than failing the whole migration.
func Migrate(w *zcashd.ZcashdWallet) (*zewif.Top, error) {
	top := zewif.NewTop()
	network := zewif.NetworkFromIdentifier(w.NetworkInfo.Identifier)
	wallet := zewif.NewWallet(network)

	// Phase A: seed material.
	if seed := convertSeedMaterial(w); seed != nil {
		wallet.SetSeedMaterial(seed)
	}

	// Phase B: account construction.
	accounts, addressIDToAccount := buildAccounts(w)

	// Phase C: address population.
	if err := populateAddresses(w, network, accounts, addressIDToAccount); err != nil {
		return nil, errors.Wrap(err, "populating addresses")
	}
	for _, account := range accounts {
		wallet.AddAccount(account)
	}
	top.AddWallet(wallet)

	// Phase D: transaction conversion.
	txs, err := convertTransactions(w)
	if err != nil {
		return nil, errors.Wrap(err, "converting transactions")
	}
	for _, tx := range txs {
		if err := top.AddTransaction(tx); err != nil {
			return nil, err
		}
	}

	// Phase F: note-position back-fill.
	backfillNotePositions(w, txs)

	// Phase E: transaction attribution.
	attributeTransactions(w, network, accounts, txs)

	return top, nil
}

// convertSeedMaterial implements Phase A: a non-empty BIP-39 mnemonic
// becomes the wallet's seed material; otherwise none is set.
func convertSeedMaterial(w *zcashd.ZcashdWallet) *zewif.SeedMaterial {
	if w.MnemonicPhrase == nil || w.MnemonicPhrase.Mnemonic == "" {
		return nil
	}
	return &zewif.SeedMaterial{
		Mnemonic:         w.MnemonicPhrase.Mnemonic,
		MnemonicLanguage: w.MnemonicPhrase.Language,
	}
}

// buildAccounts implements Phase B: one account per unified-accounts
// metadata entry, named "Account #{index}", or a single Default Account
// when no unified-accounts metadata exists. It also returns the
// address-to-account map built from UnifiedAddressMeta, keyed the same
// way AddressNames is keyed so Phase C can join them directly for
// transparent addresses.
func buildAccounts(w *zcashd.ZcashdWallet) ([]*zewif.Account, map[zcashd.Address]*zewif.Account) {
	if len(w.UnifiedAccounts) == 0 {
		return []*zewif.Account{zewif.NewAccount("Default Account")}, nil
	}

	keyIDs := make([]string, 0, len(w.UnifiedAccounts))
	for keyID := range w.UnifiedAccounts {
		keyIDs = append(keyIDs, keyID)
	}
	sort.Strings(keyIDs)

	accounts := make([]*zewif.Account, 0, len(keyIDs))
	accountByZIP32Index := make(map[uint32]*zewif.Account, len(keyIDs))
	for _, keyID := range keyIDs {
		meta := w.UnifiedAccounts[keyID]
		account := zewif.NewAccount(fmt.Sprintf("Account #%d", meta.AccountID)).SetZIP32AccountIndex(meta.AccountID)
		accounts = append(accounts, account)
		accountByZIP32Index[meta.AccountID] = account
	}

	addressIDToAccount := make(map[zcashd.Address]*zewif.Account, len(w.UnifiedAddressMeta))
	for addr, meta := range w.UnifiedAddressMeta {
		if account, ok := accountByZIP32Index[meta.AccountID]; ok {
			addressIDToAccount[addr] = account
		}
	}
	return accounts, addressIDToAccount
}

// populateAddresses implements Phase C. Transparent addresses join
// directly against addressIDToAccount (see buildAccounts); Sapling
// addresses always fall back to the first account, since nothing in the
// retrievable record layout links a "sapzaddr" key to a unified
// address-id the way a "name" record's key already matches one (see
// DESIGN.md).
func populateAddresses(w *zcashd.ZcashdWallet, network zewif.Network, accounts []*zewif.Account, addressIDToAccount map[zcashd.Address]*zewif.Account) error {
	firstAccount := accounts[0]

	for addr, name := range w.AddressNames {
		za := zewif.NewTransparentAddress(string(addr)).SetName(name)
		if purpose, ok := w.AddressPurposes[addr]; ok {
			za.SetPurpose(purpose)
		}
		owner := firstAccount
		if account, ok := addressIDToAccount[addr]; ok {
			owner = account
		}
		if err := owner.AddAddress(za); err != nil {
			return err
		}
	}

	for spendingAddr, ivk := range w.SaplingAddresses {
		addrString := saplingAddressString(spendingAddr.Diversifier, [32]byte(spendingAddr.Pkd))
		za := zewif.NewShieldedAddress(addrString, [32]byte(ivk.Blob32))
		if purpose, ok := w.AddressPurposes[zcashd.Address(addrString)]; ok {
			za.SetPurpose(purpose)
		}
		if key, ok := w.SaplingKeys[ivk]; ok {
			za.SetSpendingKey(convertSpendingKey(key))
		}
		if err := firstAccount.AddAddress(za); err != nil {
			return err
		}
	}
	return nil
}

func convertSpendingKey(k *zcashd.SaplingKey) *zewif.SpendingKey {
	esk := k.Key
	return &zewif.SpendingKey{
		ASK:            [32]byte(esk.ExpSK.ASK),
		NSK:            [32]byte(esk.ExpSK.NSK),
		OVK:            [32]byte(esk.ExpSK.OVK),
		Depth:          esk.Depth,
		ParentFVKTag:   esk.ParentFVKTag,
		ChildIndex:     esk.ChildIndex,
		ChainCode:      [32]byte(esk.ChainCode),
		DiversifierKey: [32]byte(esk.DK),
	}
}

// backfillNotePositions implements Phase F: when the source wallet's
// Orchard note-commitment-tree blob is non-empty, every action/output
// gets a deterministic placeholder position (index+1). The source never
// exposes the real tree structure to this decoder (see spec's
// placeholder discipline, §9), so there is nothing to recover beyond the
// placeholder.
func backfillNotePositions(w *zcashd.ZcashdWallet, txs map[zewif.TxId]*zewif.Transaction) {
	if len(w.OrchardNoteCommitmentTree) == 0 {
		return
	}
	for _, tx := range txs {
		for i := range tx.OrchardActions {
			tx.OrchardActions[i].NoteCommitmentTreePosition = &zewif.PlaceholderPosition{
				Value:       zewif.Position(i + 1),
				Placeholder: true,
			}
		}
		for i := range tx.SaplingOutputs {
			tx.SaplingOutputs[i].NoteCommitmentTreePosition = &zewif.PlaceholderPosition{
				Value:       zewif.Position(i + 1),
				Placeholder: true,
			}
		}
	}
}
