// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

import "github.com/blockchaincommons/zewif-migrate/internal/bytestring"

// MnemonicHDChain is the "mnemonichdchain" record: the bookkeeping zcashd
// keeps for a wallet whose keys derive from a single BIP-39 seed.
type MnemonicHDChain struct {
	Version                       int32
	SeedFP                        Blob32
	CreateTime                    SecondsSinceEpoch
	AccountCounter                uint32
	LegacyTKeyExternalCounter     uint32
	LegacyTKeyInternalCounter     uint32
	LegacySaplingKeyCounter       uint32
	MnemonicSeedBackupConfirmed   bool
}

func (m *MnemonicHDChain) Decode(c *bytestring.Cursor) error {
	var err error
	if m.Version, err = c.Int32("MnemonicHDChain.version"); err != nil {
		return err
	}
	if err = m.SeedFP.Decode(c); err != nil {
		return err
	}
	if err = m.CreateTime.Decode(c); err != nil {
		return err
	}
	if m.AccountCounter, err = c.Uint32("MnemonicHDChain.account_counter"); err != nil {
		return err
	}
	if m.LegacyTKeyExternalCounter, err = c.Uint32("MnemonicHDChain.legacy_tkey_external_counter"); err != nil {
		return err
	}
	if m.LegacyTKeyInternalCounter, err = c.Uint32("MnemonicHDChain.legacy_tkey_internal_counter"); err != nil {
		return err
	}
	if m.LegacySaplingKeyCounter, err = c.Uint32("MnemonicHDChain.legacy_sapling_key_counter"); err != nil {
		return err
	}
	if m.MnemonicSeedBackupConfirmed, err = c.Bool("MnemonicHDChain.mnemonic_seed_backup_confirmed"); err != nil {
		return err
	}
	return nil
}

// Bip39Mnemonic is the "mnemonicphrase" record's value: a BIP-39 recovery
// phrase tagged with the wordlist language it was generated from. Its
// fingerprint, the record's key payload rather than part of this value, is
// attached by the caller that reads the record.
type Bip39Mnemonic struct {
	Language    string
	Mnemonic    string
	Fingerprint Blob32
}

// SetFingerprint attaches the seed fingerprint carried in the "mnemonicphrase"
// record's key payload, returning the receiver for chaining at the call site.
func (m *Bip39Mnemonic) SetFingerprint(fp Blob32) *Bip39Mnemonic {
	m.Fingerprint = fp
	return m
}

func (m *Bip39Mnemonic) Decode(c *bytestring.Cursor) error {
	lang, err := c.ShortString("Bip39Mnemonic.language")
	if err != nil {
		return err
	}
	phrase, err := c.ShortString("Bip39Mnemonic.mnemonic")
	if err != nil {
		return err
	}
	m.Language, m.Mnemonic = lang, phrase
	return nil
}
