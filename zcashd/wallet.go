// Copyright (c) 2019-2020 The Zcash developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or https://www.opensource.org/licenses/mit-license.php .

package zcashd

// ZcashdWallet is the fully decoded source wallet: every record kind a
// zcashd wallet.dat can hold, assembled into one read-only aggregate. It is
// produced once, by Decoder.Parse, and never mutated afterward.
type ZcashdWallet struct {
	BestblockNomerkle *BlockLocator
	Bestblock         BlockLocator
	ClientVersion     ClientVersion
	DefaultKey        PubKey
	Keys              map[string]*Key
	SproutKeys        SproutKeys
	SaplingKeys       map[SaplingIncomingViewingKey]*SaplingKey
	MinVersion        ClientVersion
	MnemonicHDChain   MnemonicHDChain
	MnemonicPhrase    *Bip39Mnemonic
	AddressNames      map[Address]string
	AddressPurposes   map[Address]string
	NetworkInfo       NetworkInfo

	// OrchardNoteCommitmentTree is opaque to the decoder: zcashd's frontier
	// encoding for this tree has changed shape across releases, and nothing
	// downstream of this package needs to interpret it. It is captured
	// verbatim for round-trip preservation.
	OrchardNoteCommitmentTree []byte

	OrderPosNext       *int64
	WitnessCacheSize   int64
	KeyPool            map[int64]KeyPoolEntry
	Transactions       map[TxID]*WalletTx
	UnifiedAccounts    map[string]UnifiedAccountMetadata
	UnifiedAddressMeta map[Address]UnifiedAddressMetadata
	UnifiedFVKs        map[string]UnifiedFullViewingKey

	// SaplingAddresses is the "sapzaddr" record family: every Sapling
	// payment address the wallet has derived, mapped to the incoming
	// viewing key it was filed under (not necessarily one this wallet
	// holds spending or even full viewing key material for).
	SaplingAddresses map[SaplingPaymentAddress]SaplingIncomingViewingKey

	// RecipientMappings is the "recipientmapping" record family: for each
	// txid the wallet sent, the recipient addresses it recorded.
	RecipientMappings map[TxID][]RecipientMapping

	// Unparsed is the set of record keys (keyname, payload) that no parser
	// above claimed: keyed by keyname, each entry lists the unclaimed
	// payloads for diagnostics.
	Unparsed map[string][][]byte
}

// Key looks up a transparent keypair by its raw public key encoding.
func (w *ZcashdWallet) Key(pubKey PubKey) (*Key, bool) {
	k, ok := w.Keys[string(pubKey)]
	return k, ok
}
