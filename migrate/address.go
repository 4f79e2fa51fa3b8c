package migrate

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Bitcoin-style Hash160

	"github.com/blockchaincommons/zewif-migrate/zewif"
)

// Transparent address version-byte prefixes, mainnet and testnet. zcashd's
// two-byte prefixes don't fit base58.CheckEncode's single-version-byte
// API, so addresses are assembled and checksummed by hand.
var (
	p2pkhPrefixMain = [2]byte{0x1C, 0xB8}
	p2shPrefixMain  = [2]byte{0x1C, 0xBD}
	p2pkhPrefixTest = [2]byte{0x1D, 0x25}
	p2shPrefixTest  = [2]byte{0x1C, 0xBA}
)

func transparentPrefixes(network zewif.Network) (p2pkh, p2sh [2]byte) {
	if network == zewif.NetworkMain {
		return p2pkhPrefixMain, p2shPrefixMain
	}
	return p2pkhPrefixTest, p2shPrefixTest
}

// hash160 computes RIPEMD160(SHA256(data)), the digest Bitcoin/Zcash use
// for P2PKH key IDs and P2SH script IDs. Duplicated from zcashd.hash160
// (unexported there) rather than imported, since this package's use of
// RIPEMD160 is its own domain-stack binding (SPEC_FULL.md: Phase E address
// extraction), not a reuse of the decoder's internal helper.
func hash160(data []byte) [20]byte {
	sh := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sh[:])
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

func encodeTransparentAddress(prefix [2]byte, hash [20]byte) string {
	payload := make([]byte, 0, 2+20)
	payload = append(payload, prefix[:]...)
	payload = append(payload, hash[:]...)
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	payload = append(payload, second[:4]...)
	return base58.Encode(payload)
}

// encodeP2PKH renders a RIPEMD160(SHA256(pubkey)) key-id as a display
// t-address, for addresses recovered by pattern-matching scripts rather
// than read directly off a "name" record (spec §4.5 Phase E, steps 2-3).
func encodeP2PKH(network zewif.Network, keyID [20]byte) string {
	p2pkh, _ := transparentPrefixes(network)
	return encodeTransparentAddress(p2pkh, keyID)
}

// encodeP2SH renders a script-id as a display t-address.
func encodeP2SH(network zewif.Network, scriptID [20]byte) string {
	_, p2sh := transparentPrefixes(network)
	return encodeTransparentAddress(p2sh, scriptID)
}

// saplingAddressString renders a Sapling payment address as a display
// string. No bech32/z-address encoder exists anywhere in the retrieval
// pack (the real zcashd "zs1..." encoding needs one), so addresses are
// rendered as a stable, uniquely-identifying hex form instead of
// fabricating a bech32 dependency. This is a documented limitation, not a
// silent approximation: see DESIGN.md.
func saplingAddressString(diversifier [11]byte, pkd [32]byte) string {
	return "sapling:" + hex.EncodeToString(diversifier[:]) + hex.EncodeToString(pkd[:])
}
