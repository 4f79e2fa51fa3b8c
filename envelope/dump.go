package envelope

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/blockchaincommons/zewif-migrate/zewif"
)

// Dump is the --to dump codec: a direct JSON rendering of the interchange
// model, with no compression or encryption layer. It exists so the CLI can
// round-trip a migration result without a real Gordian Envelope library
// (see the package doc comment).
type Dump struct{}

type dumpTop struct {
	Wallets      []dumpWallet        `json:"wallets"`
	Transactions []*zewif.Transaction `json:"transactions"`
}

type dumpWallet struct {
	Network       zewif.Network      `json:"network"`
	SeedMaterial  *zewif.SeedMaterial `json:"seed_material,omitempty"`
	Accounts      []dumpAccount      `json:"accounts"`
}

type dumpAccount struct {
	Name              string          `json:"name"`
	ZIP32AccountIndex *uint32         `json:"zip32_account_index,omitempty"`
	Addresses         []*zewif.Address `json:"addresses"`
	RelevantTxIds     []zewif.TxId    `json:"relevant_txids"`
}

func (Dump) Write(top *zewif.Top) ([]byte, error) {
	doc := dumpTop{Transactions: top.Transactions()}
	for _, w := range top.Wallets {
		dw := dumpWallet{Network: w.Network, SeedMaterial: w.SeedMaterial}
		for _, account := range w.Accounts {
			dw.Accounts = append(dw.Accounts, dumpAccount{
				Name:              account.Name,
				ZIP32AccountIndex: account.ZIP32AccountIndex,
				Addresses:         account.Addresses(),
				RelevantTxIds:     account.RelevantTxIds(),
			})
		}
		doc.Wallets = append(doc.Wallets, dw)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func (Dump) Read(data []byte) (*zewif.Top, error) {
	var doc dumpTop
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding dump document")
	}

	top := zewif.NewTop()
	for _, tx := range doc.Transactions {
		if err := top.AddTransaction(tx); err != nil {
			return nil, err
		}
	}

	for _, dw := range doc.Wallets {
		wallet := zewif.NewWallet(dw.Network)
		if dw.SeedMaterial != nil {
			wallet.SetSeedMaterial(dw.SeedMaterial)
		}
		for _, da := range dw.Accounts {
			account := zewif.NewAccount(da.Name)
			if da.ZIP32AccountIndex != nil {
				account.SetZIP32AccountIndex(*da.ZIP32AccountIndex)
			}
			for _, addr := range da.Addresses {
				if err := account.AddAddress(addr); err != nil {
					return nil, err
				}
			}
			for _, txid := range da.RelevantTxIds {
				account.AddRelevantTxId(txid)
			}
			wallet.AddAccount(account)
		}
		top.AddWallet(wallet)
	}
	return top, nil
}
