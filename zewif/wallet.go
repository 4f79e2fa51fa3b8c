package zewif

// Wallet is one migrated wallet: a network tag, optional HD seed
// material, and the accounts the migrator recovered from the source
// wallet's key and address records.
type Wallet struct {
	Network      Network
	SeedMaterial *SeedMaterial
	Accounts     []*Account
}

// NewWallet constructs an empty wallet tagged for the given network.
func NewWallet(network Network) *Wallet {
	return &Wallet{Network: network}
}

// SetSeedMaterial attaches the wallet-level HD seed, returning the
// receiver for chaining.
func (w *Wallet) SetSeedMaterial(seed *SeedMaterial) *Wallet {
	w.SeedMaterial = seed
	return w
}

// AddAccount appends an account to the wallet.
func (w *Wallet) AddAccount(account *Account) {
	w.Accounts = append(w.Accounts, account)
}
