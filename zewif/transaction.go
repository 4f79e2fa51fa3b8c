package zewif

// TxIn is a transparent input as carried in the interchange model: the
// previous output it spends, its unlocking script, and its sequence
// number.
type TxIn struct {
	PrevTxId  TxId
	PrevIndex uint32
	ScriptSig []byte
	Sequence  uint32
}

// TxOut is a transparent output as carried in the interchange model.
type TxOut struct {
	Value        int64
	ScriptPubKey []byte
}

// SaplingSpendDescription is one Sapling spend, shielded-pool-agnostic of
// whether the source transaction used the v4 or v5 wire shape.
type SaplingSpendDescription struct {
	Index     int
	Nullifier [32]byte
	ZkProof   []byte
	// Value is the v4 bundle's net value balance in zatoshi, copied onto
	// every spend of the bundle when it is positive. Nil for v5 bundles
	// (which hide per-spend values) and when the balance is zero or negative.
	Value *int64
}

// SaplingOutputDescription is one Sapling output.
type SaplingOutputDescription struct {
	Index                      int
	Commitment                 [32]byte
	EphemeralKey               [32]byte
	EncCiphertext              []byte
	NoteCommitmentTreePosition *PlaceholderPosition
}

// OrchardActionDescription is one Orchard action, Orchard's combined
// spend+output description. Anchor, EphemeralKey, and ZkProof are left at
// their zero value when the source transaction does not expose them
// individually at the per-action level.
type OrchardActionDescription struct {
	Index                      int
	Nullifier                  [32]byte
	Commitment                 [32]byte
	Anchor                     [32]byte
	EphemeralKey               [32]byte
	EncCiphertext              []byte
	ZkProof                    []byte
	NoteCommitmentTreePosition *PlaceholderPosition
}

// SproutProofShape tags which zero-knowledge proof encoding a JoinSplit's
// ZkProof bytes use.
type SproutProofShape string

const (
	SproutProofPHGR  SproutProofShape = "phgr"
	SproutProofGroth SproutProofShape = "groth16"
)

// JoinSplitDescription is one Sprout JoinSplit, pairing two inputs and two
// outputs behind a single shielded-pool-era description.
type JoinSplitDescription struct {
	Index       int
	Anchor      [32]byte
	Nullifiers  [2][32]byte
	Commitments [2][32]byte
	ProofShape  SproutProofShape
	ZkProof     []byte
}

// Transaction is a fully converted transaction in the interchange model:
// every field the source WalletTx carried, reshaped into a protocol-
// agnostic, version-erased representation.
type Transaction struct {
	TxId               TxId
	RawBytes           []byte
	TransparentInputs  []TxIn
	TransparentOutputs []TxOut
	SaplingSpends      []SaplingSpendDescription
	SaplingOutputs     []SaplingOutputDescription
	OrchardActions     []OrchardActionDescription
	JoinSplits         []JoinSplitDescription
}
