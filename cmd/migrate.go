package cmd

import (
	"bytes"
	"compress/gzip"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/scrypt"

	"github.com/blockchaincommons/zewif-migrate/envelope"
	"github.com/blockchaincommons/zewif-migrate/migrate"
	"github.com/blockchaincommons/zewif-migrate/zcashd"
	"github.com/blockchaincommons/zewif-migrate/zewif"
)

const (
	fromZcashd = "zcashd"
	fromZewif  = "zewif"
)

var migrateFlags struct {
	from     string
	to       string
	records  string
	compress bool
	encrypt  bool
	password string
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [input] <output>",
	Short: "Migrate a zcashd wallet (or re-encode a ZeWIF document) into the ZeWIF interchange format",
	Long: `migrate reads a wallet's decoded record stream (--from zcashd, via
--records) or a previously produced ZeWIF document (--from zewif, via the
input path) and writes the interchange result in the requested format.

Use "-" for either path to read from stdin or write to stdout.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMigrate,
}

func init() {
	flags := migrateCmd.Flags()
	flags.StringVar(&migrateFlags.from, "from", fromZcashd, "source format: zcashd or zewif")
	flags.StringVar(&migrateFlags.to, "to", string(envelope.FormatDump), "output format: zewif, ur, format, or dump")
	flags.StringVar(&migrateFlags.records, "records", "", "path to a JSON-encoded record dump (required when --from zcashd; stand-in for the unimplemented BerkeleyDB page reader)")
	flags.BoolVar(&migrateFlags.compress, "compress", false, "gzip-compress the output")
	flags.BoolVar(&migrateFlags.encrypt, "encrypt", false, "password-encrypt the output (see --password, or set ZEWIF_MIGRATE_PASSWORD)")
	flags.StringVar(&migrateFlags.password, "password", "", "password for --encrypt; falls back to ZEWIF_MIGRATE_PASSWORD")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := splitMigrateArgs(migrateFlags.from, args)

	top, err := loadInterchange(inputPath)
	if err != nil {
		return errors.Wrap(err, "loading source")
	}

	writer, err := selectWriter(envelope.Format(migrateFlags.to))
	if err != nil {
		return err
	}
	data, err := writer.Write(top)
	if err != nil {
		return errors.Wrapf(err, "encoding --to %s", migrateFlags.to)
	}

	if migrateFlags.compress {
		data, err = gzipCompress(data)
		if err != nil {
			return errors.Wrap(err, "compressing output")
		}
	}
	if migrateFlags.encrypt {
		password := resolvePassword()
		if password == "" {
			return errors.New("--encrypt requires --password or ZEWIF_MIGRATE_PASSWORD")
		}
		data, err = encryptWithPassword(data, password)
		if err != nil {
			return errors.Wrap(err, "encrypting output")
		}
	}

	return writeOutput(outputPath, data)
}

// splitMigrateArgs maps the one-or-two positional arguments onto
// (input, output): --from zcashd takes its source from --records, so the
// single positional argument is the output path; --from zewif takes its
// source from the first positional argument.
func splitMigrateArgs(from string, args []string) (input, output string) {
	if from == fromZcashd {
		return "", args[0]
	}
	if len(args) < 2 {
		return args[0], "-"
	}
	return args[0], args[1]
}

func loadInterchange(inputPath string) (*zewif.Top, error) {
	switch migrateFlags.from {
	case fromZcashd:
		return loadFromZcashd()
	case fromZewif:
		data, err := readInput(inputPath)
		if err != nil {
			return nil, err
		}
		return envelope.Dump{}.Read(data)
	default:
		return nil, errors.Errorf("unknown --from %q: expected %q or %q", migrateFlags.from, fromZcashd, fromZewif)
	}
}

func loadFromZcashd() (*zewif.Top, error) {
	if migrateFlags.records == "" {
		return nil, errors.New("--from zcashd requires --records (the real BerkeleyDB reader is an external collaborator, not part of this module)")
	}
	raw, err := os.ReadFile(migrateFlags.records)
	if err != nil {
		return nil, errors.Wrap(err, "reading --records")
	}
	var records zcashd.SliceRecordStream
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrap(err, "decoding --records JSON")
	}

	wallet, err := zcashd.NewDecoder(records).Parse()
	if err != nil {
		return nil, errors.Wrap(err, "parsing wallet record stream")
	}
	logrus.Infof("parsed wallet: %d transactions, %d transparent addresses", len(wallet.Transactions), len(wallet.AddressNames))

	top, err := migrate.Migrate(wallet)
	if err != nil {
		return nil, errors.Wrap(err, "migrating wallet")
	}
	return top, nil
}

func selectWriter(format envelope.Format) (envelope.Writer, error) {
	switch format {
	case envelope.FormatDump:
		return envelope.Dump{}, nil
	case envelope.FormatZewif, envelope.FormatUR, envelope.FormatFormat:
		return envelope.Unsupported{Format: format}, nil
	default:
		return nil, errors.Errorf("unknown --to %q", format)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resolvePassword() string {
	if migrateFlags.password != "" {
		return migrateFlags.password
	}
	return os.Getenv("ZEWIF_MIGRATE_PASSWORD")
}

const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 16
)

// encryptWithPassword derives a key from password via scrypt and encrypts
// data with AES-256-GCM, prefixing the ciphertext with the salt and nonce
// a decrypter needs to recover it.
func encryptWithPassword(data []byte, password string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, errors.Wrap(err, "deriving key")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, data, nil)
	out := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}
