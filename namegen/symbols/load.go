package symbols

import (
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/shiv50084/fantasyname/errors"
	"github.com/shiv50084/fantasyname/logger"
)

// reservedSyntax are the runes with structural meaning inside patterns.
// They can never be looked up as symbols, so a table must not define them.
const reservedSyntax = "<>()|!~"

// tableFile is the on-disk TOML shape of a symbol table.
type tableFile struct {
	Symbols map[string][]string `toml:"symbols"`
}

// Parse builds a Table from TOML data.
//
// Every key under [symbols] must be a single non-reserved character and must
// map to at least one candidate. Candidates may be empty strings; an empty
// candidate gives the symbol a zero-length expansion.
func Parse(data []byte) (Table, error) {
	var tf tableFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return Table{}, errors.Wrap(err, "parsing symbol table")
	}
	if len(tf.Symbols) == 0 {
		return Table{}, errors.NewInvalidTableError("no [symbols] entries")
	}

	m := make(map[rune][]string, len(tf.Symbols))
	for key, candidates := range tf.Symbols {
		symbol, size := utf8.DecodeRuneInString(key)
		if key == "" || size != len(key) {
			return Table{}, errors.NewInvalidTableError("key %q is not a single symbol", key)
		}
		if strings.ContainsRune(reservedSyntax, symbol) {
			return Table{}, errors.NewInvalidTableError("key %q is reserved pattern syntax", key)
		}
		if len(candidates) == 0 {
			return Table{}, errors.NewInvalidTableError("symbol %q has no candidates", key)
		}
		m[symbol] = slices.Clone(candidates)
	}

	return Table{candidates: m}, nil
}

// Load reads and parses a symbol table file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, errors.WrapTableNotFound(err, path)
		}
		return Table{}, errors.Wrapf(err, "reading symbol table %s", path)
	}

	table, err := Parse(data)
	if err != nil {
		return Table{}, errors.Wrapf(err, "loading %s", path)
	}

	logger.Debugw("symbol table loaded",
		logger.FieldFile, path,
		logger.FieldSymbols, table.Len())
	return table, nil
}
