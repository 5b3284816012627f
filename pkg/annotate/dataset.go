package annotate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ibiology/itol/pkg/errors"
)

// Row is one annotation entry: an ordered sequence of scalar values
// (node identifiers, colors, labels, numbers). Rows inside one dataset
// may have different lengths; each row is joined independently.
type Row []any

// Setting is a single named configuration entry of a dataset. Keys are
// written uppercase in the output; entries with falsy values are
// omitted entirely.
type Setting struct {
	Key   string
	Value any
}

// Settings is the ordered setting block of a dataset.
type Settings []Setting

// Dataset is one annotation layer: a tag identifying the annotation
// kind, a separator, an ordered setting block, free-form extra settings
// and the row data. Render produces the exact text iTOL consumes.
type Dataset struct {
	Tag       string
	Separator Separator
	Outfile   string
	Settings  Settings
	Extra     map[string]any
	Rows      []Row

	// raw, when set, replaces the row-formatted data block. Used by
	// the alignment dataset whose data is a FASTA document.
	raw string
}

// Render composes the five sections of an annotation document:
//
//	TAG
//	SEPARATOR <NAME>
//	<setting block>
//	DATA
//	<data block>
//
// The sections are always newline-joined, so a dataset without settings
// carries a blank line between the separator declaration and the DATA
// marker. iTOL's parser relies on this shape; do not collapse it.
func (d *Dataset) Render() (string, error) {
	if d.Tag == "" {
		return "", errors.New(errors.ErrInvalidTag, "dataset tag must not be empty")
	}
	sep := d.Separator.orDefault(Comma)
	if !sep.Valid() {
		return "", errors.Newf(errors.ErrInvalidSeparator, "separator %q is not supported", string(d.Separator))
	}

	dataBlock, err := d.dataBlock(sep)
	if err != nil {
		return "", err
	}

	settingBlock := d.settingBlock(sep)

	return strings.Join([]string{d.Tag, sep.HeaderLine(), settingBlock, "DATA", dataBlock}, "\n"), nil
}

// WriteFile renders the dataset and writes it into dir under the
// dataset's output name, appending the .txt extension when missing.
// An existing file at that path is overwritten. It returns the path of
// the written file.
func (d *Dataset) WriteFile(dir string) (string, error) {
	if d.Outfile == "" {
		return "", errors.New(errors.ErrInvalidOutputPath, "dataset output file name must not be empty")
	}

	text, err := d.Render()
	if err != nil {
		return "", err
	}

	name := d.Outfile
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write annotation file %s", path)
	}
	return path, nil
}

// dataBlock joins every row with the delimiter and the rows with
// newlines. Row widths are not validated: iTOL tolerates variable-width
// rows per annotation type.
func (d *Dataset) dataBlock(sep Separator) (string, error) {
	if d.raw != "" {
		return d.raw, nil
	}
	return JoinRows(d.Rows, sep)
}

// settingBlock emits one UPPERKEY<delim>value line per truthy setting.
// Named settings keep their declared order; extra settings follow in
// sorted key order so output is deterministic.
func (d *Dataset) settingBlock(sep Separator) string {
	all := make(Settings, 0, len(d.Settings)+len(d.Extra))
	all = append(all, d.Settings...)

	keys := make([]string, 0, len(d.Extra))
	for k := range d.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		all = append(all, Setting{Key: k, Value: d.Extra[k]})
	}

	delim := sep.Delimiter()
	lines := make([]string, 0, len(all))
	for _, s := range all {
		if !truthy(s.Value) {
			continue
		}
		lines = append(lines, strings.ToUpper(s.Key)+delim+formatValue(s.Value))
	}
	return strings.Join(lines, "\n")
}

// JoinRows formats a data block: every element of every row is coerced
// to text and joined with the separator's delimiter, rows are joined
// with newlines. An empty data set is a contract violation.
func JoinRows(rows []Row, sep Separator) (string, error) {
	if len(rows) == 0 {
		return "", errors.New(errors.ErrInvalidDataShape,
			"data must be a non-empty list of rows, each row a sequence of values")
	}
	if !sep.Valid() {
		return "", errors.Newf(errors.ErrInvalidSeparator, "separator %q is not supported", string(sep))
	}

	delim := sep.Delimiter()
	lines := make([]string, len(rows))
	for i, row := range rows {
		if row == nil {
			return "", errors.Newf(errors.ErrInvalidDataShape, "row %d is nil, each row must be a sequence of values", i)
		}
		cols := make([]string, len(row))
		for j, v := range row {
			cols[j] = formatValue(v)
		}
		lines[i] = strings.Join(cols, delim)
	}
	return strings.Join(lines, "\n"), nil
}

// formatValue coerces a scalar to its text form.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// truthy reports whether a setting value should be emitted. Nil, empty
// strings, numeric zero and false are dropped, mirroring the upstream
// format's convention that zero-value settings mean "unset". Callers
// that need a literal zero emit it as the string "0".
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
