package annotate

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ibiology/itol/pkg/errors"
)

// Layer is one annotation layer described in a layer file. Named
// settings beyond label and color go into Settings and obey the usual
// falsy-filtering rule.
type Layer struct {
	Kind      string         `yaml:"kind"`
	Separator string         `yaml:"separator,omitempty"`
	Outfile   string         `yaml:"outfile,omitempty"`
	Label     string         `yaml:"label,omitempty"`
	Color     string         `yaml:"color,omitempty"`
	Settings  map[string]any `yaml:"settings,omitempty"`
	Data      [][]any        `yaml:"data,omitempty"`

	// Fasta carries the alignment content for kind "alignment".
	Fasta string `yaml:"fasta,omitempty"`
}

// LayerFile is a YAML document describing a list of annotation layers,
// used by the CLI to drive the dataset builders without one subcommand
// per annotation kind.
type LayerFile struct {
	Layers []Layer `yaml:"layers"`
}

// LoadLayerFile reads and parses a YAML layer file.
func LoadLayerFile(path string) (*LayerFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "layer file %s does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read layer file %s", path)
	}

	var lf LayerFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLayerParse, "cannot parse layer file %s", path)
	}
	if len(lf.Layers) == 0 {
		return nil, errors.Newf(errors.ErrLayerInvalid, "layer file %s defines no layers", path)
	}
	return &lf, nil
}

// Dataset materializes the layer through the matching dataset builder.
func (l Layer) Dataset() (*Dataset, error) {
	var sep Separator
	if l.Separator != "" {
		parsed, err := ParseSeparator(l.Separator)
		if err != nil {
			return nil, err
		}
		sep = parsed
	}

	rows := make([]Row, len(l.Data))
	for i, r := range l.Data {
		rows[i] = Row(r)
	}

	base := BaseOptions{Separator: sep, Outfile: l.Outfile, Extra: l.Settings}

	switch strings.ToLower(l.Kind) {
	case "color", "colors":
		return TreeColors(rows, base), nil
	case "label", "labels":
		return Labels(rows, base), nil
	case "popup":
		return Popup(rows, base), nil
	case "text":
		return Text(rows, TextOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "binary":
		return Binary(rows, BinaryOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "sbar", "simplebar":
		return SimpleBar(rows, SimpleBarOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "mbar", "multibar":
		return MultiBar(rows, MultiBarOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "pie", "piechart":
		return PieChart(rows, PieChartOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "strip", "colorstrip":
		return ColorStrip(rows, ColorStripOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "gradient":
		return Gradient(rows, GradientOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "connection":
		return Connection(rows, ConnectionOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "heatmap":
		return Heatmap(rows, HeatmapOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "boxplot":
		return BoxPlot(rows, BoxPlotOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "domain", "domains":
		return Domains(rows, DomainsOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "shape", "externalshape":
		return ExternalShape(rows, ExternalShapeOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "symbol":
		return Symbol(rows, SymbolOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "alignment", "msa":
		if l.Fasta == "" {
			return nil, errors.New(errors.ErrLayerInvalid, "alignment layer requires a fasta block")
		}
		return Alignment(l.Fasta, AlignmentOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "line", "linechart":
		return LineChart(rows, LineChartOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "image":
		return Image(rows, ImageOptions{BaseOptions: base, Label: l.Label, Color: l.Color}), nil
	case "":
		return nil, errors.New(errors.ErrLayerInvalid, "layer is missing the kind field")
	default:
		return nil, errors.Newf(errors.ErrLayerInvalid, "unknown layer kind %q", l.Kind)
	}
}

// WriteAll materializes every layer into dir and returns the written
// file paths, stopping at the first failing layer.
func (lf *LayerFile) WriteAll(dir string) ([]string, error) {
	paths := make([]string, 0, len(lf.Layers))
	for i, layer := range lf.Layers {
		ds, err := layer.Dataset()
		if err != nil {
			return paths, errors.Wrapf(err, errors.ErrLayerInvalid, "layer %d (%s)", i+1, layer.Kind)
		}
		path, err := ds.WriteFile(dir)
		if err != nil {
			return paths, errors.Wrapf(err, errors.ErrLayerInvalid, "layer %d (%s)", i+1, layer.Kind)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
