package annotate

// BinaryOptions configure a binary dataset.
type BinaryOptions struct {
	BaseOptions
	Label  string
	Color  string
	Fields FieldOptions
}

// Binary builds a DATASET_BINARY annotation. Each row has at least 2
// elements defining node id and one shape value per field (1 filled,
// 0 empty, -1 absent). Combined shape values must be pre-joined with
// the dataset's delimiter:
//
//	{"9606", "1,0,-1,0"}
//	{"9606", 1, 0, -1, 0}
func Binary(rows []Row, opts BinaryOptions) *Dataset {
	return &Dataset{
		Tag:       "DATASET_BINARY",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "binary.txt"),
		Settings: Settings{
			{Key: "dataset_label", Value: orString(opts.Label, "binary")},
			{Key: "color", Value: orString(opts.Color, "#ff0000")},
			{Key: "field_shapes", Value: orValue(opts.Fields.Shapes, 1)},
			{Key: "field_labels", Value: orString(opts.Fields.Labels, "f1")},
			{Key: "field_colors", Value: orString(opts.Fields.Colors, "#ff0000")},
		},
		Extra: opts.Extra,
		Rows:  rows,
	}
}

// DomainsOptions configure a protein domains dataset.
type DomainsOptions struct {
	BaseOptions
	Label string
	Color string

	// Width is the maximum width of the protein representation, in
	// pixels. Defaults to 1000.
	Width  int
	Scale  string
	Legend LegendOptions
}

// Domains builds a DATASET_DOMAINS annotation. Each row has at least 3
// elements defining node id(s), total protein length and any number of
// domain definition strings of the form shape|start|end|color|label:
//
//	{9606, 1200, "RE|100|150|#ff0000|SH2", "EL|400|500|#0000ff|SH3"}
func Domains(rows []Row, opts DomainsOptions) *Dataset {
	width := opts.Width
	if width == 0 {
		width = 1000
	}
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "domain")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
		{Key: "width", Value: width},
		{Key: "dataset_scale", Value: opts.Scale},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_DOMAINS",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "domain.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// ExternalShapeOptions configure an external shapes dataset.
type ExternalShapeOptions struct {
	BaseOptions
	Label  string
	Color  string
	Fields FieldOptions
}

// ExternalShape builds a DATASET_EXTERNALSHAPE annotation. Each row has
// at least 2 elements defining node id and one value per field:
//
//	{9606, 10, 10, 20, 40}
func ExternalShape(rows []Row, opts ExternalShapeOptions) *Dataset {
	return &Dataset{
		Tag:       "DATASET_EXTERNALSHAPE",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "shape.txt"),
		Settings: Settings{
			{Key: "dataset_label", Value: orString(opts.Label, "shape")},
			{Key: "color", Value: orString(opts.Color, "#ff0000")},
			{Key: "field_colors", Value: orString(opts.Fields.Colors, "#ff0000,#00ff00,#0000ff")},
			{Key: "field_labels", Value: orString(opts.Fields.Labels, "f1,f2,f3")},
		},
		Extra: opts.Extra,
		Rows:  rows,
	}
}

// SymbolOptions configure a symbols dataset.
type SymbolOptions struct {
	BaseOptions
	Label  string
	Color  string
	Legend LegendOptions
}

// Symbol builds a DATASET_SYMBOL annotation. Each row has at least 6
// elements defining node id, symbol, size, color, fill and position,
// optionally followed by a label:
//
//	{9606, 2, 10, "#ff0000", 1, 0.5}
func Symbol(rows []Row, opts SymbolOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "symbol")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_SYMBOL",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "symbol.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}
