package annotate

// ConnectionOptions configure a connections dataset.
type ConnectionOptions struct {
	BaseOptions
	Label  string
	Color  string
	Legend LegendOptions
}

// Connection builds a DATASET_CONNECTION annotation. Each row has 5
// elements defining a single connection between 2 nodes:
// NODE1, NODE2, WIDTH, COLOR, LABEL:
//
//	{"LEAF1", "LEAF2", 10, "#ff0000", "label"}
func Connection(rows []Row, opts ConnectionOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "connection")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_CONNECTION",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "connection.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// AlignmentOptions configure a multiple sequence alignment dataset.
type AlignmentOptions struct {
	BaseOptions
	Label string
	Color string

	// CustomColorScheme overrides the default residue coloring, as a
	// combined string of RESIDUE=COLOR entries joined with the
	// dataset's delimiter.
	CustomColorScheme string
}

// Alignment builds a DATASET_ALIGNMENT annotation. Unlike the other
// datasets its data block is not row-oriented: fasta is a multiple
// sequence alignment in FASTA format, emitted verbatim after the DATA
// marker.
func Alignment(fasta string, opts AlignmentOptions) *Dataset {
	return &Dataset{
		Tag:       "DATASET_ALIGNMENT",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "alignment.txt"),
		Settings: Settings{
			{Key: "dataset_label", Value: orString(opts.Label, "msa")},
			{Key: "color", Value: orString(opts.Color, "#ff0000")},
			{Key: "custom_color_scheme", Value: opts.CustomColorScheme},
		},
		Extra: opts.Extra,
		raw:   fasta,
	}
}

// ImageOptions configure an image overlay dataset.
type ImageOptions struct {
	BaseOptions
	Label string
	Color string
}

// Image builds a DATASET_IMAGE annotation. Each row has 7 elements
// defining node id, position, size factor, rotation, horizontal shift,
// vertical shift and image URL:
//
//	{"9606", -1, 1, 0, 0, 0, "https://itol.embl.de/img/species/9606.jpg"}
func Image(rows []Row, opts ImageOptions) *Dataset {
	return &Dataset{
		Tag:       "DATASET_IMAGE",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "image.txt"),
		Settings: Settings{
			{Key: "dataset_label", Value: orString(opts.Label, "image")},
			{Key: "color", Value: orString(opts.Color, "#ff0000")},
		},
		Extra: opts.Extra,
		Rows:  rows,
	}
}
