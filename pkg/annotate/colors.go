package annotate

// TreeColors builds a TREE_COLORS annotation: branch colors and styles,
// colored ranges and label colors/font styles.
//
// Each row has at least 3 elements defining the node, type and color in
// order. Possible types are range, clade, branch and label; an
// additional element may be optional or required depending on the type:
//
//	{8015, "label", "#0000ff"}
//	{"9031|9606", "clade", "#0000ff", "normal", 2}
//	{"184922|9606", "range", "#ff0000", "Eukaryota"}
func TreeColors(rows []Row, opts BaseOptions) *Dataset {
	return &Dataset{
		Tag:       "TREE_COLORS",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "color.txt"),
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// ColorStripOptions configure a colored strip dataset.
type ColorStripOptions struct {
	BaseOptions
	Label string
	Color string

	// ColorBranches additionally paints the branches with the strip
	// colors when set to 1.
	ColorBranches any
	Legend        LegendOptions
}

// ColorStrip builds a DATASET_COLORSTRIP annotation. Each row has at
// least 2 elements defining node id(s) and a color; an optional third
// element is shown in mouse-over popups:
//
//	{9606, "#ff0000", "Human"}
//	{"LEAF1|LEAF2", "#ffff00"}
func ColorStrip(rows []Row, opts ColorStripOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "strip")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
		{Key: "color_branches", Value: opts.ColorBranches},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_COLORSTRIP",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "strip.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// GradientOptions configure a colored gradient dataset.
type GradientOptions struct {
	BaseOptions
	Label  string
	Color  string
	Legend LegendOptions
}

// Gradient builds a DATASET_GRADIENT annotation. Each row has 2
// elements defining node id(s) and a numeric value:
//
//	{9606, 100}
//	{"LEAF1|LEAF2", 2000}
func Gradient(rows []Row, opts GradientOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "gradient")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_GRADIENT",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "gradient.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}
