package annotate

// BaseOptions are shared by every dataset builder. The zero value picks
// the builder's defaults (comma separator except where noted, and a
// per-kind output file name).
type BaseOptions struct {
	Separator Separator
	Outfile   string

	// Extra holds free-form settings beyond the named ones, e.g.
	// {"margin": 10}. They obey the same falsy-filtering rule and are
	// emitted after the named settings in sorted key order.
	Extra map[string]any
}

// LegendOptions describe the dataset legend. All fields default to
// unset, which suppresses the corresponding setting lines. Combined
// values (several shapes, colors or labels) must be pre-joined with the
// dataset's delimiter.
type LegendOptions struct {
	Title  string
	Shapes any
	Colors string
	Labels string
}

func (o LegendOptions) settings() Settings {
	return Settings{
		{Key: "legend_title", Value: o.Title},
		{Key: "legend_shapes", Value: o.Shapes},
		{Key: "legend_colors", Value: o.Colors},
		{Key: "legend_labels", Value: o.Labels},
	}
}

// FieldOptions describe per-column fields of multi-value datasets.
// Combined values must be pre-joined with the dataset's delimiter.
type FieldOptions struct {
	Shapes any
	Labels string
	Colors string
}

func orString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orValue(v any, def any) any {
	if !truthy(v) {
		return def
	}
	return v
}
