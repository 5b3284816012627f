package annotate

// Labels builds a LABELS annotation: the text assigned to leaf nodes,
// or new names for internal nodes. Each row has 2 elements defining the
// node id and the label:
//
//	{"9031|9606", "Metazoa"}
//	{9606, "Homo sapiens"}
func Labels(rows []Row, opts BaseOptions) *Dataset {
	return &Dataset{
		Tag:       "LABELS",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "label.txt"),
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// Popup builds a POPUP_INFO annotation: custom text or HTML displayed
// in mouse-over popups. Each row has 2 elements defining the node id
// and the popup content (plain text or any valid HTML).
func Popup(rows []Row, opts BaseOptions) *Dataset {
	return &Dataset{
		Tag:       "POPUP_INFO",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "popup.txt"),
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// TextOptions configure a text label dataset.
type TextOptions struct {
	BaseOptions
	Label string
	Color string
}

// Text builds a DATASET_TEXT annotation. Each row has at least 2
// elements defining node id and a label; additional elements follow in
// the order position, color, style, size factor and rotation:
//
//	{9606, "Homo sapiens", "-1", "#ff0000", "bold", 2, 0}
//	{4530, "Oryza sativa", 0, "#0000ff", "bold-italic", 1}
func Text(rows []Row, opts TextOptions) *Dataset {
	return &Dataset{
		Tag:       "DATASET_TEXT",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "text.txt"),
		Settings: Settings{
			{Key: "dataset_label", Value: orString(opts.Label, "text")},
			{Key: "color", Value: orString(opts.Color, "#ff0000")},
		},
		Extra: opts.Extra,
		Rows:  rows,
	}
}
