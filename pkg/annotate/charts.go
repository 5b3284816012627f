package annotate

// SimpleBarOptions configure a simple bar chart dataset.
type SimpleBarOptions struct {
	BaseOptions
	Label string
	Color string

	// Scale is a combined string of VALUE or VALUE-LABEL-COLOR entries
	// joined with the dataset's delimiter, e.g.
	// "2000-2k-#0000ff,10000-10k-#ff0000".
	Scale  string
	Legend LegendOptions
}

// SimpleBar builds a DATASET_SIMPLEBAR annotation. Each row has 2
// elements defining node id and a single numeric value displayed as a
// bar outside the tree:
//
//	{9606, 10000}
//	{"LEAF1|LEAF2", 11000}
func SimpleBar(rows []Row, opts SimpleBarOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "sbar")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
		{Key: "dataset_scale", Value: opts.Scale},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_SIMPLEBAR",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "sbar.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// MultiBarOptions configure a multi-value bar chart dataset.
type MultiBarOptions struct {
	BaseOptions
	Label  string
	Color  string
	Fields FieldOptions
	Scale  string
	Legend LegendOptions
}

// MultiBar builds a DATASET_MULTIBAR annotation. Each row has at least
// 3 elements defining node id and multiple numeric values displayed as
// a stacked or aligned bar chart:
//
//	{9606, 10000, 800}
func MultiBar(rows []Row, opts MultiBarOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "mbar")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
		{Key: "field_colors", Value: orString(opts.Fields.Colors, "#ff0000,#00ff00,#0000ff")},
		{Key: "field_labels", Value: orString(opts.Fields.Labels, "f1,f2,f3")},
		{Key: "dataset_scale", Value: opts.Scale},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_MULTIBAR",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "mbar.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// PieChartOptions configure a pie chart dataset.
type PieChartOptions struct {
	BaseOptions
	Label  string
	Color  string
	Fields FieldOptions
	Legend LegendOptions
}

// PieChart builds a DATASET_PIECHART annotation. Each row has at least
// 5 elements defining node id, position, radius and at least 2 numeric
// values displayed as a pie chart on the branch or outside the tree:
//
//	{9606, 0, 10, 4, 2, 4}
func PieChart(rows []Row, opts PieChartOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "pie")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
		{Key: "field_colors", Value: orString(opts.Fields.Colors, "#ff0000,#00ff00,#0000ff")},
		{Key: "field_labels", Value: orString(opts.Fields.Labels, "f1,f2,f3")},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_PIECHART",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "pie.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// HeatmapOptions configure a heatmap dataset. The default separator is
// SPACE, matching the default field labels.
type HeatmapOptions struct {
	BaseOptions
	Label  string
	Color  string
	Fields FieldOptions

	// FieldTree is an optional Newick tree defining the column order
	// and internal structure of the heatmap fields.
	FieldTree string
	Legend    LegendOptions
}

// Heatmap builds a DATASET_HEATMAP annotation. Each row has at least 2
// elements defining node id(s) and one value per field:
//
//	{9606, 10, 15, 20, 25, 30}
func Heatmap(rows []Row, opts HeatmapOptions) *Dataset {
	settings := Settings{
		{Key: "dataset_label", Value: orString(opts.Label, "heatmap")},
		{Key: "color", Value: orString(opts.Color, "#ff0000")},
		{Key: "field_labels", Value: orString(opts.Fields.Labels, "f1 f2 f3 f4 f5 f6")},
		{Key: "field_tree", Value: opts.FieldTree},
	}
	settings = append(settings, opts.Legend.settings()...)
	return &Dataset{
		Tag:       "DATASET_HEATMAP",
		Separator: opts.Separator.orDefault(Space),
		Outfile:   orString(opts.Outfile, "heatmap.txt"),
		Settings:  settings,
		Extra:     opts.Extra,
		Rows:      rows,
	}
}

// BoxPlotOptions configure a box plot dataset.
type BoxPlotOptions struct {
	BaseOptions
	Label string
	Color string
	Scale string
}

// BoxPlot builds a DATASET_BOXPLOT annotation. Each row has at least 2
// elements defining node id(s) and multiple values:
//
//	{9606, 10000, 12000, 13000, 10000}
func BoxPlot(rows []Row, opts BoxPlotOptions) *Dataset {
	return &Dataset{
		Tag:       "DATASET_BOXPLOT",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "boxplot.txt"),
		Settings: Settings{
			{Key: "dataset_label", Value: orString(opts.Label, "boxplot")},
			{Key: "color", Value: orString(opts.Color, "#ff0000")},
			{Key: "dataset_scale", Value: opts.Scale},
		},
		Extra: opts.Extra,
		Rows:  rows,
	}
}

// LineChartOptions configure a line chart dataset.
type LineChartOptions struct {
	BaseOptions
	Label      string
	Color      string
	LineColors string
	AxisX      string
	AxisY      string
}

// LineChart builds a DATASET_LINECHART annotation. Each row has at
// least 3 elements defining node id and 2 or more points, each point a
// string of X and Y values separated by a vertical line:
//
//	{"9606", "2|6", "0|0", "5|3"}
//	{"B|C", "0|0", "10|5", "2|1", "13|15"}
func LineChart(rows []Row, opts LineChartOptions) *Dataset {
	return &Dataset{
		Tag:       "DATASET_LINECHART",
		Separator: opts.Separator.orDefault(Comma),
		Outfile:   orString(opts.Outfile, "line.txt"),
		Settings: Settings{
			{Key: "dataset_label", Value: orString(opts.Label, "line")},
			{Key: "color", Value: orString(opts.Color, "#ff0000")},
			{Key: "line_colors", Value: opts.LineColors},
			{Key: "axis_x", Value: opts.AxisX},
			{Key: "axis_y", Value: opts.AxisY},
		},
		Extra: opts.Extra,
		Rows:  rows,
	}
}
