package config

// ColorScheme defines the configurable colors used by the viewer and CLI output
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"`
	Delete string `yaml:"delete"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Status badges
	Todo       string `yaml:"todo"`
	InProgress string `yaml:"in_progress"`
	Done       string `yaml:"done"`
}

// DefaultColorScheme returns the default purple scheme
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",
		Accent: "#874BFD",

		Create: "#5FD75F",
		Delete: "#FF0000",

		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Todo:       "#5F87D7",
		InProgress: "#FFD700",
		Done:       "#5FD75F",
	}
}

// MonochromeColorScheme returns a black and white scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#808080",
		TaskBorder:     "#606060",
		SelectedBorder: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		Todo:       "#A0A0A0",
		InProgress: "#D0D0D0",
		Done:       "#FFFFFF",
	}
}

// presetScheme returns a preset color scheme by name
func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing colors from the selected preset
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Delete, preset.Delete)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Todo, preset.Todo)
	fill(&c.InProgress, preset.InProgress)
	fill(&c.Done, preset.Done)
}
