package config

// Theme holds the CLI colors.
type Theme struct {
	// Preset name ("default" or "monochrome"); unset colors come from it.
	Preset string `yaml:"preset" toml:"preset"`

	Accent  string `yaml:"accent" toml:"accent"`
	Title   string `yaml:"title" toml:"title"`
	Subtle  string `yaml:"subtle" toml:"subtle"` // Muted/placeholder text
	Normal  string `yaml:"normal" toml:"normal"`
	Success string `yaml:"success" toml:"success"`
	Warning string `yaml:"warning" toml:"warning"`
	Error   string `yaml:"error" toml:"error"`
}

// DefaultTheme returns the default color scheme (purple theme)
func DefaultTheme() Theme {
	return Theme{
		Preset:  "default",
		Accent:  "#874BFD",
		Title:   "#D75FD7",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}

// MonochromeTheme returns a black and white color scheme
func MonochromeTheme() Theme {
	return Theme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Title:   "#FFFFFF",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
		Success: "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}

// ThemePreset returns a preset by name, falling back to the default.
func ThemePreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing color values using the preset as base
func (t *Theme) ApplyDefaults() {
	preset := ThemePreset(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&t.Accent, preset.Accent},
		{&t.Title, preset.Title},
		{&t.Subtle, preset.Subtle},
		{&t.Normal, preset.Normal},
		{&t.Success, preset.Success},
		{&t.Warning, preset.Warning},
		{&t.Error, preset.Error},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
}
