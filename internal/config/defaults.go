package config

const (
	DefaultTickRate  = 4.0
	DefaultFrameRate = 60.0
)

// GetDefaultConfig returns the built-in configuration every layer is merged
// onto.
func GetDefaultConfig() Config {
	return Config{
		TickRate:  DefaultTickRate,
		FrameRate: DefaultFrameRate,
		LogLevel:  "info",
		Keybindings: Keybindings{
			"Home": {
				"<q>":      "Quit",
				"<Ctrl-c>": "Quit",
				"<Ctrl-d>": "Quit",
				"<Ctrl-z>": "Suspend",
				"<Ctrl-l>": "ClearScreen",
				"<?>":      "Help",
				"<Down>":   "NavigateNext",
				"<j>":      "NavigateNext",
				"<Up>":     "NavigatePrev",
				"<k>":      "NavigatePrev",
				"<Ctrl-f>": "NavigatePageDown",
				"<Ctrl-b>": "NavigatePageUp",
				"<g><g>":   "NavigateFirst",
				"<G>":      "NavigateLast",
				"<y>":      "CopySelection",
			},
		},
	}
}
