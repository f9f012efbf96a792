package config

// Config is the top-level configuration structure for audioshelf.
type Config struct {
	// TickRate is the number of Tick events per second; 0 disables ticks.
	TickRate float64 `yaml:"tickRate"`
	// FrameRate is the number of Render events per second; 0 disables them.
	FrameRate float64 `yaml:"frameRate"`
	// Library is the library export opened when no --library flag is given.
	Library string `yaml:"library,omitempty"`
	// Mouse enables mouse reporting.
	Mouse bool `yaml:"mouse"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`
	// Keybindings maps mode name -> key sequence -> action name.
	Keybindings Keybindings `yaml:"keybindings"`

	// DataDir holds the log file. It is resolved from the environment and
	// never read from a file.
	DataDir string `yaml:"-"`
}

// Keybindings is the configuration form of the keybinding table.
type Keybindings map[string]map[string]string

// fileConfig mirrors Config with optional fields so a layer can tell "not
// set" apart from a zero value (a rate of 0 is meaningful).
type fileConfig struct {
	TickRate    *float64    `yaml:"tickRate"`
	FrameRate   *float64    `yaml:"frameRate"`
	Library     *string     `yaml:"library"`
	Mouse       *bool       `yaml:"mouse"`
	LogLevel    *string     `yaml:"logLevel"`
	Keybindings Keybindings `yaml:"keybindings"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Keybindings = make(Keybindings, len(c.Keybindings))
	for mode, entries := range c.Keybindings {
		m := make(map[string]string, len(entries))
		for seq, action := range entries {
			m[seq] = action
		}
		out.Keybindings[mode] = m
	}
	return out
}
