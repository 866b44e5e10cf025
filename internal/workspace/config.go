package workspace

// Config is the validated, in-memory form of a user configuration file.
type Config struct {
	// Workspaces are kept in declaration order.
	Workspaces []Workspace `json:"workspaces" yaml:"workspaces"`
}

// Validate returns the first workspace validation error, or nil when every
// workspace is valid. An empty configuration is valid.
func (c *Config) Validate() error {
	for i := range c.Workspaces {
		if err := c.Workspaces[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the first workspace with the given name.
// Names are not required to be unique.
func (c *Config) Find(name string) (*Workspace, bool) {
	for i := range c.Workspaces {
		if c.Workspaces[i].Name == name {
			return &c.Workspaces[i], true
		}
	}
	return nil, false
}

// Names returns workspace names in declaration order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Workspaces))
	for i, w := range c.Workspaces {
		names[i] = w.Name
	}
	return names
}
