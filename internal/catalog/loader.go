package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the default catalog with the yaml file at path layered on
// top. An empty path returns the defaults unchanged.
func Load(path string) (*Catalog, error) {
	c := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}

		err = yaml.Unmarshal(raw, c)
		if err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	}

	err := c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}
