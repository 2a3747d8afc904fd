// Package catalog loads the studio's static content: hero slides, services,
// courses, testimonials and the media manifest behind the gallery.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the catalog as YAML.
func (c *Catalog) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks cross references and value ranges. All problems are
// reported together.
func (c *Catalog) Validate() error {
	var errs []string

	categories := make(map[string]bool, len(c.Media))
	for i, m := range c.Media {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, fmt.Sprintf("media[%d]: name is required", i))
			continue
		}
		if categories[m.Name] {
			errs = append(errs, fmt.Sprintf("media: duplicate category %q", m.Name))
		}
		categories[m.Name] = true
	}

	for i, p := range c.Picker {
		if !categories[p.Category] {
			errs = append(errs, fmt.Sprintf("picker[%d]: unknown category %q", i, p.Category))
		}
	}

	for i, h := range c.Hero {
		if h.Image == "" {
			errs = append(errs, fmt.Sprintf("hero[%d]: image is required", i))
		}
	}

	ids := make(map[string]bool)
	for i, s := range c.Services {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("services[%d]: id is required", i))
		} else if ids["service:"+s.ID] {
			errs = append(errs, fmt.Sprintf("services: duplicate id %q", s.ID))
		}
		ids["service:"+s.ID] = true
	}
	for i, co := range c.Courses {
		if co.ID == "" {
			errs = append(errs, fmt.Sprintf("courses[%d]: id is required", i))
		} else if ids["course:"+co.ID] {
			errs = append(errs, fmt.Sprintf("courses: duplicate id %q", co.ID))
		}
		ids["course:"+co.ID] = true
	}

	for i, t := range c.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Sprintf("testimonials[%d]: rating must be 1-5, got %d", i, t.Rating))
		}
		if strings.TrimSpace(t.Quote) == "" {
			errs = append(errs, fmt.Sprintf("testimonials[%d]: quote is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// IsInvalid reports whether err is a validation failure rather than an I/O
// or syntax error.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}
