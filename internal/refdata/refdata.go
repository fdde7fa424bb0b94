package refdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"hireboard/pkg/models"
)

//go:embed data/*.json
var dataFS embed.FS

// City is one entry of the static city list
type City struct {
	ID   string `json:"city_id"`
	Name string `json:"city_name"`
}

type currency struct {
	Code string `json:"code"`
}

type skill struct {
	Name string `json:"name"`
}

// Data holds the read-only reference collections loaded once at startup
type Data struct {
	Cities     []City
	Roles      []string
	Currencies []string
	Skills     []string
}

// Load reads all embedded reference collections
func Load() (*Data, error) {
	d := &Data{}

	if err := readJSON("data/cities.json", &d.Cities); err != nil {
		return nil, err
	}
	if err := readJSON("data/roles.json", &d.Roles); err != nil {
		return nil, err
	}

	var currencies []currency
	if err := readJSON("data/currencies.json", &currencies); err != nil {
		return nil, err
	}
	for _, c := range currencies {
		d.Currencies = append(d.Currencies, c.Code)
	}

	var skills []skill
	if err := readJSON("data/skills.json", &skills); err != nil {
		return nil, err
	}
	for _, s := range skills {
		d.Skills = append(d.Skills, s.Name)
	}

	return d, nil
}

func readJSON(path string, out interface{}) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read reference data %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse reference data %s: %w", path, err)
	}
	return nil
}

// RoleOptions returns the role list as {value, label} pairs for the form
func (d *Data) RoleOptions() []models.Option {
	options := make([]models.Option, 0, len(d.Roles))
	for _, role := range d.Roles {
		options = append(options, models.Option{Value: role, Label: role})
	}
	return options
}

// SkillOptions returns the skill list as {value, label} pairs
func (d *Data) SkillOptions() []models.Option {
	options := make([]models.Option, 0, len(d.Skills))
	for _, s := range d.Skills {
		options = append(options, models.Option{Value: s, Label: s})
	}
	return options
}
