// FILE: pkg/feature/template/catalog.go
// PURPOSE: Static registry of feature templates (UI layout + default agents)

package template

import (
	"ai-workspace-be/pkg/feature"
)

// UIConfig is the layout contract handed to the presentation layer.
type UIConfig struct {
	Layout     string   `json:"layout"`
	Components []string `json:"components"`
	Actions    []string `json:"actions"`
}

// AgentBlueprint describes an agent created alongside a feature.
type AgentBlueprint struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Role          string  `json:"role"`
	Tone          string  `json:"tone"`
	Creativity    float64 `json:"creativity"`
	Verbosity     string  `json:"verbosity"`
	MemoryEnabled bool    `json:"memoryEnabled"`
}

// Template is the catalog entry for one feature type.
type Template struct {
	Type           feature.FeatureType `json:"type"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Category       feature.Category    `json:"category"`
	UIConfig       UIConfig            `json:"uiConfig"`
	DefaultConfig  map[string]bool     `json:"defaultConfig"`
	RequiredAgents []AgentBlueprint    `json:"requiredAgents"`
}

// Catalog is an immutable set of templates keyed by feature type. It is built
// once and passed to whoever needs it.
type Catalog struct {
	templates map[feature.FeatureType]Template
}

// NewCatalog builds a catalog from the given templates. Later entries replace
// earlier ones with the same type.
func NewCatalog(templates ...Template) *Catalog {
	c := &Catalog{templates: make(map[feature.FeatureType]Template, len(templates))}
	for _, t := range templates {
		c.templates[t.Type] = t
	}
	return c
}

// Get returns a copy of the template for featureType.
func (c *Catalog) Get(featureType feature.FeatureType) (Template, bool) {
	t, ok := c.templates[featureType]
	if !ok {
		return Template{}, false
	}
	return t.clone(), true
}

// Types lists the feature types present in the catalog, in AllTypes order
// first and then any extra types.
func (c *Catalog) Types() []feature.FeatureType {
	out := make([]feature.FeatureType, 0, len(c.templates))
	seen := make(map[feature.FeatureType]bool, len(c.templates))
	for _, t := range feature.AllTypes {
		if _, ok := c.templates[t]; ok {
			out = append(out, t)
			seen[t] = true
		}
	}
	for t := range c.templates {
		if !seen[t] {
			out = append(out, t)
		}
	}
	return out
}

func (t Template) clone() Template {
	cp := t
	cp.UIConfig.Components = append([]string(nil), t.UIConfig.Components...)
	cp.UIConfig.Actions = append([]string(nil), t.UIConfig.Actions...)
	cp.RequiredAgents = append([]AgentBlueprint(nil), t.RequiredAgents...)
	if t.DefaultConfig != nil {
		cp.DefaultConfig = make(map[string]bool, len(t.DefaultConfig))
		for k, v := range t.DefaultConfig {
			cp.DefaultConfig[k] = v
		}
	}
	return cp
}
