package config

import "github.com/mosswm/mosswm/internal/layout"

var defaultConfig = Config{
	Layout: Layout{
		Gaps:        layout.DefaultConfig.Gaps,
		Padding:     layout.DefaultConfig.Padding,
		MasterRatio: layout.DefaultConfig.MasterRatio,
	},
	FloatRules: []FloatRule{},
}

type Config struct {
	Layout     Layout      `json:"layout" yaml:"layout"`
	FloatRules []FloatRule `json:"float_rules" yaml:"float_rules"`
}

type Layout struct {
	Gaps        float64 `json:"gaps" yaml:"gaps"`
	Padding     float64 `json:"padding" yaml:"padding"`
	MasterRatio float64 `json:"master_ratio" yaml:"master_ratio"`
}

// FloatRule exempts windows of an application from tiling at add time.
type FloatRule struct {
	UUID string `json:"uuid" yaml:"uuid"`
	App  string `json:"app" yaml:"app"`
}

// LayoutConfig converts the on-disk layout section to engine parameters.
func (c Config) LayoutConfig() layout.Config {
	return layout.Config{
		Gaps:        c.Layout.Gaps,
		Padding:     c.Layout.Padding,
		MasterRatio: c.Layout.MasterRatio,
	}.Clamp()
}

// Floats reports whether windows of app should start floating.
func (c Config) Floats(app string) bool {
	for _, rule := range c.FloatRules {
		if rule.App == app {
			return true
		}
	}
	return false
}
