// Package catalog defines the fixed keyword families the engine
// searches for. The catalog is process-wide static configuration,
// constructed once and never mutated at request time.
package catalog

// Family is a named group of related lowercase keywords representing
// one sustainability theme, with the canonical target label emitted
// when any member keyword occurs in a document.
type Family struct {
	Name     string
	Target   string
	Keywords []string
}

// Families is the fixed four-family catalog, in declaration order.
// Callers must treat it as read-only.
var Families = []Family{
	{
		Name:     "carbon",
		Target:   "Scope 1 & 2 Greenhouse Gas Emissions Reduction",
		Keywords: []string{"carbon", "emission", "ghg", "scope 1", "scope 2", "decarbon"},
	},
	{
		Name:     "renewable",
		Target:   "Renewable Energy Sourcing (%)",
		Keywords: []string{"renewable", "clean energy", "green power"},
	},
	{
		Name:     "diversity",
		Target:   "Gender Diversity in Senior Management",
		Keywords: []string{"diversity", "gender", "inclusion", "board composition"},
	},
	{
		Name:     "water",
		Target:   "Water Scarcity Management",
		Keywords: []string{"water", "scarcity"},
	},
}

// FallbackTargets returns the fixed demo-mode target list substituted
// when no family matched: the first three catalog targets in
// declaration order.
func FallbackTargets() []string {
	return []string{
		Families[0].Target,
		Families[1].Target,
		Families[2].Target,
	}
}

// KeywordUniverse returns every member keyword across all families, in
// catalog order.
func KeywordUniverse() []string {
	var out []string
	for _, f := range Families {
		out = append(out, f.Keywords...)
	}
	return out
}
