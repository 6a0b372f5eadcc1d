// Package msgtemplate maintains the invariant that a template's variable set
// always reflects its text. Substitution happens upstream at send time; this
// layer only discovers placeholders and seeds the operator's value inputs, so
// any preview built from here shows the raw, unresolved template text.
package msgtemplate

import "regexp"

var placeholder = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ExtractVariables returns the unique placeholder names appearing in text, in
// first-occurrence order. Identifiers are whatever sits between {{ and the
// first closing brace; no syntax validation is applied, so malformed or
// nested braces pass through exactly as written.
func ExtractVariables(text string) []string {
	matches := placeholder.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, name)
	}
	return vars
}

// VariableInputs seeds an empty editable value for every variable. It is
// called on each template selection, so values entered for a previously
// selected template never carry over.
func VariableInputs(vars []string) map[string]string {
	inputs := make(map[string]string, len(vars))
	for _, v := range vars {
		inputs[v] = ""
	}
	return inputs
}
