package rules

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/eric-downes/nosey-pytest/internal/model"
)

const defaultUserPriority = 50

type userRule struct {
	ID          string `yaml:"id"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description"`
	Priority    int    `yaml:"priority"`
	Enabled     *bool  `yaml:"enabled"`
	DotAll      bool   `yaml:"dotall"`
}

type userRuleFile struct {
	Rules []userRule `yaml:"rules"`
}

// UserRuleSpec is one rule as it appears in a user rules file.
type UserRuleSpec struct {
	ID          string
	Pattern     string
	Replacement string
	Description string
	Priority    int
}

// AppendUserRule adds a rule to a YAML rules document and returns the new
// document. The input may be empty. Existing entries are preserved as-is.
func AppendUserRule(data []byte, spec UserRuleSpec) ([]byte, error) {
	var file userRuleFile

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing rules file: %w", err)
		}
	}

	for _, existing := range file.Rules {
		if existing.ID == spec.ID {
			return nil, fmt.Errorf("rule %q already exists in the rules file", spec.ID)
		}
	}

	if _, err := regexp.Compile(spec.Pattern); err != nil {
		return nil, fmt.Errorf("rule %s: %w", spec.ID, err)
	}

	file.Rules = append(file.Rules, userRule{
		ID:          spec.ID,
		Pattern:     spec.Pattern,
		Replacement: spec.Replacement,
		Description: spec.Description,
		Priority:    spec.Priority,
	})

	out, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encoding rules file: %w", err)
	}

	return out, nil
}

// ParseUserRules decodes additional textual rules from a YAML document.
// Replacements use the same \1..\9 backreference notation as the built-in
// catalogue.
func ParseUserRules(data []byte) ([]m.Rule, error) {
	var file userRuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	out := make([]m.Rule, 0, len(file.Rules))

	for i, ur := range file.Rules {
		if ur.ID == "" || ur.Pattern == "" {
			return nil, fmt.Errorf("rule %d: id and pattern are required", i+1)
		}

		pattern := ur.Pattern
		if ur.DotAll && !strings.HasPrefix(pattern, "(?s)") {
			pattern = "(?s)" + pattern
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", ur.ID, err)
		}

		priority := ur.Priority
		if priority == 0 {
			priority = defaultUserPriority
		}

		enabled := true
		if ur.Enabled != nil {
			enabled = *ur.Enabled
		}

		out = append(out, m.Rule{
			ID:          m.RuleID(ur.ID),
			Kind:        m.KindTextual,
			Pattern:     re,
			Produce:     templateProducer(ur.Replacement),
			Description: ur.Description,
			Priority:    priority,
			Enabled:     enabled,
		})
	}

	return out, nil
}
