package compliance

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RuleSet is the YAML document shape accepted by DecodeRules.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// DecodeRules reads a YAML rule set. Rule order is preserved.
func DecodeRules(r io.Reader) ([]Rule, error) {
	var set RuleSet
	if err := yaml.NewDecoder(r).Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode rule set: %w", err)
	}

	seen := make(map[string]bool, len(set.Rules))
	for i, rule := range set.Rules {
		if rule.ID == "" {
			return nil, fmt.Errorf("rule %d: missing id", i)
		}
		if seen[rule.ID] {
			return nil, fmt.Errorf("rule %d: duplicate id %q", i, rule.ID)
		}
		seen[rule.ID] = true
	}

	return set.Rules, nil
}
