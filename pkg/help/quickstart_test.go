package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestQuickstartIsValidYAML(t *testing.T) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(QuickstartYAML), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal(QuickstartYAML) error = %v", err)
	}
	for _, key := range []string{"commands", "ranking", "errors", "exit_codes"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("QuickstartYAML missing %q section", key)
		}
	}
}
