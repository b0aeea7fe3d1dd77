package orchestrator

import (
	"fmt"
	"strings"

	"ai-workspace-be/pkg/events"
)

// EventMessage renders the page-memory line for a feature event. The feature
// name is always quoted.
func EventMessage(eventType, featureName string, payload map[string]interface{}) string {
	name := `"` + featureName + `"`

	switch eventType {
	case events.FeatureCreated:
		agents := countOf(payload["agent_ids"])
		if agents > 0 {
			return fmt.Sprintf("Feature %s was created with %d agent(s).", name, agents)
		}
		return fmt.Sprintf("Feature %s was created.", name)
	case events.FeatureDataUpdated:
		if n, ok := payload["item_count"].(int); ok {
			return fmt.Sprintf("Feature %s data was updated (%d item(s)).", name, n)
		}
		return fmt.Sprintf("Feature %s data was updated.", name)
	case events.FeatureDeleted:
		return fmt.Sprintf("Feature %s was deleted.", name)
	default:
		return fmt.Sprintf("Feature %s: %s", name, strings.ToLower(strings.ReplaceAll(eventType, "_", " ")))
	}
}

func countOf(v interface{}) int {
	switch ids := v.(type) {
	case []string:
		return len(ids)
	case []interface{}:
		return len(ids)
	default:
		return 0
	}
}
