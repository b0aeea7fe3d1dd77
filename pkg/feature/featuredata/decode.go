package featuredata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-workspace-be/pkg/feature"
)

// Decode turns raw FeatureData JSON into the payload variant for featureType.
// Accepted shapes: an array of objects, an object with an "items" array, or a
// single object. Empty input and null decode to an empty payload.
func Decode(featureType feature.FeatureType, raw []byte) (Payload, error) {
	items, err := Items(raw)
	if err != nil {
		return Payload{}, err
	}

	p := Payload{Kind: KindFor(featureType)}
	for _, item := range items {
		switch p.Kind {
		case KindTodos:
			p.Todos = append(p.Todos, decodeTodo(item))
		case KindNotes:
			p.Notes = append(p.Notes, decodeNote(item))
		case KindIdeas:
			p.Ideas = append(p.Ideas, decodeIdea(item))
		case KindResearch:
			p.Research = append(p.Research, decodeResearch(item))
		case KindTrackers:
			p.Trackers = append(p.Trackers, decodeTracker(item))
		default:
			p.Custom = append(p.Custom, item)
		}
	}
	return p, nil
}

// Items normalizes raw JSON into a list of objects. Array elements that are
// not objects are wrapped as {"value": v}.
func Items(raw []byte) ([]map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []map[string]interface{}{}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse feature data: %w", err)
	}

	switch v := decoded.(type) {
	case []interface{}:
		return toObjects(v), nil
	case map[string]interface{}:
		if list, ok := v["items"].([]interface{}); ok {
			return toObjects(list), nil
		}
		return []map[string]interface{}{v}, nil
	default:
		return []map[string]interface{}{{"value": v}}, nil
	}
}

func toObjects(list []interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(list))
	for _, el := range list {
		if obj, ok := el.(map[string]interface{}); ok {
			out = append(out, obj)
			continue
		}
		out = append(out, map[string]interface{}{"value": el})
	}
	return out
}

func decodeTodo(m map[string]interface{}) TodoItem {
	return TodoItem{
		Title:     firstString(m, "title", "text", "name", "value"),
		Completed: doneFlag(m, "completed", "done", "status"),
		DueDate:   firstTime(m, "dueDate", "due_date", "due"),
		Priority:  firstString(m, "priority"),
	}
}

func decodeNote(m map[string]interface{}) NoteItem {
	return NoteItem{
		Title:   firstString(m, "title", "name"),
		Content: PlainText(firstString(m, "content", "body", "text", "value")),
		Tags:    stringList(m["tags"]),
	}
}

func decodeIdea(m map[string]interface{}) IdeaItem {
	return IdeaItem{
		Title:       firstString(m, "title", "idea", "text", "name", "value"),
		Description: firstString(m, "description", "details"),
		Category:    firstString(m, "category", "tag"),
	}
}

func decodeResearch(m map[string]interface{}) ResearchItem {
	status := strings.ToLower(firstString(m, "status"))
	item := ResearchItem{
		Topic:  firstString(m, "topic", "title", "name", "value"),
		Source: firstString(m, "source", "url", "link"),
		Status: status,
	}
	item.Completed = doneFlag(m, "completed", "done", "status")
	item.Active = !item.Completed && activeFlag(m, true)
	return item
}

func decodeTracker(m map[string]interface{}) TrackerItem {
	return TrackerItem{
		Name:      firstString(m, "name", "title", "habit", "value"),
		Active:    activeFlag(m, true),
		Completed: doneFlag(m, "completed", "done"),
		Streak:    firstInt(m, "streak"),
	}
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64, bool:
			return fmt.Sprint(v)
		}
	}
	return ""
}

func firstInt(m map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		if v, ok := m[k].(float64); ok {
			return int(v)
		}
	}
	return 0
}

var doneStatuses = map[string]bool{"done": true, "completed": true, "complete": true, "finished": true}

// doneFlag reads the first present key as a boolean or a done-like status.
func doneFlag(m map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		switch v := m[k].(type) {
		case bool:
			return v
		case string:
			return doneStatuses[strings.ToLower(strings.TrimSpace(v))]
		case float64:
			return v != 0
		}
	}
	return false
}

var inactiveStatuses = map[string]bool{"inactive": true, "paused": true, "archived": true, "stopped": true}

// activeFlag prefers an explicit "active" boolean, then "status". Items with
// neither count as def.
func activeFlag(m map[string]interface{}, def bool) bool {
	if v, ok := m["active"].(bool); ok {
		return v
	}
	if s, ok := m["status"].(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return def
		}
		return !inactiveStatuses[s] && !doneStatuses[s]
	}
	return def
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func firstTime(m map[string]interface{}, keys ...string) *time.Time {
	for _, k := range keys {
		s, ok := m[k].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

func stringList(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, el := range list {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
