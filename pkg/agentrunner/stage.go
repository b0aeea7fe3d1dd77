package agentrunner

import (
	"regexp"
	"strings"
)

var (
	stageLine = regexp.MustCompile(`(?im)^[ \t]*STAGE:[ \t]*([A-Za-z0-9_-]+)[ \t]*$`)
	stageTag  = regexp.MustCompile(`(?i)<stage>\s*([A-Za-z0-9_-]+)\s*</stage>`)
)

// ParseStage removes stage signals from model output. A `STAGE:` line beats a
// <stage> tag, and among signals of one kind the last counts.
func ParseStage(output string) (reply, stage string) {
	for _, re := range []*regexp.Regexp{stageTag, stageLine} {
		matches := re.FindAllStringSubmatch(output, -1)
		if len(matches) > 0 {
			stage = strings.ToLower(matches[len(matches)-1][1])
		}
		output = re.ReplaceAllString(output, "")
	}
	return strings.TrimSpace(output), stage
}
