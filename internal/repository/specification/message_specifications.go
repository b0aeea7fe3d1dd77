package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByAgentID struct {
	AgentID uuid.UUID
}

func (s ByAgentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_id = ?", s.AgentID)
}

type ByAgentIDs struct {
	AgentIDs []uuid.UUID
}

func (s ByAgentIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_id IN ?", s.AgentIDs)
}

// PageLevel keeps messages that belong to no agent thread.
type PageLevel struct{}

func (s PageLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_id IS NULL")
}

// LegacyFeatureMessage matches page-level feature-event messages written
// without a feature back-reference whose content quotes the feature name.
type LegacyFeatureMessage struct {
	FeatureName string
}

func (s LegacyFeatureMessage) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + EscapeLike(`"`+s.FeatureName+`"`) + "%"
	return db.Where("source = ? AND agent_id IS NULL AND feature_id IS NULL AND content LIKE ? ESCAPE '\\'", "feature", pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
