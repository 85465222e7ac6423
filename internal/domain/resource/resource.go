// Package resource defines the API's entity value types.
// All values are request-scoped snapshots; nothing here holds shared
// mutable state.
package resource

// Kind is a resource-type tag as it appears on the wire.
type Kind string

const (
	KindTask            Kind = "task"
	KindProject         Kind = "project"
	KindSection         Kind = "section"
	KindTag             Kind = "tag"
	KindTeam            Kind = "team"
	KindUser            Kind = "user"
	KindWorkspace       Kind = "workspace"
	KindCustomField     Kind = "custom_field"
	KindStory           Kind = "story"
	KindProjectTemplate Kind = "project_template"
	KindPortfolio       Kind = "portfolio"
	KindGoal            Kind = "goal"
)

// Ref is a compact named reference to a resource, the typeahead result shape.
type Ref struct {
	GID          string `json:"gid"`
	ResourceType Kind   `json:"resource_type"`
	Name         string `json:"name"`
}
