package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec_Scalars(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"text":             "roadmap",
		"resource_subtype": "milestone",
		"completed":        "true",
		"is_subtask":       "false",
	})

	assert.Equal(t, "roadmap", spec.Text)
	assert.Equal(t, "milestone", spec.ResourceSubtype)
	require.NotNil(t, spec.Completed)
	assert.True(t, *spec.Completed)
	require.NotNil(t, spec.IsSubtask)
	assert.False(t, *spec.IsSubtask)
	assert.Empty(t, spec.Warnings)
}

func TestParseSpec_BooleanLiteralsAreCaseSensitive(t *testing.T) {
	tests := []struct {
		name string
		val  string
	}{
		{"capitalized", "True"},
		{"numeric", "1"},
		{"garbage", "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseSpec(map[string]string{"completed": tt.val})
			assert.Nil(t, spec.Completed)
			assert.Len(t, spec.Warnings, 1)
		})
	}
}

func TestParseSpec_DateDimensions(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"due_on.before": "2024-06-01",
		"due_on.after":  "2024-05-01",
		"due_on":        "2024-05-15",
		"due_at.before": "2024-06-01T12:30:00Z",
	})

	require.Len(t, spec.Dates, 4)

	byKey := map[string]DateFilter{}
	for _, df := range spec.Dates {
		byKey[df.Field+"/"+df.Op.String()] = df
	}

	before := byKey["due_on/before"]
	assert.True(t, before.DateOnly)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), before.Value)

	exact := byKey["due_on/exact"]
	assert.False(t, exact.IsNull)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), exact.Value)

	dueAt := byKey["due_at/before"]
	assert.False(t, dueAt.DateOnly)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC), dueAt.Value)
}

func TestParseSpec_NullLiteral(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"due_on":          "NULL",
		"start_on.before": "null",
	})

	// exact null becomes a must-be-unset dimension; a null range bound
	// is simply absent
	require.Len(t, spec.Dates, 1)
	assert.Equal(t, "due_on", spec.Dates[0].Field)
	assert.True(t, spec.Dates[0].IsNull)
	assert.Empty(t, spec.Warnings)
}

func TestParseSpec_MalformedDateDropsWithWarning(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"due_on.before": "next tuesday",
		"completed":     "true",
	})

	assert.Empty(t, spec.Dates)
	require.NotNil(t, spec.Completed)
	require.Len(t, spec.Warnings, 1)
	assert.Contains(t, spec.Warnings[0], "due_on.before")
}

func TestParseSpec_SetDimensions(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"assignee.any": " 12, 34 ,,56 ",
		"projects.all": "77",
		"liked_by.not": "98",
	})

	require.Len(t, spec.Sets, 3)

	byKey := map[string]SetFilter{}
	for _, sf := range spec.Sets {
		byKey[sf.Relation+"."+string(sf.Mode)] = sf
	}

	assert.Equal(t, []string{"12", "34", "56"}, byKey["assignee.any"].IDs)
	assert.Equal(t, []string{"77"}, byKey["projects.all"].IDs)
	assert.Equal(t, []string{"98"}, byKey["liked_by.not"].IDs)
}

func TestParseSpec_EmptyIDListIsAbsent(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"assignee.any": " , ,",
		"tags.any":     "",
	})
	assert.Empty(t, spec.Sets)
}

func TestParseSpec_ModesNotInGrammarAreIgnored(t *testing.T) {
	// teams only exposes .any; liked_by only .not
	spec := ParseSpec(map[string]string{
		"teams.not":    "1",
		"liked_by.any": "2",
	})
	assert.Empty(t, spec.Sets)
}

func TestParseSpec_UnknownKeysIgnored(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"opt_fields": "name,notes",
		"limit":      "50",
		"frobnicate": "x",
	})
	assert.True(t, spec.Empty())
	assert.Empty(t, spec.Warnings)
}

func TestParseSpec_SameFieldRangeAndExactCoexist(t *testing.T) {
	spec := ParseSpec(map[string]string{
		"due_on.before": "2024-06-01",
		"due_on.after":  "2024-05-01",
		"due_on":        "2024-05-10",
	})
	assert.Len(t, spec.Dates, 3)
}
