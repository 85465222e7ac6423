package gid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/core/apperror"
)

const sampleUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want Classification
	}{
		{"numeric long", "12345", NumericLong},
		{"single digit", "7", NumericLong},
		{"uuid lowercase", sampleUUID, UUID},
		{"uuid uppercase", "550E8400-E29B-41D4-A716-446655440000", UUID},
		{"plain word", "abc", Invalid},
		{"empty", "", Invalid},
		{"negative number", "-42", Invalid},
		{"digits with space", "123 45", Invalid},
		{"uuid missing hyphen", "550e8400e29b-41d4-a716-446655440000", Invalid},
		{"uuid wrong group", "550e8400-e29b-41d4-a716-44665544000", Invalid},
		{"uuid non-hex", "550e8400-e29b-41d4-a716-44665544000g", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.id))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("numeric always passes", func(t *testing.T) {
		assert.NoError(t, Validate("12345", "task", false))
		assert.NoError(t, Validate("12345", "task", true))
	})

	t.Run("uuid passes unless strict", func(t *testing.T) {
		assert.NoError(t, Validate(sampleUUID, "task", false))

		err := Validate(sampleUUID, "task", true)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidGID, appErr.Code)
		assert.Equal(t, "task: Not a Long: "+sampleUUID, appErr.Message)
		assert.Equal(t, HelpURL, appErr.Help)
	})

	t.Run("invalid format", func(t *testing.T) {
		err := Validate("abc", "task", false)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidGID, appErr.Code)
		assert.Equal(t, "task: Not a Long: abc", appErr.Message)
	})

	t.Run("empty", func(t *testing.T) {
		err := Validate("", "workspace", false)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeEmptyGID, appErr.Code)
		assert.Equal(t, "workspace: GID cannot be empty", appErr.Message)
	})
}
