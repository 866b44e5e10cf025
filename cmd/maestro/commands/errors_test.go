package commands

import (
	"bytes"
	"strings"
	"testing"

	crdb "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/maestro/internal/errors"
	"github.com/thoreinstein/maestro/internal/store"
	"github.com/thoreinstein/maestro/internal/workspace"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name           string
		kind           error
		cause          error
		wantCode       int
		wantSuggestion string
	}{
		{"not configured", store.ErrConfigNotFound, crdb.New("open"), errors.ExitUser, "maestro configure"},
		{"malformed pointer", store.ErrMalformedPointer, crdb.New("json"), errors.ExitUser, "pointer file is damaged"},
		{"stale pointer", store.ErrUserConfigNotFound, crdb.New("open"), errors.ExitUser, "moved or deleted"},
		{"malformed user config", store.ErrMalformedUserConfig, crdb.New("json"), errors.ExitUser, "Fix the syntax"},
		{
			"validation",
			store.ErrValidation,
			&workspace.ValidationError{Workspace: "Workspace B", Field: "name", Reason: workspace.ReasonNameNotWord},
			errors.ExitUser,
			`Fix workspace "Workspace B": Name must be a single word`,
		},
		{"path resolution", store.ErrPathResolution, crdb.New("stat"), errors.ExitUser, "Ensure the file exists"},
		{"write", store.ErrWrite, crdb.New("permission denied"), errors.ExitSystem, "write permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storeError(crdb.Mark(crdb.Wrap(tt.cause, "context"), tt.kind))
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
			assert.Contains(t, errors.SuggestionOf(err), tt.wantSuggestion)
			assert.True(t, crdb.Is(err, tt.kind), "kind must survive wrapping")
		})
	}
}

func TestStoreError_PassThrough(t *testing.T) {
	assert.Nil(t, storeError(nil))

	plain := crdb.New("unrelated")
	assert.Equal(t, plain, storeError(plain))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.NewUserError(crdb.New("maestro is not configured"), "Run: maestro configure <path>"))

	out := buf.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "maestro is not configured")
	assert.Contains(t, out, "Run: maestro configure <path>")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestPrintError_SuggestionOnly(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.NewUserError(nil, "cannot use --quiet and --verbose together"))

	assert.Equal(t, 1, strings.Count(buf.String(), "cannot use --quiet"))
}
