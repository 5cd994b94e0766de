package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestParseFailurePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.FailurePolicy
		wantErr bool
	}{
		{in: "", want: domain.PolicyFail},
		{in: "fail", want: domain.PolicyFail},
		{in: "Report", want: domain.PolicyReport},
		{in: " ignore ", want: domain.PolicyIgnore},
		{in: "retry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseFailurePolicy(tt.in)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrInvalidFailurePolicy.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeKey_String(t *testing.T) {
	assert.Equal(t, "task/echo", domain.TypeKey{Role: domain.RoleTask, Name: "echo"}.String())
}

func TestElementKey(t *testing.T) {
	assert.Equal(t, domain.TypeKey{Role: domain.RoleTask, Name: "echo"}, domain.ElementKey("echo"))
	assert.Equal(t, domain.TypeKey{Role: domain.RoleAction, Name: "mkdir"}, domain.ElementKey("action:mkdir"))
	assert.Equal(t, domain.TypeKey{Role: domain.RoleTask, Name: ":odd"}, domain.ElementKey(":odd"))
}

func TestNormalizeTargetStatus(t *testing.T) {
	assert.Equal(t, domain.TargetStatusFailed, domain.NormalizeTargetStatus("FAILED"))
	assert.Equal(t, domain.TargetStatusSkipped, domain.NormalizeTargetStatus("skipped"))
	assert.Equal(t, domain.TargetStatusCompleted, domain.NormalizeTargetStatus("whatever"))
}

func TestTargetState_String(t *testing.T) {
	assert.Equal(t, "not-started", domain.TargetNotStarted.String())
	assert.Equal(t, "running", domain.TargetRunning.String())
	assert.Equal(t, "done", domain.TargetDone.String())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(42).String())
}
