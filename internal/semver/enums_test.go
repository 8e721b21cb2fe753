package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncrementStrategy_String(t *testing.T) {
	tests := []struct {
		strategy IncrementStrategy
		want     string
	}{
		{IncrementStrategyNone, "None"},
		{IncrementStrategyMajor, "Major"},
		{IncrementStrategyMinor, "Minor"},
		{IncrementStrategyPatch, "Patch"},
		{IncrementStrategyInherit, "Inherit"},
		{IncrementStrategy(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.strategy.String())
		})
	}
}

func TestVersioningMode_String(t *testing.T) {
	tests := []struct {
		mode VersioningMode
		want string
	}{
		{VersioningModeContinuousDelivery, "ContinuousDelivery"},
		{VersioningModeContinuousDeployment, "ContinuousDeployment"},
		{VersioningModeMainline, "Mainline"},
		{VersioningMode(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestCommitMessageIncrementMode_String(t *testing.T) {
	tests := []struct {
		mode CommitMessageIncrementMode
		want string
	}{
		{CommitMessageIncrementEnabled, "Enabled"},
		{CommitMessageIncrementDisabled, "Disabled"},
		{CommitMessageIncrementMergeMessageOnly, "MergeMessageOnly"},
		{CommitMessageIncrementMode(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestParseVersioningMode(t *testing.T) {
	tests := []struct {
		input string
		want  VersioningMode
	}{
		{"ContinuousDelivery", VersioningModeContinuousDelivery},
		{"continuousdelivery", VersioningModeContinuousDelivery},
		{"ContinuousDeployment", VersioningModeContinuousDeployment},
		{"Mainline", VersioningModeMainline},
		{"MAINLINE", VersioningModeMainline},
		{" mainline ", VersioningModeMainline},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersioningMode(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersioningMode_Invalid(t *testing.T) {
	_, err := ParseVersioningMode("invalid")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown versioning mode")
}

func TestParseIncrementStrategy(t *testing.T) {
	tests := []struct {
		input string
		want  IncrementStrategy
	}{
		{"None", IncrementStrategyNone},
		{"major", IncrementStrategyMajor},
		{"Minor", IncrementStrategyMinor},
		{"patch", IncrementStrategyPatch},
		{"Inherit", IncrementStrategyInherit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIncrementStrategy(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseIncrementStrategy_Invalid(t *testing.T) {
	_, err := ParseIncrementStrategy("bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown increment strategy")
}

func TestParseCommitMessageIncrementMode(t *testing.T) {
	tests := []struct {
		input string
		want  CommitMessageIncrementMode
	}{
		{"Enabled", CommitMessageIncrementEnabled},
		{"disabled", CommitMessageIncrementDisabled},
		{"MergeMessageOnly", CommitMessageIncrementMergeMessageOnly},
		{"mergemessageonly", CommitMessageIncrementMergeMessageOnly},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommitMessageIncrementMode(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommitMessageIncrementMode_Invalid(t *testing.T) {
	_, err := ParseCommitMessageIncrementMode("nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown commit message increment mode")
}
