package semver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVersioningMode_UnmarshalYAML(t *testing.T) {
	var m VersioningMode
	require.NoError(t, yaml.Unmarshal([]byte(`Mainline`), &m))
	require.Equal(t, VersioningModeMainline, m)
}

func TestIncrementStrategy_UnmarshalYAML(t *testing.T) {
	var s IncrementStrategy
	require.NoError(t, yaml.Unmarshal([]byte(`Minor`), &s))
	require.Equal(t, IncrementStrategyMinor, s)
}

func TestCommitMessageIncrementMode_UnmarshalYAML(t *testing.T) {
	var m CommitMessageIncrementMode
	require.NoError(t, yaml.Unmarshal([]byte(`Disabled`), &m))
	require.Equal(t, CommitMessageIncrementDisabled, m)
}

func TestVersioningMode_UnmarshalYAML_Invalid(t *testing.T) {
	var m VersioningMode
	require.Error(t, yaml.Unmarshal([]byte(`bad`), &m))
}

func TestIncrementStrategy_UnmarshalYAML_Invalid(t *testing.T) {
	var s IncrementStrategy
	require.Error(t, yaml.Unmarshal([]byte(`bad`), &s))
}

func TestCommitMessageIncrementMode_UnmarshalYAML_Invalid(t *testing.T) {
	var m CommitMessageIncrementMode
	require.Error(t, yaml.Unmarshal([]byte(`[1, 2]`), &m))
}

func TestEnums_MarshalYAML(t *testing.T) {
	doc := struct {
		Mode      VersioningMode             `yaml:"mode"`
		Increment IncrementStrategy          `yaml:"increment"`
		Commits   CommitMessageIncrementMode `yaml:"commit-message-incrementing"`
	}{
		Mode:      VersioningModeContinuousDeployment,
		Increment: IncrementStrategyInherit,
		Commits:   CommitMessageIncrementMergeMessageOnly,
	}

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "mode: ContinuousDeployment\nincrement: Inherit\ncommit-message-incrementing: MergeMessageOnly\n", string(out))
}

func TestEnums_MarshalYAML_RoundTrip(t *testing.T) {
	for _, want := range []IncrementStrategy{
		IncrementStrategyNone, IncrementStrategyMajor, IncrementStrategyMinor,
		IncrementStrategyPatch, IncrementStrategyInherit,
	} {
		out, err := yaml.Marshal(want)
		require.NoError(t, err)

		var got IncrementStrategy
		require.NoError(t, yaml.Unmarshal(out, &got))
		require.Equal(t, want, got)
	}
}

func TestEnums_MarshalYAML_OutOfRange(t *testing.T) {
	_, err := VersioningMode(42).MarshalYAML()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot marshal")
}
