// Package semver provides the enumerations a branch configuration refers to.
package semver

import (
	"fmt"
	"strings"
)

// IncrementStrategy represents the configured increment strategy for a branch.
type IncrementStrategy int

const (
	IncrementStrategyNone IncrementStrategy = iota
	IncrementStrategyMajor
	IncrementStrategyMinor
	IncrementStrategyPatch
	IncrementStrategyInherit
)

func (s IncrementStrategy) String() string {
	switch s {
	case IncrementStrategyNone:
		return "None"
	case IncrementStrategyMajor:
		return "Major"
	case IncrementStrategyMinor:
		return "Minor"
	case IncrementStrategyPatch:
		return "Patch"
	case IncrementStrategyInherit:
		return "Inherit"
	default:
		return "Unknown"
	}
}

// ParseIncrementStrategy parses an increment strategy name, ignoring case.
func ParseIncrementStrategy(s string) (IncrementStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return IncrementStrategyNone, nil
	case "major":
		return IncrementStrategyMajor, nil
	case "minor":
		return IncrementStrategyMinor, nil
	case "patch":
		return IncrementStrategyPatch, nil
	case "inherit":
		return IncrementStrategyInherit, nil
	default:
		return 0, fmt.Errorf("unknown increment strategy %q", s)
	}
}

// VersioningMode represents the versioning mode.
type VersioningMode int

const (
	VersioningModeContinuousDelivery VersioningMode = iota
	VersioningModeContinuousDeployment
	VersioningModeMainline
)

func (m VersioningMode) String() string {
	switch m {
	case VersioningModeContinuousDelivery:
		return "ContinuousDelivery"
	case VersioningModeContinuousDeployment:
		return "ContinuousDeployment"
	case VersioningModeMainline:
		return "Mainline"
	default:
		return "Unknown"
	}
}

// ParseVersioningMode parses a versioning mode name, ignoring case.
func ParseVersioningMode(s string) (VersioningMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuousdelivery":
		return VersioningModeContinuousDelivery, nil
	case "continuousdeployment":
		return VersioningModeContinuousDeployment, nil
	case "mainline":
		return VersioningModeMainline, nil
	default:
		return 0, fmt.Errorf("unknown versioning mode %q", s)
	}
}

// CommitMessageIncrementMode controls how commit messages affect version incrementing.
type CommitMessageIncrementMode int

const (
	CommitMessageIncrementEnabled CommitMessageIncrementMode = iota
	CommitMessageIncrementDisabled
	CommitMessageIncrementMergeMessageOnly
)

func (m CommitMessageIncrementMode) String() string {
	switch m {
	case CommitMessageIncrementEnabled:
		return "Enabled"
	case CommitMessageIncrementDisabled:
		return "Disabled"
	case CommitMessageIncrementMergeMessageOnly:
		return "MergeMessageOnly"
	default:
		return "Unknown"
	}
}

// ParseCommitMessageIncrementMode parses a commit message increment mode, ignoring case.
func ParseCommitMessageIncrementMode(s string) (CommitMessageIncrementMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enabled":
		return CommitMessageIncrementEnabled, nil
	case "disabled":
		return CommitMessageIncrementDisabled, nil
	case "mergemessageonly":
		return CommitMessageIncrementMergeMessageOnly, nil
	default:
		return 0, fmt.Errorf("unknown commit message increment mode %q", s)
	}
}
