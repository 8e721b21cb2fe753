// Package branchconfig provides a public Go API for assembling immutable
// per-branch versioning configurations.
//
// A configuration is staged on a Builder and snapshotted with Build. Every
// field except the name is optional; pass nil to leave a field unset so a
// downstream engine can inherit it, or a pointer (see Ptr) to set it
// explicitly, even to false or zero.
//
// Basic usage:
//
//	feature, _ := branchconfig.Default(branchconfig.BranchFeature)
//	cfg := branchconfig.NewBuilderFrom(feature).
//	    WithLabel(branchconfig.Ptr("preview")).
//	    WithPreReleaseWeight(nil).
//	    Build()
//	label, ok := cfg.Label() // "preview", true
package branchconfig

import (
	"github.com/MyCarrier-DevOps/go-branchconfig/internal/config"
	"github.com/MyCarrier-DevOps/go-branchconfig/internal/semver"
)

type (
	// Builder stages the fields of a Configuration.
	Builder = config.BranchConfigurationBuilder
	// Configuration is an immutable branch configuration snapshot.
	Configuration = config.BranchConfiguration
	// BranchSet is an immutable unordered set of branch names.
	BranchSet = config.BranchSet

	VersioningMode             = semver.VersioningMode
	IncrementStrategy          = semver.IncrementStrategy
	CommitMessageIncrementMode = semver.CommitMessageIncrementMode
)

const (
	VersioningModeContinuousDelivery   = semver.VersioningModeContinuousDelivery
	VersioningModeContinuousDeployment = semver.VersioningModeContinuousDeployment
	VersioningModeMainline             = semver.VersioningModeMainline

	IncrementStrategyNone    = semver.IncrementStrategyNone
	IncrementStrategyMajor   = semver.IncrementStrategyMajor
	IncrementStrategyMinor   = semver.IncrementStrategyMinor
	IncrementStrategyPatch   = semver.IncrementStrategyPatch
	IncrementStrategyInherit = semver.IncrementStrategyInherit

	CommitMessageIncrementEnabled          = semver.CommitMessageIncrementEnabled
	CommitMessageIncrementDisabled         = semver.CommitMessageIncrementDisabled
	CommitMessageIncrementMergeMessageOnly = semver.CommitMessageIncrementMergeMessageOnly
)

// Well-known branch configuration names.
const (
	BranchMain        = config.BranchMain
	BranchDevelop     = config.BranchDevelop
	BranchRelease     = config.BranchRelease
	BranchFeature     = config.BranchFeature
	BranchHotfix      = config.BranchHotfix
	BranchPullRequest = config.BranchPullRequest
	BranchSupport     = config.BranchSupport
	BranchUnknown     = config.BranchUnknown
)

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return config.NewBranchConfigurationBuilder()
}

// NewBuilderFrom creates a builder seeded with every field of c.
func NewBuilderFrom(c Configuration) *Builder {
	return config.NewBranchConfigurationBuilderFrom(c)
}

// NewBranchSet builds a set from the given names.
func NewBranchSet(names ...string) BranchSet {
	return config.NewBranchSet(names...)
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return config.Ptr(v)
}

// Defaults returns fresh copies of the well-known branch configurations keyed by name.
func Defaults() map[string]Configuration {
	return config.DefaultBranchConfigurations()
}

// Default returns the well-known configuration with the given name.
func Default(name string) (Configuration, bool) {
	return config.DefaultBranchConfiguration(name)
}

// ParseVersioningMode parses a versioning mode name, ignoring case.
func ParseVersioningMode(s string) (VersioningMode, error) {
	return semver.ParseVersioningMode(s)
}

// ParseIncrementStrategy parses an increment strategy name, ignoring case.
func ParseIncrementStrategy(s string) (IncrementStrategy, error) {
	return semver.ParseIncrementStrategy(s)
}

// ParseCommitMessageIncrementMode parses a commit message increment mode, ignoring case.
func ParseCommitMessageIncrementMode(s string) (CommitMessageIncrementMode, error) {
	return semver.ParseCommitMessageIncrementMode(s)
}
