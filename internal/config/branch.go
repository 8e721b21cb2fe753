// Package config provides immutable branch configuration snapshots and the
// builder that stages them field by field.
package config

import (
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/go-branchconfig/internal/semver"
)

// BranchConfiguration is an immutable snapshot of the versioning rules for
// one branch. Every field except Name is optional: an unset field means
// "inherit from the parent configuration", while a set field overrides it
// even when its value is false, zero or empty.
//
// Values are produced by BranchConfigurationBuilder.Build. The zero value
// is a configuration with an empty name and nothing set. Compare values
// with Equal; the type is not comparable with ==.
type BranchConfiguration struct {
	_ [0]func()

	name                                  string
	versioningMode                        *semver.VersioningMode
	label                                 *string
	increment                             *semver.IncrementStrategy
	preventIncrementOfMergedBranchVersion *bool
	labelNumberPattern                    *string
	trackMergeTarget                      *bool
	trackMergeMessage                     *bool
	commitMessageIncrementing             *semver.CommitMessageIncrementMode
	regex                                 *string
	sourceBranches                        *BranchSet
	isSourceBranchFor                     *BranchSet
	tracksReleaseBranches                 *bool
	isReleaseBranch                       *bool
	isMainline                            *bool
	preReleaseWeight                      *int
}

// Name returns the configuration name, e.g. "main" or "feature".
func (c BranchConfiguration) Name() string { return c.name }

// VersioningMode returns the versioning mode and whether it is set.
func (c BranchConfiguration) VersioningMode() (semver.VersioningMode, bool) {
	return deref(c.versioningMode)
}

// Label returns the pre-release label template.
func (c BranchConfiguration) Label() (string, bool) { return deref(c.label) }

// Increment returns the increment strategy and whether it is set.
func (c BranchConfiguration) Increment() (semver.IncrementStrategy, bool) {
	return deref(c.increment)
}

// PreventIncrementOfMergedBranchVersion returns the flag and whether it is set.
func (c BranchConfiguration) PreventIncrementOfMergedBranchVersion() (bool, bool) {
	return deref(c.preventIncrementOfMergedBranchVersion)
}

// LabelNumberPattern returns the pattern used to number pre-release labels.
func (c BranchConfiguration) LabelNumberPattern() (string, bool) {
	return deref(c.labelNumberPattern)
}

// TrackMergeTarget returns the flag and whether it is set.
func (c BranchConfiguration) TrackMergeTarget() (bool, bool) { return deref(c.trackMergeTarget) }

// TrackMergeMessage returns the flag and whether it is set.
func (c BranchConfiguration) TrackMergeMessage() (bool, bool) { return deref(c.trackMergeMessage) }

// CommitMessageIncrementing returns the commit message increment mode and whether it is set.
func (c BranchConfiguration) CommitMessageIncrementing() (semver.CommitMessageIncrementMode, bool) {
	return deref(c.commitMessageIncrementing)
}

// Regex returns the branch-name pattern. It is carried verbatim and never compiled here.
func (c BranchConfiguration) Regex() (string, bool) { return deref(c.regex) }

// SourceBranches returns the branches this one may be created from.
func (c BranchConfiguration) SourceBranches() (BranchSet, bool) { return deref(c.sourceBranches) }

// IsSourceBranchFor returns the branches that may be created from this one.
func (c BranchConfiguration) IsSourceBranchFor() (BranchSet, bool) {
	return deref(c.isSourceBranchFor)
}

// TracksReleaseBranches returns the flag and whether it is set.
func (c BranchConfiguration) TracksReleaseBranches() (bool, bool) {
	return deref(c.tracksReleaseBranches)
}

// IsReleaseBranch returns the flag and whether it is set.
func (c BranchConfiguration) IsReleaseBranch() (bool, bool) { return deref(c.isReleaseBranch) }

// IsMainline returns the flag and whether it is set.
func (c BranchConfiguration) IsMainline() (bool, bool) { return deref(c.isMainline) }

// PreReleaseWeight returns the pre-release weight and whether it is set.
func (c BranchConfiguration) PreReleaseWeight() (int, bool) { return deref(c.preReleaseWeight) }

// IsZero reports whether no field, including the name, has been set.
func (c BranchConfiguration) IsZero() bool {
	return c.Equal(BranchConfiguration{})
}

// Equal reports whether both configurations have the same name and the same
// set/unset state and value for every optional field. Branch sets compare
// by membership.
func (c BranchConfiguration) Equal(other BranchConfiguration) bool {
	return c.name == other.name &&
		equalPtr(c.versioningMode, other.versioningMode) &&
		equalPtr(c.label, other.label) &&
		equalPtr(c.increment, other.increment) &&
		equalPtr(c.preventIncrementOfMergedBranchVersion, other.preventIncrementOfMergedBranchVersion) &&
		equalPtr(c.labelNumberPattern, other.labelNumberPattern) &&
		equalPtr(c.trackMergeTarget, other.trackMergeTarget) &&
		equalPtr(c.trackMergeMessage, other.trackMergeMessage) &&
		equalPtr(c.commitMessageIncrementing, other.commitMessageIncrementing) &&
		equalPtr(c.regex, other.regex) &&
		equalSet(c.sourceBranches, other.sourceBranches) &&
		equalSet(c.isSourceBranchFor, other.isSourceBranchFor) &&
		equalPtr(c.tracksReleaseBranches, other.tracksReleaseBranches) &&
		equalPtr(c.isReleaseBranch, other.isReleaseBranch) &&
		equalPtr(c.isMainline, other.isMainline) &&
		equalPtr(c.preReleaseWeight, other.preReleaseWeight)
}

func equalSet(a, b *BranchSet) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (c BranchConfiguration) String() string {
	fields := []struct {
		key   string
		value string
	}{
		{"mode", formatPtr(c.versioningMode)},
		{"label", formatPtr(c.label)},
		{"increment", formatPtr(c.increment)},
		{"prevent-increment-of-merged-branch-version", formatPtr(c.preventIncrementOfMergedBranchVersion)},
		{"label-number-pattern", formatPtr(c.labelNumberPattern)},
		{"track-merge-target", formatPtr(c.trackMergeTarget)},
		{"track-merge-message", formatPtr(c.trackMergeMessage)},
		{"commit-message-incrementing", formatPtr(c.commitMessageIncrementing)},
		{"regex", formatPtr(c.regex)},
		{"source-branches", formatPtr(c.sourceBranches)},
		{"is-source-branch-for", formatPtr(c.isSourceBranchFor)},
		{"tracks-release-branches", formatPtr(c.tracksReleaseBranches)},
		{"is-release-branch", formatPtr(c.isReleaseBranch)},
		{"is-mainline", formatPtr(c.isMainline)},
		{"pre-release-weight", formatPtr(c.preReleaseWeight)},
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s{", c.name)
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", f.key, f.value)
	}
	sb.WriteString("}")
	return sb.String()
}
