package config

import (
	"iter"
	"slices"

	"github.com/MyCarrier-DevOps/go-branchconfig/internal/semver"
)

// BranchConfigurationBuilder stages the fields of a BranchConfiguration.
// Optional setters take a pointer: nil leaves the field unset (clearing any
// earlier value), anything else marks it explicitly set, including false,
// zero and the empty string. Every setter returns the builder for chaining.
//
// A builder is not safe for concurrent use.
type BranchConfigurationBuilder struct {
	staged BranchConfiguration
}

// NewBranchConfigurationBuilder creates an empty builder.
func NewBranchConfigurationBuilder() *BranchConfigurationBuilder {
	return &BranchConfigurationBuilder{}
}

// NewBranchConfigurationBuilderFrom creates a builder seeded with every field of c.
func NewBranchConfigurationBuilderFrom(c BranchConfiguration) *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().WithConfiguration(c)
}

// WithName sets the configuration name. Build does not require it; a
// builder that never receives a name produces an empty one.
func (b *BranchConfigurationBuilder) WithName(value string) *BranchConfigurationBuilder {
	b.staged.name = value
	return b
}

// WithVersioningMode sets the versioning mode; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithVersioningMode(value *semver.VersioningMode) *BranchConfigurationBuilder {
	b.staged.versioningMode = clonePtr(value)
	return b
}

// WithLabel sets the pre-release label template; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithLabel(value *string) *BranchConfigurationBuilder {
	b.staged.label = clonePtr(value)
	return b
}

// WithIncrement sets the increment strategy; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithIncrement(value *semver.IncrementStrategy) *BranchConfigurationBuilder {
	b.staged.increment = clonePtr(value)
	return b
}

// WithPreventIncrementOfMergedBranchVersion sets whether merged branch versions are incremented; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithPreventIncrementOfMergedBranchVersion(value *bool) *BranchConfigurationBuilder {
	b.staged.preventIncrementOfMergedBranchVersion = clonePtr(value)
	return b
}

// WithLabelNumberPattern sets the pattern used to number pre-release labels; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithLabelNumberPattern(value *string) *BranchConfigurationBuilder {
	b.staged.labelNumberPattern = clonePtr(value)
	return b
}

// WithTrackMergeTarget sets whether merge targets are tracked; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithTrackMergeTarget(value *bool) *BranchConfigurationBuilder {
	b.staged.trackMergeTarget = clonePtr(value)
	return b
}

// WithTrackMergeMessage sets whether merge messages are interpreted; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithTrackMergeMessage(value *bool) *BranchConfigurationBuilder {
	b.staged.trackMergeMessage = clonePtr(value)
	return b
}

// WithCommitMessageIncrementing sets the commit message increment mode; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithCommitMessageIncrementing(value *semver.CommitMessageIncrementMode) *BranchConfigurationBuilder {
	b.staged.commitMessageIncrementing = clonePtr(value)
	return b
}

// WithRegex sets the branch-name pattern; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithRegex(value *string) *BranchConfigurationBuilder {
	b.staged.regex = clonePtr(value)
	return b
}

// WithSourceBranchesSeq stores the distinct names yielded by values.
// A nil seq clears the field.
func (b *BranchConfigurationBuilder) WithSourceBranchesSeq(values iter.Seq[string]) *BranchConfigurationBuilder {
	b.staged.sourceBranches = collectOptionalSet(values)
	return b
}

// WithSourceBranches stores the distinct names given. It always sets the
// field: no names stores the explicit empty set. Use
// WithSourceBranchesSeq(nil) to clear it.
func (b *BranchConfigurationBuilder) WithSourceBranches(values ...string) *BranchConfigurationBuilder {
	return b.WithSourceBranchesSeq(slices.Values(values))
}

// WithIsSourceBranchForSeq stores the distinct names yielded by values.
// A nil seq clears the field.
func (b *BranchConfigurationBuilder) WithIsSourceBranchForSeq(values iter.Seq[string]) *BranchConfigurationBuilder {
	b.staged.isSourceBranchFor = collectOptionalSet(values)
	return b
}

// WithIsSourceBranchFor behaves like WithSourceBranches for the
// is-source-branch-for field.
func (b *BranchConfigurationBuilder) WithIsSourceBranchFor(values ...string) *BranchConfigurationBuilder {
	return b.WithIsSourceBranchForSeq(slices.Values(values))
}

// WithTracksReleaseBranches sets whether release branches are tracked; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithTracksReleaseBranches(value *bool) *BranchConfigurationBuilder {
	b.staged.tracksReleaseBranches = clonePtr(value)
	return b
}

// WithIsReleaseBranch marks the branch as a release branch; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithIsReleaseBranch(value *bool) *BranchConfigurationBuilder {
	b.staged.isReleaseBranch = clonePtr(value)
	return b
}

// WithIsMainline marks the branch as mainline; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithIsMainline(value *bool) *BranchConfigurationBuilder {
	b.staged.isMainline = clonePtr(value)
	return b
}

// WithPreReleaseWeight sets the pre-release weight; nil leaves it unset.
func (b *BranchConfigurationBuilder) WithPreReleaseWeight(value *int) *BranchConfigurationBuilder {
	b.staged.preReleaseWeight = clonePtr(value)
	return b
}

// WithConfiguration overwrites every staged field with the corresponding
// field of value. Fields unset in value become unset here too.
func (b *BranchConfigurationBuilder) WithConfiguration(value BranchConfiguration) *BranchConfigurationBuilder {
	b.WithName(value.name).
		WithVersioningMode(value.versioningMode).
		WithLabel(value.label).
		WithIncrement(value.increment).
		WithPreventIncrementOfMergedBranchVersion(value.preventIncrementOfMergedBranchVersion).
		WithLabelNumberPattern(value.labelNumberPattern).
		WithTrackMergeTarget(value.trackMergeTarget).
		WithTrackMergeMessage(value.trackMergeMessage).
		WithCommitMessageIncrementing(value.commitMessageIncrementing).
		WithRegex(value.regex).
		WithTracksReleaseBranches(value.tracksReleaseBranches).
		WithIsReleaseBranch(value.isReleaseBranch).
		WithIsMainline(value.isMainline).
		WithPreReleaseWeight(value.preReleaseWeight).
		WithSourceBranchesSeq(setSeq(value.sourceBranches)).
		WithIsSourceBranchForSeq(setSeq(value.isSourceBranchFor))
	return b
}

// Build returns a snapshot of the staged fields. The builder is left
// unchanged and may be modified and built again.
func (b *BranchConfigurationBuilder) Build() BranchConfiguration {
	// Setters always replace pointers and never write through them, so a
	// struct copy is detached from later builder changes.
	return b.staged
}

func setSeq(s *BranchSet) iter.Seq[string] {
	if s == nil {
		return nil
	}
	return s.All()
}

func collectOptionalSet(values iter.Seq[string]) *BranchSet {
	if values == nil {
		return nil
	}
	set := CollectBranchSet(values)
	return &set
}
