package config

import "github.com/MyCarrier-DevOps/go-branchconfig/internal/semver"

// Well-known branch configuration names.
const (
	BranchMain        = "main"
	BranchDevelop     = "develop"
	BranchRelease     = "release"
	BranchFeature     = "feature"
	BranchHotfix      = "hotfix"
	BranchPullRequest = "pull-request"
	BranchSupport     = "support"
	BranchUnknown     = "unknown"
)

// DefaultBranchConfigurations returns the 8 well-known branch configurations:
// main, develop, release, feature, hotfix, pull-request, support and unknown
// (catch-all). They are seeds for WithConfiguration; fields left unset here
// (such as the versioning mode of most branches) are meant to be inherited
// from global defaults by the consumer. Every call returns fresh values.
func DefaultBranchConfigurations() map[string]BranchConfiguration {
	builders := []*BranchConfigurationBuilder{
		defaultMain(),
		defaultDevelop(),
		defaultRelease(),
		defaultFeature(),
		defaultHotfix(),
		defaultPullRequest(),
		defaultSupport(),
		defaultUnknown(),
	}

	result := make(map[string]BranchConfiguration, len(builders))
	for _, b := range builders {
		c := b.Build()
		result[c.Name()] = c
	}
	return result
}

// DefaultBranchConfiguration returns the well-known configuration with the given name.
func DefaultBranchConfiguration(name string) (BranchConfiguration, bool) {
	c, ok := DefaultBranchConfigurations()[name]
	return c, ok
}

func defaultMain() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithName(BranchMain).
		WithRegex(Ptr(`^master$|^main$`)).
		WithIncrement(Ptr(semver.IncrementStrategyPatch)).
		WithLabel(Ptr("")).
		WithIsMainline(Ptr(true)).
		WithIsReleaseBranch(Ptr(false)).
		WithTracksReleaseBranches(Ptr(false)).
		WithPreventIncrementOfMergedBranchVersion(Ptr(true)).
		WithTrackMergeTarget(Ptr(false)).
		WithTrackMergeMessage(Ptr(true)).
		WithSourceBranches(BranchDevelop, BranchRelease).
		WithPreReleaseWeight(Ptr(55000))
}

func defaultDevelop() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithName(BranchDevelop).
		WithRegex(Ptr(`^dev(elop)?(ment)?$`)).
		WithVersioningMode(Ptr(semver.VersioningModeContinuousDeployment)).
		WithIncrement(Ptr(semver.IncrementStrategyMinor)).
		WithLabel(Ptr("alpha")).
		WithIsMainline(Ptr(false)).
		WithIsReleaseBranch(Ptr(false)).
		WithTracksReleaseBranches(Ptr(true)).
		WithPreventIncrementOfMergedBranchVersion(Ptr(false)).
		WithTrackMergeTarget(Ptr(true)).
		WithTrackMergeMessage(Ptr(true)).
		WithSourceBranches([]string{}...).
		WithPreReleaseWeight(Ptr(0))
}

func defaultRelease() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithName(BranchRelease).
		WithRegex(Ptr(`^releases?[/-]`)).
		WithIncrement(Ptr(semver.IncrementStrategyNone)).
		WithLabel(Ptr("beta")).
		WithIsMainline(Ptr(false)).
		WithIsReleaseBranch(Ptr(true)).
		WithTracksReleaseBranches(Ptr(false)).
		WithPreventIncrementOfMergedBranchVersion(Ptr(true)).
		WithTrackMergeTarget(Ptr(false)).
		WithTrackMergeMessage(Ptr(true)).
		WithSourceBranches(BranchDevelop, BranchMain, BranchSupport, BranchRelease).
		WithPreReleaseWeight(Ptr(30000))
}

func defaultFeature() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithName(BranchFeature).
		WithRegex(Ptr(`^features?[/-]`)).
		WithIncrement(Ptr(semver.IncrementStrategyInherit)).
		WithLabel(Ptr("{BranchName}")).
		WithIsMainline(Ptr(false)).
		WithIsReleaseBranch(Ptr(false)).
		WithTracksReleaseBranches(Ptr(false)).
		WithPreventIncrementOfMergedBranchVersion(Ptr(false)).
		WithTrackMergeTarget(Ptr(false)).
		WithTrackMergeMessage(Ptr(true)).
		WithSourceBranches(BranchDevelop, BranchMain, BranchRelease, BranchFeature, BranchSupport, BranchHotfix).
		WithPreReleaseWeight(Ptr(30000))
}

func defaultHotfix() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithName(BranchHotfix).
		WithRegex(Ptr(`^hotfix(es)?[/-]`)).
		WithIncrement(Ptr(semver.IncrementStrategyPatch)).
		WithLabel(Ptr("beta")).
		WithIsMainline(Ptr(false)).
		WithIsReleaseBranch(Ptr(false)).
		WithTracksReleaseBranches(Ptr(false)).
		WithPreventIncrementOfMergedBranchVersion(Ptr(false)).
		WithTrackMergeTarget(Ptr(false)).
		WithTrackMergeMessage(Ptr(true)).
		WithSourceBranches(BranchRelease, BranchMain, BranchSupport, BranchHotfix).
		WithPreReleaseWeight(Ptr(30000))
}

func defaultPullRequest() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithName(BranchPullRequest).
		WithRegex(Ptr(`^(pull|pull-requests|pr)[/-]`)).
		WithIncrement(Ptr(semver.IncrementStrategyInherit)).
		WithLabel(Ptr("PullRequest")).
		WithLabelNumberPattern(Ptr(`[/-](?<number>\d+)`)).
		WithIsMainline(Ptr(false)).
		WithIsReleaseBranch(Ptr(false)).
		WithTracksReleaseBranches(Ptr(false)).
		WithPreventIncrementOfMergedBranchVersion(Ptr(false)).
		WithTrackMergeTarget(Ptr(false)).
		WithTrackMergeMessage(Ptr(true)).
		WithSourceBranches(BranchDevelop, BranchMain, BranchRelease, BranchFeature, BranchSupport, BranchHotfix).
		WithPreReleaseWeight(Ptr(30000))
}

func defaultSupport() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithName(BranchSupport).
		WithRegex(Ptr(`^support[/-]`)).
		WithIncrement(Ptr(semver.IncrementStrategyPatch)).
		WithLabel(Ptr("")).
		WithIsMainline(Ptr(true)).
		WithIsReleaseBranch(Ptr(false)).
		WithTracksReleaseBranches(Ptr(false)).
		WithPreventIncrementOfMergedBranchVersion(Ptr(true)).
		WithTrackMergeTarget(Ptr(false)).
		WithTrackMergeMessage(Ptr(true)).
		WithSourceBranches(BranchMain).
		WithPreReleaseWeight(Ptr(55000))
}

// defaultUnknown is the catch-all; its source branches match feature's.
func defaultUnknown() *BranchConfigurationBuilder {
	return NewBranchConfigurationBuilder().
		WithConfiguration(defaultFeature().Build()).
		WithName(BranchUnknown).
		WithRegex(Ptr(`.*`))
}
