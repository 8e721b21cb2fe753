// Example program demonstrating the branchconfig library API.
//
// Run from the repo root:
//
//	go run ./example/
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/MyCarrier-DevOps/go-branchconfig/pkg/branchconfig"
)

func main() {
	defaults := branchconfig.Defaults()

	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("=== Well-known branches ===")
	for _, name := range names {
		fmt.Println(defaults[name])
	}

	fmt.Println()
	fmt.Println("=== Seeded from release ===")
	fmt.Println(staging(defaults))
}

// staging derives a release-like branch that tracks main only and
// inherits its label from the global configuration.
func staging(defaults map[string]branchconfig.Configuration) branchconfig.Configuration {
	release, ok := defaults[branchconfig.BranchRelease]
	if !ok {
		log.Fatalf("missing %s configuration", branchconfig.BranchRelease)
	}

	return branchconfig.NewBuilderFrom(release).
		WithName("staging").
		WithRegex(branchconfig.Ptr(`^staging$`)).
		WithLabel(nil).
		WithSourceBranches(branchconfig.BranchMain).
		Build()
}
