/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package version

import (
	"fmt"
	"runtime"
)

var (
	projectName = "authority"
	major       = 1
	minor       = 0
	patch       = 0

	gitTag    = "Not provided"
	buildTime = "Not provided"
)

// GetVersion returns the version string.
func GetVersion() string {
	return fmt.Sprintf("%s-%d.%d.%d", projectName, major, minor, patch)
}

// GetFullVersion returns the version with build and platform info.
func GetFullVersion() string {
	return fmt.Sprintf("%s-%d.%d.%d (%s, %s, %s/%s)", projectName, major, minor, patch,
		gitTag, buildTime, runtime.GOOS, runtime.GOARCH)
}
