/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package version

var banner = `
 _______ _     _ _______ _     _  _____   ______ _____ _______ __   __
 |_____| |     |    |    |_____| |     | |_____/   |      |      \_/
 |     | |_____|    |    |     | |_____| |    \_ __|__    |       |
`

// GetBanner returns the startup banner.
func GetBanner() string {
	return banner
}
