package ui

import "os"

// nfEnabled returns true when Nerd Font icons should be rendered.
// Default to enabled; allow disabling via NERDFONT=0 to avoid tofu on
// systems without a Nerd Font installed.
func nfEnabled() bool {
	return os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

// Icons used across the dashboard
func IconDoc() string    { return nf("", "") }     // fa-file
func IconClock() string  { return nf("", "") }     // fa-clock
func IconBranch() string { return nf("", "br") }   // nf-oct-git_branch
func IconCommit() string { return nf("", "sha") }  // nf-oct-git_commit
func IconSelect() string { return nf("󰒉", "sel") } // nf-md-select
