package tools

// Tools lists the external programs easel leans on. tmux 3.2 introduced the
// select-pane -T title escape used when spawning viewers; older releases
// still work but panes show their default titles.
var Tools = []ToolInfo{
	{
		ID:          ToolTmux,
		DisplayName: "tmux",
		Binaries:    []string{"tmux"},
		VersionArgs: [][]string{{"-V"}},
		MinVersion:  "3.2",
		Note:        "pane splitting and titles",
	},
	{
		ID:          ToolGit,
		DisplayName: "git",
		Binaries:    []string{"git"},
		VersionArgs: [][]string{{"--version"}},
		Note:        "repository info in the dashboard status bar",
	},
}
