package tools

// Tool identifiers and metadata
type ToolID string

const (
	ToolTmux ToolID = "tmux"
	ToolGit  ToolID = "git"
)

type ToolInfo struct {
	ID          ToolID
	DisplayName string
	Binaries    []string // candidate binary names in PATH
	VersionArgs [][]string
	MinVersion  string // oldest release easel fully supports, empty = any
	Note        string // what easel needs it for
}

// Check results
type CheckResult struct {
	Installed bool
	Version   string
	Source    string // which invocation produced the version
	Err       string
	Outdated  bool // version parsed and below MinVersion
}
