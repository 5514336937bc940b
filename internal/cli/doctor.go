package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"easel/internal/config"
	"easel/internal/mux"
	"easel/internal/tools"
)

type doctorItem struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Detail  string `json:"detail,omitempty"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
}

type doctorReport struct {
	Items    []doctorItem `json:"items"`
	Errors   int          `json:"errors"`
	Warnings int          `json:"warnings"`
}

var doctorJSON bool

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output JSON report")
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the environment easel runs in",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := doctorReport{}
		add := func(it doctorItem) {
			if it.Error != "" {
				rep.Errors++
			}
			if it.Warning != "" {
				rep.Warnings++
			}
			rep.Items = append(rep.Items, it)
		}

		for _, t := range tools.Tools {
			res := tools.CheckTool(t)
			it := doctorItem{Name: string(t.ID), OK: res.Installed}
			switch {
			case !res.Installed:
				it.Error = fmt.Sprintf("%s (%s)", res.Err, t.Note)
			case res.Outdated:
				it.Detail = res.Version
				it.Warning = fmt.Sprintf("below %s, %s may not work", t.MinVersion, t.Note)
			default:
				it.Detail = res.Version
			}
			// git is optional: degrade a missing binary to a warning
			if t.ID == tools.ToolGit && it.Error != "" {
				it.Warning, it.Error = it.Error, ""
			}
			add(it)
		}

		if os.Getenv("TMUX") != "" {
			add(doctorItem{Name: "session", OK: true, Detail: "inside tmux"})
		} else {
			add(doctorItem{Name: "session", OK: true, Detail: "outside tmux", Warning: "panes open in the configured session, not the current window"})
		}

		term := os.Getenv("TERM")
		it := doctorItem{Name: "terminal", OK: term != "", Detail: term}
		if term == "" {
			it.Error = "TERM is not set"
		}
		add(it)

		if regPath, err := config.RegistryPath(); err == nil {
			reg := mux.Registry{Path: regPath}
			entries, lerr := reg.Load()
			it := doctorItem{Name: "registry", OK: lerr == nil, Detail: fmt.Sprintf("%d pane(s) at %s", len(entries), regPath)}
			if lerr != nil {
				it.Error = lerr.Error()
			}
			add(it)
		}

		if doctorJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			for _, it := range rep.Items {
				switch {
				case it.Error != "":
					fmt.Printf("ERR  %-10s %s\n", it.Name, it.Error)
				case it.Warning != "":
					fmt.Printf("WARN %-10s %s  (%s)\n", it.Name, it.Detail, it.Warning)
				default:
					fmt.Printf("OK   %-10s %s\n", it.Name, it.Detail)
				}
			}
			fmt.Printf("\nSummary: %d check(s), %d error(s), %d warning(s)\n", len(rep.Items), rep.Errors, rep.Warnings)
		}

		if rep.Errors > 0 {
			return fmt.Errorf("doctor found %d error(s)", rep.Errors)
		}
		return nil
	},
}
