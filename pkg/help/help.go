// Package help builds the "how to use" page from the live command tree, so
// the help center can never drift from the commands that actually exist.
package help

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

type Model struct {
	Commands []Command `json:"commands"`
}

type Command struct {
	Path    string `json:"path"`
	Use     string `json:"use"`
	Short   string `json:"short"`
	Long    string `json:"long,omitempty"`
	Example string `json:"example,omitempty"`
	Flags   string `json:"flags,omitempty"`
}

// BuildModel walks the command tree and collects one topic per command.
func BuildModel(root *cobra.Command) Model {
	if root == nil {
		return Model{}
	}
	var cmds []Command
	visit(root, func(cmd *cobra.Command) {
		cmds = append(cmds, Command{
			Path:    cmd.CommandPath(),
			Use:     cmd.UseLine(),
			Short:   strings.TrimSpace(cmd.Short),
			Long:    strings.TrimSpace(cmd.Long),
			Example: strings.TrimSpace(cmd.Example),
			Flags:   strings.TrimRight(cmd.LocalFlags().FlagUsages(), "\n"),
		})
	})
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Path < cmds[j].Path
	})
	return Model{Commands: cmds}
}

func visit(root *cobra.Command, fn func(*cobra.Command)) {
	for _, cmd := range root.Commands() {
		if cmd == nil {
			continue
		}
		if cmd.Name() == "help" {
			continue
		}
		if !cmd.IsAvailableCommand() {
			continue
		}
		fn(cmd)
		visit(cmd, fn)
	}
}

// Render writes the help-center page. When topic is non-empty only matching
// commands are shown.
func (m Model) Render(w io.Writer, topic string) {
	matched := false
	for _, c := range m.Commands {
		if topic != "" && !strings.Contains(strings.ToLower(c.Path), strings.ToLower(topic)) {
			continue
		}
		matched = true
		fmt.Fprintf(w, "## %s\n", c.Path)
		if c.Short != "" {
			fmt.Fprintf(w, "%s\n", c.Short)
		}
		fmt.Fprintf(w, "\nUsage:\n  %s\n", c.Use)
		if c.Flags != "" {
			fmt.Fprintf(w, "\nFlags:\n%s\n", c.Flags)
		}
		if c.Example != "" {
			fmt.Fprintf(w, "\nExample:\n%s\n", c.Example)
		}
		fmt.Fprintln(w)
	}
	if !matched {
		fmt.Fprintf(w, "No help topics matched %q.\n", topic)
	}
}
