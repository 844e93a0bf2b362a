package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func testTree() *cobra.Command {
	root := &cobra.Command{Use: "riskdash"}
	findings := &cobra.Command{
		Use:     "findings",
		Short:   "List findings",
		Example: "  riskdash findings --risk high",
		Run:     func(cmd *cobra.Command, args []string) {},
	}
	findings.Flags().String("risk", "all", "Filter by risk level")
	root.AddCommand(findings)
	root.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Show metrics",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	return root
}

func TestBuildModel(t *testing.T) {
	m := BuildModel(testTree())
	if len(m.Commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(m.Commands))
	}
	// Sorted by path.
	if m.Commands[0].Path != "riskdash findings" {
		t.Errorf("first command = %q", m.Commands[0].Path)
	}
	if !strings.Contains(m.Commands[0].Flags, "--risk") {
		t.Errorf("findings flags missing --risk: %q", m.Commands[0].Flags)
	}
}

func TestRenderTopicFilter(t *testing.T) {
	m := BuildModel(testTree())

	var buf bytes.Buffer
	m.Render(&buf, "summary")
	out := buf.String()
	if !strings.Contains(out, "riskdash summary") {
		t.Errorf("summary topic missing from output:\n%s", out)
	}
	if strings.Contains(out, "riskdash findings") {
		t.Errorf("findings topic should be filtered out:\n%s", out)
	}

	buf.Reset()
	m.Render(&buf, "no-such-topic")
	if !strings.Contains(buf.String(), "No help topics matched") {
		t.Errorf("expected no-match message, got:\n%s", buf.String())
	}
}
