package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestParseEnvBool(t *testing.T) {
	cases := []struct {
		value string
		want  bool
		set   bool
		err   bool
	}{
		{"1", true, true, false},
		{"yes", true, true, false},
		{"on", true, true, false},
		{"0", false, true, false},
		{"off", false, true, false},
		{"False", false, true, false},
		{"", false, false, false},
		{"   ", false, false, false},
		{"banana", false, false, true},
	}
	for _, c := range cases {
		t.Setenv("SRTED_TEST_BOOL", c.value)
		got, set, err := parseEnvBool("SRTED_TEST_BOOL")
		if c.err {
			if err == nil {
				t.Fatalf("%q: expected error", c.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", c.value, err)
		}
		if got != c.want || set != c.set {
			t.Fatalf("%q: got (%v, %v), want (%v, %v)", c.value, got, set, c.want, c.set)
		}
	}
}

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().String("workdir", "", "")
	cmd.Flags().Duration("by", 0, "")
	return cmd
}

func TestResolveBoolFlagFromEnv_FlagWins(t *testing.T) {
	cmd := newTestCmd()
	if err := cmd.Flags().Set("dry-run", "false"); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SRTED_TEST_DRY", "true")
	if err := resolveBoolFlagFromEnv(cmd, "dry-run", "SRTED_TEST_DRY"); err != nil {
		t.Fatal(err)
	}
	v, _ := cmd.Flags().GetBool("dry-run")
	if v {
		t.Fatalf("explicit flag must win over env")
	}
}

func TestResolveBoolFlagFromEnv_EnvApplies(t *testing.T) {
	cmd := newTestCmd()
	t.Setenv("SRTED_TEST_DRY", "true")
	if err := resolveBoolFlagFromEnv(cmd, "dry-run", "SRTED_TEST_DRY"); err != nil {
		t.Fatal(err)
	}
	v, _ := cmd.Flags().GetBool("dry-run")
	if !v {
		t.Fatalf("env value should apply when the flag is unset")
	}
}

func TestResolveStringFlagFromEnv(t *testing.T) {
	cmd := newTestCmd()
	t.Setenv("SRTED_TEST_WORKDIR", "/some/dir")
	if err := resolveStringFlagFromEnv(cmd, "workdir", "SRTED_TEST_WORKDIR"); err != nil {
		t.Fatal(err)
	}
	v, _ := cmd.Flags().GetString("workdir")
	if v != "/some/dir" {
		t.Fatalf("got %q", v)
	}
}

func TestResolveDurationFlagFromEnv(t *testing.T) {
	cmd := newTestCmd()
	t.Setenv("SRTED_TEST_BY", "1.5s")
	if err := resolveDurationFlagFromEnv(cmd, "by", "SRTED_TEST_BY"); err != nil {
		t.Fatal(err)
	}
	d, _ := cmd.Flags().GetDuration("by")
	if d.Milliseconds() != 1500 {
		t.Fatalf("got %v", d)
	}

	t.Setenv("SRTED_TEST_BY", "not-a-duration")
	cmd = newTestCmd()
	if err := resolveDurationFlagFromEnv(cmd, "by", "SRTED_TEST_BY"); err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}
