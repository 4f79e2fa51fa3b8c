package cmd

import "testing"

func TestSplitMigrateArgsZcashdTakesOutputFromSoleArg(t *testing.T) {
	input, output := splitMigrateArgs(fromZcashd, []string{"out.json"})
	if input != "" {
		t.Fatalf("expected empty input for --from zcashd, got %q", input)
	}
	if output != "out.json" {
		t.Fatalf("expected output out.json, got %q", output)
	}
}

func TestSplitMigrateArgsZewifDefaultsOutputToStdout(t *testing.T) {
	input, output := splitMigrateArgs(fromZewif, []string{"in.json"})
	if input != "in.json" || output != "-" {
		t.Fatalf("expected (in.json, -), got (%q, %q)", input, output)
	}
}

func TestSplitMigrateArgsZewifTwoArgs(t *testing.T) {
	input, output := splitMigrateArgs(fromZewif, []string{"in.json", "out.json"})
	if input != "in.json" || output != "out.json" {
		t.Fatalf("expected (in.json, out.json), got (%q, %q)", input, output)
	}
}

func TestResolvePasswordPrefersFlag(t *testing.T) {
	migrateFlags.password = "flag-password"
	t.Cleanup(func() { migrateFlags.password = "" })
	if got := resolvePassword(); got != "flag-password" {
		t.Fatalf("expected flag-password, got %q", got)
	}
}
