package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoTestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if os.Getenv("MOCK_TEST_OUTCOME") == "fail" {
		fmt.Println("--- FAIL: TestPartOne")
		os.Exit(1)
	}
	defer os.Exit(0)
	fmt.Println("ok  \taoc/solutions/08\t0.01s")
}

func TestTestCommand(t *testing.T) {
	setupWorkspace(t)

	var got []string
	outcome := "pass"
	old := testExecCommand
	testExecCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		got = append([]string{name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestGoTestHelperProcess", "--")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "MOCK_TEST_OUTCOME="+outcome)
		return cmd
	}
	defer func() { testExecCommand = old }()

	out, err := executeCommand(rootCmd, "test", "8", "--run", "PartOne")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "test", "./solutions/08", "-run", "PartOne"}, got)
	assert.Contains(t, out, "ok")

	outcome = "fail"
	out, err = executeCommand(rootCmd, "test", "8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tests for day 08 failed")
	assert.Contains(t, out, "FAIL: TestPartOne")
	assert.Equal(t, []string{"go", "test", "./solutions/08"}, got)
}
