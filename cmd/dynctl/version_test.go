package main

import (
	"strings"
	"testing"
)

func TestVersion_SharedWithRootFlag(t *testing.T) {
	if rootCmd.Version != versionString() {
		t.Fatalf("rootCmd.Version = %q, want %q", rootCmd.Version, versionString())
	}
}

func TestVersionCommand(t *testing.T) {
	resetGlobals()

	output, err := captureOutput(t, func() error {
		return versionCmd.RunE(versionCmd, nil)
	})
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got, want := strings.TrimSpace(output), "dynctl "+versionString(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	resetGlobals()
	t.Cleanup(resetGlobals)
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return versionCmd.RunE(versionCmd, nil)
	})
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	var info VersionInfo
	decodeJSON(t, output, &info)
	if info.Version != version || info.Commit != commit || info.Built != date {
		t.Errorf("unexpected version info: %+v", info)
	}
}
