//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitKeys(t *testing.T) {
	t.Parallel()
	for name, key := range map[string]string{
		"quit":         KeyQuit,
		"ctrl+c":       KeyCtrlC,
		"dismiss root": KeyEsc,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := Start(t)
			s.Exit(key)
		})
	}
}

func TestConfigFileCreation(t *testing.T) {
	t.Parallel()
	s := Start(t)

	_, err := os.Stat(filepath.Join(s.Home(), ".config", "openprism", "config.toml"))
	require.NoError(t, err, "Default config should be written on first start")

	s.Exit(KeyQuit)
}
