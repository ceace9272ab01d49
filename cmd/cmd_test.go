package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"figma-asset-downloader/feature/download"
	"figma-asset-downloader/feature/history"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDestructiveAction(t *testing.T) {
	assert.True(t, confirmDestructiveAction(true, strings.NewReader("")))
	assert.True(t, confirmDestructiveAction(false, strings.NewReader("yes\n")))
	assert.False(t, confirmDestructiveAction(false, strings.NewReader("no\n")))
	assert.False(t, confirmDestructiveAction(false, strings.NewReader("")))
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Contains(t, buf.String(), "No downloads recorded")

	buf.Reset()
	printHistory(&buf, []history.DownloadRecord{
		{Path: "downloads/logo.png", Bytes: 2048, Status: history.StatusDownloaded, CreatedAt: time.Now()},
		{Path: "downloads/icon.png", Status: history.StatusFailed, Error: "timeout", CreatedAt: time.Now()},
	})
	out := buf.String()
	assert.Contains(t, out, "downloads/logo.png")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "timeout")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"download", "validate-manifest", "start", "history"} {
		assert.True(t, names[want], want)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitError, exitCode(errors.New("boom")))
	assert.Equal(t, exitMismatch, exitCode(fmt.Errorf("check: %w", ErrManifestMismatch)))
	assert.Equal(t, exitPartial, exitCode((&download.Summary{Failed: 2}).Err()))
}
