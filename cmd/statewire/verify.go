// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/bureau-foundation/statewire/lib/content"
	"github.com/bureau-foundation/statewire/lib/event"
)

// dumpStats summarizes one verification run over a dump stream.
type dumpStats struct {
	// Lines is the number of non-blank lines seen.
	Lines int

	// Valid is the number of lines that decoded as well-formed state
	// events with registered content schemas.
	Valid int

	// Failed is the number of lines rejected, with the first few
	// failures retained for reporting.
	Failed int

	// ByType counts valid events per discriminator.
	ByType map[string]int
}

// maxReportedFailures bounds how many per-line failures are logged
// before the rest are only counted. Dumps can be millions of lines;
// the first failures are what the operator acts on.
const maxReportedFailures = 20

// runVerifyDump opens the dump file (decompressing if it ends in
// .zst) and verifies every line. Returns 0 when every line is valid.
func runVerifyDump(logger *slog.Logger, path string) int {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".zst") {
		decoder, err := zstd.NewReader(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: opening zstd stream: %v\n", err)
			return 2
		}
		defer decoder.Close()
		reader = decoder
	}

	start := time.Now()
	stats, err := verifyDump(logger, reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	logger.Info("dump verified",
		"path", path,
		"lines", stats.Lines,
		"valid", stats.Valid,
		"failed", stats.Failed,
		"elapsed", time.Since(start))
	for eventType, count := range stats.ByType {
		logger.Info("event type seen", "type", eventType, "count", count)
	}

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// verifyDump decodes every non-blank line of a newline-delimited event
// stream. Per-line failures are logged and counted, not fatal: a dump
// with one bad line still gets a full report. Only a read error on the
// underlying stream aborts the run.
func verifyDump(logger *slog.Logger, reader io.Reader) (*dumpStats, error) {
	stats := &dumpStats{ByType: map[string]int{}}

	scanner := bufio.NewScanner(reader)
	// Events with large payloads exceed bufio's 64KiB default.
	scanner.Buffer(make([]byte, 0, 1<<20), 16<<20)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		stats.Lines++

		decoded, err := event.Decode[content.Any](line, content.FromParts)
		if err != nil {
			stats.Failed++
			if stats.Failed <= maxReportedFailures {
				logger.Warn("invalid event in dump", "line", lineNumber, "error", err)
			}
			continue
		}
		stats.Valid++
		stats.ByType[string(decoded.Content.EventType())]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}
	return stats, nil
}
