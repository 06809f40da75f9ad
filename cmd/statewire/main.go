// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// statewire validates and inspects Matrix state events.
//
// Single-event mode (default): reads one state event from a file (or
// stdin with "-"), decodes it against the registered content schemas,
// and reports the result. Input may be JSON or JSONC — // comments,
// /* block comments */, and trailing commas are stripped before
// parsing. --expect-type fails validation when the decoded event's
// discriminator differs. Output flags select what is printed for a
// valid event: --canonical for the canonical JSON form, --hash for the
// SHA-256 reference hash, --cbor-snapshot to write the archival CBOR
// record, --cbor-diag to print that record in CBOR diagnostic
// notation.
//
// Dump mode (--verify-dump): reads a newline-delimited stream of state
// events (optionally zstd-compressed, detected by the .zst extension)
// and validates every line, reporting per-line failures and summary
// counts. Exit code 1 when any line fails.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/statewire/lib/canonical"
	"github.com/bureau-foundation/statewire/lib/codec"
	"github.com/bureau-foundation/statewire/lib/content"
	"github.com/bureau-foundation/statewire/lib/event"
	"github.com/bureau-foundation/statewire/lib/ref"
	"github.com/bureau-foundation/statewire/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		printCanonical bool
		printHash      bool
		snapshotPath   string
		printDiag      bool
		expectType     string
		dumpPath       string
		logLevel       string
	)

	flagSet := pflag.NewFlagSet("statewire", pflag.ContinueOnError)
	flagSet.BoolVar(&printCanonical, "canonical", false, "print the canonical JSON form of the event")
	flagSet.BoolVar(&printHash, "hash", false, "print the hex SHA-256 reference hash of the event")
	flagSet.StringVar(&snapshotPath, "cbor-snapshot", "", "write the event's CBOR snapshot record to this file")
	flagSet.BoolVar(&printDiag, "cbor-diag", false, "print the CBOR snapshot in diagnostic notation")
	flagSet.StringVar(&expectType, "expect-type", "", "fail unless the decoded event has this type (e.g. m.room.member)")
	flagSet.StringVar(&dumpPath, "verify-dump", "", "validate every event in a newline-delimited dump file (.zst supported)")
	flagSet.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	// Handle --version before flag parsing to match other Bureau binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("statewire")
		return 0
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	logger := newLogger(logLevel)

	if dumpPath != "" {
		if flagSet.NArg() != 0 {
			fmt.Fprintln(os.Stderr, "error: --verify-dump takes no positional arguments")
			return 2
		}
		return runVerifyDump(logger, dumpPath)
	}

	if flagSet.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: statewire [flags] FILE   (use - for stdin)")
		flagSet.PrintDefaults()
		return 2
	}

	return runInspect(logger, flagSet.Arg(0), inspectOptions{
		printCanonical: printCanonical,
		printHash:      printHash,
		snapshotPath:   snapshotPath,
		printDiag:      printDiag,
		expectType:     ref.EventType(expectType),
	})
}

// newLogger builds the process logger. Log output goes to stderr so
// stdout stays clean for --canonical and --hash output.
func newLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel}))
}

type inspectOptions struct {
	printCanonical bool
	printHash      bool
	snapshotPath   string
	printDiag      bool
	expectType     ref.EventType
}

// runInspect decodes one state event and prints whatever the output
// flags ask for. Returns 0 for a valid event, 1 for an invalid one,
// 2 for I/O problems.
func runInspect(logger *slog.Logger, path string, options inspectOptions) int {
	data, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	// Strip comments and trailing commas before parsing as standard JSON.
	wire := jsonc.ToJSON(data)

	start := time.Now()
	decoded, err := event.Decode[content.Any](wire, content.FromParts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid state event: %v\n", err)
		return 1
	}
	logger.Debug("event decoded",
		"event_id", decoded.EventID.String(),
		"type", string(decoded.Content.EventType()),
		"elapsed", time.Since(start))

	if options.expectType != "" && decoded.Content.EventType() != options.expectType {
		fmt.Fprintf(os.Stderr, "event type %q does not match expected %q\n",
			decoded.Content.EventType(), options.expectType)
		return 1
	}

	logger.Info("valid state event",
		"event_id", decoded.EventID.String(),
		"room_id", decoded.RoomID.String(),
		"type", string(decoded.Content.EventType()),
		"state_key", decoded.StateKey,
		"sender", decoded.Sender.String())

	if options.printCanonical {
		canonicalJSON, err := canonical.JSON(wire)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		fmt.Println(string(canonicalJSON))
	}

	if options.printHash {
		hash, err := canonical.ReferenceHash(wire)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		fmt.Println(hex.EncodeToString(hash[:]))
	}

	if options.snapshotPath != "" || options.printDiag {
		snapshot, err := buildSnapshot(wire, decoded)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		encoded, err := codec.Marshal(snapshot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: encoding snapshot: %v\n", err)
			return 2
		}
		if options.snapshotPath != "" {
			if err := os.WriteFile(options.snapshotPath, encoded, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "error: writing snapshot: %v\n", err)
				return 2
			}
			logger.Info("snapshot written", "path", options.snapshotPath, "bytes", len(encoded))
		}
		if options.printDiag {
			diag, err := codec.Diagnose(encoded)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return 2
			}
			fmt.Println(diag)
		}
	}

	return 0
}

// buildSnapshot assembles the archival record for a decoded event.
func buildSnapshot(wire []byte, decoded *event.StateEvent[content.Any]) (*codec.EventSnapshot, error) {
	millis, err := event.EncodeTimestamp(decoded.OriginServerTS)
	if err != nil {
		return nil, err
	}
	return codec.BuildSnapshot(wire,
		decoded.EventID,
		decoded.RoomID,
		decoded.Content.EventType(),
		decoded.StateKey,
		decoded.Sender,
		millis)
}

// readInput loads the event bytes from a file, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
