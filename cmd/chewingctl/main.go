// Copyright 2026 The Chewing-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command chewingctl is a thin ambient harness around the chewing
// engine core: it replays a keystroke script against a dictionary and
// user store, dumps a user store's learned entries, or prints a
// template engine configuration. It is not part of the engine's public
// API surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	chewing "github.com/chewing-go/core"
	"github.com/chewing-go/core/cnf"
	"github.com/chewing-go/core/userphrase/factory"
)

var (
	version   string
	gitCommit string
)

func main() {
	flag.Usage = func() {
		fmt.Println("\n+-----------------------------------------------------------+")
		fmt.Println("| chewingctl - a replay and inspection harness for the       |")
		fmt.Println("|              chewing-go phonetic input method engine core  |")
		fmt.Printf("|                       version %-10s                   |\n", version)
		fmt.Println("+-----------------------------------------------------------+")
		fmt.Println("\nUsage:")
		fmt.Println("chewingctl replay dict.dat userdir script.txt\n\t(replay a keystroke script against a session and print the result)")
		fmt.Println("chewingctl dump-user-phrases userdir\n\t(list every entry a user store has learned)")
		fmt.Println("chewingctl template-conf\n\t(print a default engine configuration to stdout)")
		fmt.Println("chewingctl version\n\tshow version information")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	switch flag.Arg(0) {
	case "replay":
		replayCommand := flag.NewFlagSet("replay", flag.ExitOnError)
		replayCommand.Usage = func() { fmt.Println("Usage: chewingctl replay dict.dat userdir script.txt") }
		if err := replayCommand.Parse(flag.Args()[1:]); err != nil {
			os.Exit(2)
		}
		if replayCommand.NArg() != 3 {
			replayCommand.Usage()
			os.Exit(2)
		}
		if err := runReplay(replayCommand.Arg(0), replayCommand.Arg(1), replayCommand.Arg(2)); err != nil {
			fmt.Fprintln(os.Stderr, "FATAL:", err)
			os.Exit(1)
		}
	case "dump-user-phrases":
		dumpCommand := flag.NewFlagSet("dump-user-phrases", flag.ExitOnError)
		dumpCommand.Usage = func() { fmt.Println("Usage: chewingctl dump-user-phrases userdir") }
		if err := dumpCommand.Parse(flag.Args()[1:]); err != nil {
			os.Exit(2)
		}
		if dumpCommand.NArg() != 1 {
			dumpCommand.Usage()
			os.Exit(2)
		}
		runDumpUserPhrases(dumpCommand.Arg(0))
	case "template-conf":
		runTemplateConf()
	case "version":
		fmt.Printf("chewingctl %s\nlast commit: %s\n", version, gitCommit)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
}

func runReplay(dictPath, userPath, scriptPath string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	sess, err := chewing.New(dictPath, userPath, logger)
	if err != nil {
		return fmt.Errorf("chewingctl: opening session: %w", err)
	}
	defer func() {
		if err := sess.Delete(); err != nil {
			logger.Error().Err(err).Msg("chewingctl: closing session")
		}
	}()
	sess.SetLayoutMapper(demoLayout{})

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("chewingctl: reading script: %w", err)
	}
	events, err := parseScript(script)
	if err != nil {
		return fmt.Errorf("chewingctl: parsing script: %w", err)
	}

	for i, ev := range events {
		class := sess.HandleKey(ev)
		fmt.Printf("%3d: %-16v -> %s\n", i, ev, class)
	}
	fmt.Println("committed:", sess.PeekCommitBuffer())

	snap, err := sess.DebugSnapshot()
	if err != nil {
		return fmt.Errorf("chewingctl: building debug snapshot: %w", err)
	}
	fmt.Println(string(snap))
	return nil
}

func runDumpUserPhrases(userPath string) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	store := factory.New(cnf.UserStoreConf{}, userPath)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("chewingctl: closing user store")
		}
	}()
	for e := range store.Enumerate() {
		fmt.Printf("%-20s seq=%v time=%d user=%d max=%d orig=%d\n",
			e.Phrase, e.Seq, e.Time, e.UserFreq, e.MaxFreq, e.OrigFreq)
	}
}

func runTemplateConf() {
	conf := cnf.EngineConf{
		SystemDictPath:       "dict.dat",
		UserPhrasePath:       "uhash.dat",
		CandPerPage:          cnf.DfltCandPerPage,
		MaxChiSymbolLen:      cnf.DfltMaxChiSymbolLen,
		AutoLearn:            true,
		PhraseChoiceRearward: false,
		AddPhraseForward:     true,
	}
	b, err := conf.Dump()
	if err != nil {
		fmt.Fprintln(os.Stderr, "FATAL: marshaling template config:", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
