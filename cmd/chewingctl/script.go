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

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	chewing "github.com/chewing-go/core"
)

// parseScript reads one keystroke per line out of a replay script.
// Most lines are a single ASCII character, fed through the bopomofo
// layout. A line may instead name a control key directly, e.g.
// "enter", "esc", "backspace", "space", "tab", "arrow:left",
// "ctrlnum:3". Blank lines and lines starting with '#' are skipped.
func parseScript(data []byte) ([]chewing.Event, error) {
	var events []chewing.Event
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := parseScriptLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseScriptLine(line string) (chewing.Event, error) {
	if len(line) == 1 {
		return chewing.Bopomofo(line[0]), nil
	}

	name, arg, hasArg := strings.Cut(line, ":")
	switch name {
	case "enter":
		return chewing.Enter(), nil
	case "esc":
		return chewing.Esc(), nil
	case "del":
		return chewing.Del(), nil
	case "backspace":
		return chewing.Backspace(), nil
	case "home":
		return chewing.Home(), nil
	case "end":
		return chewing.End(), nil
	case "space":
		return chewing.Space(), nil
	case "tab":
		return chewing.Tab(), nil
	case "shifttab":
		return chewing.ShiftTab(), nil
	case "pageup":
		return chewing.PageUp(), nil
	case "pagedown":
		return chewing.PageDown(), nil
	case "shiftleft":
		return chewing.ShiftLeft(), nil
	case "shiftright":
		return chewing.ShiftRight(), nil
	case "capslock":
		return chewing.Capslock(), nil
	case "shiftspace":
		return chewing.ShiftSpace(), nil
	case "arrow":
		switch arg {
		case "left":
			return chewing.Arrow(chewing.ArrowLeft), nil
		case "right":
			return chewing.Arrow(chewing.ArrowRight), nil
		default:
			return chewing.Event{}, fmt.Errorf("unknown arrow direction %q", arg)
		}
	case "ctrlnum":
		if !hasArg {
			return chewing.Event{}, fmt.Errorf("ctrlnum requires a digit argument")
		}
		digit, err := strconv.Atoi(arg)
		if err != nil {
			return chewing.Event{}, fmt.Errorf("ctrlnum argument: %w", err)
		}
		return chewing.CtrlNum(digit), nil
	case "numpad":
		if !hasArg || len(arg) != 1 {
			return chewing.Event{}, fmt.Errorf("numpad requires a single digit argument")
		}
		return chewing.Numpad(arg[0]), nil
	case "default":
		if !hasArg || len(arg) != 1 {
			return chewing.Event{}, fmt.Errorf("default requires a single character argument")
		}
		return chewing.Default(arg[0]), nil
	default:
		return chewing.Event{}, fmt.Errorf("unknown keyword %q", name)
	}
}
