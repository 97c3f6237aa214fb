//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/rett/pkg/commander"
	"github.com/timburks/rett/pkg/config"
	"github.com/timburks/rett/pkg/editor"
	"github.com/timburks/rett/screen"
)

const usage = "usage: rett [--config file] [--pattern regex] [--eval script] [--debug] [textfile]"

func main() {

	var filename, script, pattern, configPath string
	debug := false

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval", "--pattern", "--config":
			i++
			if i >= len(os.Args) {
				log.Output(1, "No value specified for "+argi+" option")
				log.Output(1, usage)
				os.Exit(2)
			}
			switch argi {
			case "--eval": // eval program
				script = os.Args[i]
			case "--pattern":
				pattern = os.Args[i]
			case "--config":
				configPath = os.Args[i]
			}
		case "--debug":
			debug = true
		case "-h", "--help":
			fmt.Println(usage)
			return
		default:
			// If a file was specified on the command line, read it into the text panel.
			filename = argi
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The editor holds the pattern, the text and the matches.
	e := editor.NewEditor()

	// The commander converts user inputs into edits.
	c := commander.NewCommander(e)
	c.SetDebug(debug)

	if filename != "" {
		b, err := os.ReadFile(filename)
		if err != nil {
			log.Fatalf("%v", err)
		}
		e.SetText(string(b))
	}
	if pattern != "" {
		e.SetPattern(pattern)
	}
	e.SetFocus(cfg.InitialFocus())

	if script != "" {
		// Run a rett script, print its value and exit.
		value, err := c.ParseEvalFile(script)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(value)
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalf("rett needs a terminal; use --eval to run a script")
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Output(1, err.Error())
		return
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
		if debug {
			log.Output(1, c.GetMessage())
		}
	}
}
