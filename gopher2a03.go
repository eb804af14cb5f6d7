// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/krbrs/gopher2a03/cartridgeloader"
	"github.com/krbrs/gopher2a03/debugger"
	"github.com/krbrs/gopher2a03/debugger/terminal"
	"github.com/krbrs/gopher2a03/debugger/terminal/colorterm"
	"github.com/krbrs/gopher2a03/debugger/terminal/plainterm"
	"github.com/krbrs/gopher2a03/disassembly"
	"github.com/krbrs/gopher2a03/hardware"
	"github.com/krbrs/gopher2a03/logger"
	"github.com/krbrs/gopher2a03/modalflag"
	"github.com/krbrs/gopher2a03/performance"
	"github.com/krbrs/gopher2a03/statsview"
	"github.com/krbrs/gopher2a03/version"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		vers, revision, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vers, revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// loadPRG loads the program named in the remaining (non flag) arguments.
func loadPRG(md *modalflag.Modes) ([]uint8, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program ROM required for %s mode", md)
	case 1:
		cl := cartridgeloader.NewLoader(md.GetArg(0))
		err := cl.Load()
		if err != nil {
			return nil, err
		}
		return cl.Data, nil
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	prg, err := loadPRG(md)
	if err != nil {
		return err
	}

	nes := hardware.NewNES()
	err = nes.AttachPRG(prg)
	if err != nil {
		return err
	}

	// run until the CPU hits a KIL opcode. the emulation is headless so
	// there is nothing else to stop for
	err = nes.Run(func() (bool, error) {
		return !nes.CPU.Killed, nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("emulation halted after %d cycles\n", nes.TotalCycles())
	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prg, err := loadPRG(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	dbg, err := debugger.NewDebugger(term, prg)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	decoded := md.AddBool("decoded", false, "include entries not reachable from the reset address")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prg, err := loadPRG(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(prg)
	if err != nil {
		return err
	}

	return dsm.Write(os.Stdout, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Decoded:  *decoded,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, ALL or NONE")
	duration := md.AddString("duration", "5s", "run duration")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prg, err := loadPRG(md)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prof, prg, *duration)
}
