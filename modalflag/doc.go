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

// Package modalflag wraps the flag package in the Go standard library. It
// adds the idea of program modes, each mode with its own flags. The emulator
// uses it for the mode selectors seen on the command line: RUN, DEBUG,
// DISASM, PERFORMANCE, etc.
//
// Usage differs from the flag package in that the argument list is supplied
// up front with NewArgs() and Parse() is called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Splitting the two allows the same Modes instance to parse each mode of a
// command line in turn. Once parsed, non-flag arguments can be retrieved with
// RemainingArgs() or GetArg(). For example, a mode expecting exactly one
// cartridge file:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("cartridge file required")
//	case 1:
//		load(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Flags are added in the manner of the flag package, with the Add functions
// returning a pointer that Parse() fills in:
//
//	bytecode := md.AddBool("bytecode", false, "including instruction bytecode in disassembly")
//
// Modes are registered with AddSubModes(). Comparisons are case insensitive:
//
//	md.AddSubModes("run", "debug", "disasm")
//
// If the first argument after the flags names one of the registered modes,
// Mode() returns it (in upper case) and the arguments that follow it are
// carried over for the next call to Parse(). A mode handler starts a fresh
// round of flag parsing with NewMode():
//
//	md.NewMode()
//	duration := md.AddString("duration", "5s", "run duration")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseError:
//		return err
//	case modalflag.ParseHelp:
//		return nil
//	}
//
// Modes can nest as deeply as required. Each call to Parse() consumes the
// flags and (possibly) a mode selector for the current depth.
package modalflag
