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

// Package performance contains helper functions relating to the performance
// of the emulator.
//
// The Check() function runs the emulation for a fixed duration and reports
// the effective clock speed as an absolute value and as a percentage of the
// speed of the real machine.
//
// RunProfiler() can be used to generate the various profile types. On its
// own it is useful for profiling the headless emulation, and it is also
// called by Check() when a profile type has been requested.
package performance
