// This file is part of ApbSim.
//
// ApbSim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ApbSim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ApbSim.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/apbsim/curated"
	"github.com/jetsetilly/apbsim/hardware"
	"github.com/jetsetilly/apbsim/logger"

	lua "github.com/yuin/gopher-lua"
)

// Runner executes Lua testbenches against a Configurator.
type Runner struct {
	cfg    *hardware.Configurator
	output io.Writer

	// number of failed check() calls in the most recent run
	failures int
}

// NewRunner is the preferred method of initialisation of the Runner type.
//
// The functions registered with the Lua state:
//
//	regaddr(idx)        byte address of register idx
//	write(addr, data)   write transaction. returns the PSLVERR flag
//	read(addr)          read transaction. returns data and the PSLVERR flag
//	tick(n)             advance n rising edges (of either clock)
//	settle()            run until in-flight crossings have drained
//	reset()             pulse the external reset line
//	rddata(idx)         read-out domain snapshot of register idx
//	rdready()           read-out domain ready bitmask
//	readymask()         bus domain ready bitmask
//	check(cond, msg)    record a test failure if cond is false
//	log(msg)            add msg to the application log
func NewRunner(cfg *hardware.Configurator, output io.Writer) *Runner {
	return &Runner{
		cfg:    cfg,
		output: output,
	}
}

// Failures returns the number of failed check() calls in the most recent
// run.
func (run *Runner) Failures() int {
	return run.failures
}

// RunFile executes the Lua testbench in the named file.
func (run *Runner) RunFile(filename string) error {
	run.failures = 0

	L := lua.NewState()
	defer L.Close()
	run.register(L)

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}

	return run.result(filename)
}

// RunString executes source as a Lua testbench.
func (run *Runner) RunString(source string) error {
	run.failures = 0

	L := lua.NewState()
	defer L.Close()
	run.register(L)

	if err := L.DoString(source); err != nil {
		return curated.Errorf("script: %v", err)
	}

	return run.result("script")
}

func (run *Runner) result(name string) error {
	if run.failures > 0 {
		return curated.Errorf("script: %v: %d check(s) failed", name, run.failures)
	}
	fmt.Fprintf(run.output, "%s: ok\n", name)
	return nil
}

// register the testbench functions with the Lua state.
func (run *Runner) register(L *lua.LState) {
	L.SetGlobal("regaddr", L.NewFunction(run.luaRegAddr))
	L.SetGlobal("write", L.NewFunction(run.luaWrite))
	L.SetGlobal("read", L.NewFunction(run.luaRead))
	L.SetGlobal("tick", L.NewFunction(run.luaTick))
	L.SetGlobal("settle", L.NewFunction(run.luaSettle))
	L.SetGlobal("reset", L.NewFunction(run.luaReset))
	L.SetGlobal("rddata", L.NewFunction(run.luaRdData))
	L.SetGlobal("rdready", L.NewFunction(run.luaRdReady))
	L.SetGlobal("readymask", L.NewFunction(run.luaReadyMask))
	L.SetGlobal("check", L.NewFunction(run.luaCheck))
	L.SetGlobal("log", L.NewFunction(run.luaLog))
}

// a register value from the Lua stack. numbers are fine up to 32 bits; hex
// strings are exact at any width.
func luaUint64(L *lua.LState, pos int) uint64 {
	switch v := L.Get(pos).(type) {
	case lua.LNumber:
		return uint64(v)
	case lua.LString:
		s := strings.TrimPrefix(strings.ToLower(string(v)), "0x")
		u, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			L.ArgError(pos, fmt.Sprintf("not a hex string (%s)", v))
			return 0
		}
		return u
	}
	L.ArgError(pos, "expected number or hex string")
	return 0
}

// push a register value to the Lua stack, matching the representation rules
// of luaUint64.
func pushUint64(L *lua.LState, v uint64) {
	if v <= 0xffffffff {
		L.Push(lua.LNumber(v))
		return
	}
	L.Push(lua.LString(fmt.Sprintf("0x%x", v)))
}

func (run *Runner) luaRegAddr(L *lua.LState) int {
	idx := L.CheckInt(1)
	L.Push(lua.LNumber(run.cfg.Def.AddrOf(idx)))
	return 1
}

func (run *Runner) luaWrite(L *lua.LState) int {
	addr := uint32(L.CheckNumber(1))
	data := luaUint64(L, 2)

	slverr, err := run.cfg.Write(addr, data)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}

	L.Push(lua.LBool(slverr))
	return 1
}

func (run *Runner) luaRead(L *lua.LState) int {
	addr := uint32(L.CheckNumber(1))

	data, slverr, err := run.cfg.Read(addr)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}

	pushUint64(L, data)
	L.Push(lua.LBool(slverr))
	return 2
}

func (run *Runner) luaTick(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		run.cfg.Step()
	}
	return 0
}

func (run *Runner) luaSettle(L *lua.LState) int {
	run.cfg.Settle()
	return 0
}

func (run *Runner) luaReset(L *lua.LState) int {
	run.cfg.Reset()
	return 0
}

func (run *Runner) luaRdData(L *lua.LState) int {
	idx := L.CheckInt(1)
	pushUint64(L, run.cfg.RdData(idx))
	return 1
}

func (run *Runner) luaRdReady(L *lua.LState) int {
	pushUint64(L, run.cfg.RdReady())
	return 1
}

func (run *Runner) luaReadyMask(L *lua.LState) int {
	pushUint64(L, run.cfg.Regs.ReadyMask())
	return 1
}

func (run *Runner) luaCheck(L *lua.LState) int {
	cond := L.ToBool(1)
	msg := L.OptString(2, "check failed")

	if !cond {
		run.failures++
		fmt.Fprintf(run.output, "FAIL: %s\n", msg)
	}
	return 0
}

func (run *Runner) luaLog(L *lua.LState) int {
	logger.Log("script", L.CheckString(1))
	return 0
}
