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

package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/apbsim/debugger"
	"github.com/jetsetilly/apbsim/hardware"
	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/clocks"
	"github.com/jetsetilly/apbsim/logger"
	"github.com/jetsetilly/apbsim/modalflag"
	"github.com/jetsetilly/apbsim/performance"
	"github.com/jetsetilly/apbsim/script"
	"github.com/jetsetilly/apbsim/statsview"
	"github.com/jetsetilly/apbsim/version"
)

func main() {
	rand.Seed(int64(time.Now().Nanosecond()))

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "SCRIPT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "SCRIPT":
		err = scriptMode(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// defFlags adds the register block parameters to the current mode and returns
// a function that assembles them into a bus.Def once parsing is complete.
func defFlags(md *modalflag.Modes) func() bus.Def {
	d := bus.NewDef()
	width := md.AddInt("width", d.DataWidth, "data width in bits: 32, 64")
	regs := md.AddInt("regs", d.NumRegs, "number of registers")
	base := md.AddUint64("base", uint64(d.BaseAddr), "base address of register 0")
	wait := md.AddInt("wait", d.WaitStates, "wait states per access phase")
	stages := md.AddInt("stages", d.SyncStages, "synchronizer chain depth")

	return func() bus.Def {
		d.DataWidth = *width
		d.NumRegs = *regs
		d.BaseAddr = uint32(*base)
		d.WaitStates = *wait
		d.SyncStages = *stages
		return d
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	def := defFlags(md)
	scenario := md.AddString("scenario", "fastbus", "clock scenario: fastbus, slowbus, equal")
	numTransactions := md.AddInt("n", 100, "number of randomized transactions")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

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
		if !statsview.Available() {
			return fmt.Errorf("the statsview is not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	scn, err := clocks.ParseScenario(*scenario)
	if err != nil {
		return err
	}

	cfg, err := hardware.NewConfigurator(def(), scn)
	if err != nil {
		return err
	}

	// a stress session should stop cleanly on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	interrupted := func() bool {
		select {
		case <-intChan:
			return true
		default:
			return false
		}
	}

	fmt.Printf("%s\n", cfg)

	shadow := make(map[int]uint64)
	errors := 0

	for i := 0; i < *numTransactions; i++ {
		if interrupted() {
			fmt.Printf("\rinterrupted after %d transactions\n", i)
			break
		}

		idx := rand.Intn(cfg.Def.NumRegs)
		addr := cfg.Def.AddrOf(idx)

		if rand.Intn(2) == 0 {
			data := rand.Uint64() & cfg.Def.DataMask()
			slverr, err := cfg.Write(addr, data)
			if err != nil {
				return err
			}
			if slverr {
				return fmt.Errorf("unexpected PSLVERR writing to %#08x", addr)
			}
			shadow[idx] = data
			logger.Logf("run", "write %#08x <- %#016x", addr, data)
		} else {
			data, slverr, err := cfg.Read(addr)
			if err != nil {
				return err
			}
			if slverr {
				return fmt.Errorf("unexpected PSLVERR reading from %#08x", addr)
			}
			if want, ok := shadow[idx]; ok && data != want {
				fmt.Printf("read %#08x: %#016x, want %#016x\n", addr, data, want)
				errors++
			}
			logger.Logf("run", "read %#08x -> %#016x", addr, data)
		}
	}

	// wait for the read-out domain to catch up and check every shadowed
	// register has crossed intact
	cfg.Settle()
	for idx, want := range shadow {
		if v := cfg.RdData(idx); v != want {
			fmt.Printf("rd_data %02d: %#016x, want %#016x\n", idx, v, want)
			errors++
		}
	}

	fmt.Printf("%d transactions, %d registers landed in read-out domain, %d errors\n",
		*numTransactions, len(shadow), errors)

	if errors > 0 {
		return fmt.Errorf("%d mismatches in %s mode", errors, md)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	def := defFlags(md)
	scenario := md.AddString("scenario", "fastbus", "clock scenario: fastbus, slowbus, equal")
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

	scn, err := clocks.ParseScenario(*scenario)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(def(), scn)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func scriptMode(md *modalflag.Modes) error {
	md.NewMode()

	def := defFlags(md)
	scenario := md.AddString("scenario", "fastbus", "clock scenario: fastbus, slowbus, equal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("lua script required for %s mode", md)
	}

	scn, err := clocks.ParseScenario(*scenario)
	if err != nil {
		return err
	}

	cfg, err := hardware.NewConfigurator(def(), scn)
	if err != nil {
		return err
	}

	run := script.NewRunner(cfg, os.Stdout)
	return run.RunFile(md.GetArg(0))
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	def := defFlags(md)
	scenario := md.AddString("scenario", "fastbus", "clock scenario: fastbus, slowbus, equal")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("the statsview is not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	scn, err := clocks.ParseScenario(*scenario)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, def(), scn, *duration, *profile)
}
