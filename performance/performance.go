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

package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/apbsim/hardware"
	"github.com/jetsetilly/apbsim/hardware/bus"
	"github.com/jetsetilly/apbsim/hardware/clocks"
)

// how often the run loop checks the timer, in simulated edges. checking on
// every edge costs more than the simulation itself.
const checkInterval = 10000

// Check the performance of the simulation over the given wall-clock
// duration. A fresh Configurator is created for the run and a random-ish bus
// load is applied so the protocol FSM and the synchronizer are both
// exercised, not just the scheduler.
func Check(output io.Writer, def bus.Def, scenario clocks.Scenario, duration string, profile bool) error {
	cfg, err := hardware.NewConfigurator(def, scenario)
	if err != nil {
		return err
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// expired is set from the timer goroutine and polled by the run loop
	var expired int32

	runner := func() error {
		time.AfterFunc(dur, func() {
			atomic.StoreInt32(&expired, 1)
		})

		var count int
		addr := def.BaseAddr

		for atomic.LoadInt32(&expired) == 0 {
			for i := 0; i < checkInterval; i++ {
				// a rolling write load across the register window, with the
				// occasional out-of-range address for the error path
				if _, err := cfg.Write(addr, uint64(count)); err != nil {
					return err
				}
				addr = nextAddr(def, addr)
			}
			count++
		}

		return nil
	}

	startTime := time.Now()
	err = profileCPU(profile, "performance_cpu.profile", runner)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime).Seconds()

	err = profileMem(profile, "performance_mem.profile")
	if err != nil {
		return err
	}

	busEdges := cfg.Sched.BusEdges()
	readoutEdges := cfg.Sched.ReadoutEdges()

	fmt.Fprintf(output, "%d bus edges, %d read-out edges in %.2fs\n", busEdges, readoutEdges, elapsed)
	fmt.Fprintf(output, "%.0f edges/sec, %.2fms of simulated time\n",
		float64(busEdges+readoutEdges)/elapsed,
		float64(cfg.Sched.Now())/1e6,
	)

	return nil
}

// nextAddr advances the rolling write load to the next register address,
// wrapping to the base of the register window. the roll includes one address
// beyond the window so the error path is exercised on every pass.
func nextAddr(def bus.Def, addr uint32) uint32 {
	addr += uint32(def.WidthBytes())
	if addr > def.BaseAddr+uint32(def.NumRegs*def.WidthBytes()) {
		return def.BaseAddr
	}
	return addr
}
