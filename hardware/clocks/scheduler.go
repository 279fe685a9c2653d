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

package clocks

import "fmt"

// Scheduler advances simulated time across the two unsynchronized clock
// domains, one rising edge at a time. Each domain is a single-threaded tick
// loop; the scheduler only decides whose turn it is.
type Scheduler struct {
	bus     Clock
	readout Clock

	// number of edges delivered so far per clock
	busN     int64
	readoutN int64

	// current simulated time in nanoseconds
	now int64
}

// NewScheduler is the preferred method of initialisation of the Scheduler
// type.
func NewScheduler(bus Clock, readout Clock) *Scheduler {
	return &Scheduler{
		bus:     bus,
		readout: readout,
	}
}

func (sch *Scheduler) String() string {
	return fmt.Sprintf("t=%dns bus=%s (%d edges) readout=%s (%d edges)",
		sch.now, sch.bus, sch.busN, sch.readout, sch.readoutN,
	)
}

// Now returns the current simulated time in nanoseconds.
func (sch *Scheduler) Now() int64 {
	return sch.now
}

// BusEdges returns the number of bus-domain rising edges delivered so far.
func (sch *Scheduler) BusEdges() int64 {
	return sch.busN
}

// ReadoutEdges returns the number of read-out-domain rising edges delivered
// so far.
func (sch *Scheduler) ReadoutEdges() int64 {
	return sch.readoutN
}

// Next advances simulated time to the next rising edge and reports which
// domains own it. Both return values are true when edges coincide; the
// convention throughout the simulation is that the bus domain ticks first on
// a coincident edge.
func (sch *Scheduler) Next() (busEdge bool, readoutEdge bool) {
	tb := sch.bus.edge(sch.busN + 1)
	tr := sch.readout.edge(sch.readoutN + 1)

	switch {
	case tb < tr:
		sch.now = tb
		sch.busN++
		return true, false
	case tr < tb:
		sch.now = tr
		sch.readoutN++
		return false, true
	}

	// coincident edge
	sch.now = tb
	sch.busN++
	sch.readoutN++
	return true, true
}
