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

package cdc

// ResetSync synchronizes the external active-low reset line into one clock
// domain: assertion is asynchronous and takes effect immediately, release is
// synchronous and only observed after the deasserted level has clocked
// through the chain. Each domain owns one ResetSync so the two domains leave
// reset independently, each aligned to its own clock.
//
// A ResetSync starts in the asserted state. Power-on and reset look the same
// from inside a domain.
type ResetSync struct {
	stages []bool
}

// NewResetSync is the preferred method of initialisation of the ResetSync
// type.
func NewResetSync(depth int) *ResetSync {
	if depth < 2 {
		depth = 2
	}
	rs := &ResetSync{
		stages: make([]bool, depth),
	}
	rs.Assert()
	return rs
}

// Assert the reset asynchronously: every stage is forced to the asserted
// level, without waiting for a clock edge.
func (rs *ResetSync) Assert() {
	for i := range rs.stages {
		rs.stages[i] = true
	}
}

// Tick is a single rising edge of the domain clock. The external reset level
// (true meaning asserted) is sampled and the synchronized, domain-local reset
// level is returned. The domain should treat a true return as "still in
// reset" and perform a clearing tick.
func (rs *ResetSync) Tick(asserted bool) bool {
	if asserted {
		rs.Assert()
		return true
	}

	for i := len(rs.stages) - 1; i > 0; i-- {
		rs.stages[i] = rs.stages[i-1]
	}
	rs.stages[0] = false

	return rs.stages[len(rs.stages)-1]
}
