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

// Package clocks defines the clocks that drive the two domains of the
// register block and the scheduler that advances simulated time from rising
// edge to rising edge.
//
// The three canonical scenarios reproduce the timing configurations used to
// verify the hardware: a fast bus clock against a slow read-out clock, the
// reverse, and equal frequencies with a phase offset between the two domains.
package clocks

import (
	"fmt"

	"github.com/jetsetilly/apbsim/curated"
)

// Clock describes a single clock: a period and a phase offset, both in
// simulated nanoseconds. The first rising edge occurs one full period after
// the phase offset; simulated time zero is reserved for reset.
type Clock struct {
	Period int64
	Phase  int64
}

func (c Clock) String() string {
	if c.Phase == 0 {
		return fmt.Sprintf("%dns", c.Period)
	}
	return fmt.Sprintf("%dns+%dns", c.Period, c.Phase)
}

// edge returns the time of the n'th rising edge, counting from 1.
func (c Clock) edge(n int64) int64 {
	return c.Phase + n*c.Period
}

// Scenario is one of the canonical timing configurations.
type Scenario int

// List of valid Scenario values.
const (
	// bus clock 10ns, read-out clock 40ns
	FastBus Scenario = iota

	// bus clock 40ns, read-out clock 10ns
	SlowBus

	// both clocks 10ns, read-out clock offset by 3ns
	Equal
)

// ParseScenario converts a scenario name, as it might appear on the command
// line, to a Scenario value.
func ParseScenario(s string) (Scenario, error) {
	switch s {
	case "fastbus", "FASTBUS":
		return FastBus, nil
	case "slowbus", "SLOWBUS":
		return SlowBus, nil
	case "equal", "EQUAL":
		return Equal, nil
	}
	return FastBus, curated.Errorf("clocks: unrecognised scenario (%s)", s)
}

func (s Scenario) String() string {
	switch s {
	case FastBus:
		return "fastbus"
	case SlowBus:
		return "slowbus"
	case Equal:
		return "equal"
	}
	panic("unknown clock scenario")
}

// Clocks returns the bus-domain and read-out-domain clock for the scenario.
func (s Scenario) Clocks() (Clock, Clock) {
	switch s {
	case FastBus:
		return Clock{Period: 10}, Clock{Period: 40}
	case SlowBus:
		return Clock{Period: 40}, Clock{Period: 10}
	case Equal:
		return Clock{Period: 10}, Clock{Period: 10, Phase: 3}
	}
	panic("unknown clock scenario")
}
