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

// BitSync models a chain of flip-flops clocked by the destination domain,
// carrying a single control bit between clock domains. A hardware chain of
// this kind gives a metastable first flop time to resolve before the value is
// used; in the simulation the effect is that a change on the input is not
// visible at the output until it has been clocked through every stage.
//
// Two stages is the conventional minimum. The depth is configurable because
// fast destination clocks in unfriendly process corners want three or more.
type BitSync struct {
	stages []bool
}

// NewBitSync is the preferred method of initialisation of the BitSync type.
func NewBitSync(depth int) *BitSync {
	if depth < 2 {
		depth = 2
	}
	return &BitSync{
		stages: make([]bool, depth),
	}
}

// Tick is a single rising edge of the destination domain clock: the input
// level is clocked into the first stage and every other stage takes the value
// of its neighbour. Returns the new output of the final stage.
func (b *BitSync) Tick(in bool) bool {
	for i := len(b.stages) - 1; i > 0; i-- {
		b.stages[i] = b.stages[i-1]
	}
	b.stages[0] = in

	return b.stages[len(b.stages)-1]
}

// Output returns the current output of the final stage without clocking the
// chain.
func (b *BitSync) Output() bool {
	return b.stages[len(b.stages)-1]
}

// Reset clears every stage.
func (b *BitSync) Reset() {
	for i := range b.stages {
		b.stages[i] = false
	}
}
