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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/apbsim/curated"
	"github.com/jetsetilly/apbsim/test"
)

const testPattern = "test: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern: %v"))

	// plain errors are not curated errors
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, 10)
	outer := curated.Errorf("outer: %v", inner)

	test.ExpectedSuccess(t, curated.Has(outer, "outer: %v"))
	test.ExpectedSuccess(t, curated.Has(outer, testPattern))
	test.ExpectedFailure(t, curated.Is(outer, testPattern))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("store: %v", "index out of range")
	outer := curated.Errorf("store: %v", inner)

	// the repeated "store" part of the message should appear only once
	test.Equate(t, outer.Error(), "store: index out of range")
}
