package plan

import (
	"iter"

	"fmtgen/primitive"
)

// kindProduct yields every kind tuple of slots, first slot varying
// slowest. Each yielded slice is fresh. No slots yields one empty tuple.
func kindProduct(slots []Slot) iter.Seq[[]primitive.KindEnum] {
	return func(yield func([]primitive.KindEnum) bool) {
		for _, s := range slots {
			if len(s.Kinds) == 0 {
				return
			}
		}

		pos := make([]int, len(slots))

		for {
			tuple := make([]primitive.KindEnum, len(slots))
			for i, s := range slots {
				tuple[i] = s.Kinds[pos[i]]
			}

			if !yield(tuple) {
				return
			}

			// advance the odometer from the last slot
			i := len(slots) - 1
			for ; i >= 0; i-- {
				pos[i]++
				if pos[i] < len(slots[i].Kinds) {
					break
				}

				pos[i] = 0
			}

			if i < 0 {
				return
			}
		}
	}
}
