package slots

// FindCommon returns the intervals during which every participant is free
// and which last at least minutes. The result keeps the order in which the
// pairwise reduction produces slots and is not sorted.
func FindCommon(minutes int, participants [][]Interval) []Interval {
	return filterCovering(reduce(participants, nil), minutes)
}

func FindCommonFor(minutes int, participants []Participant) []Interval {
	return FindCommon(minutes, Availabilities(participants))
}

// Step reports the common set right after a participant was folded in.
type Step func(participant int, common []Interval)

// reduce folds participants into their common intervals. Every slot of the
// common set is intersected with every interval of the next participant;
// once the common set becomes empty the remaining participants are skipped.
func reduce(participants [][]Interval, onStep Step) []Interval {
	if len(participants) == 0 {
		return nil
	}

	common := participants[0]
	if onStep != nil {
		onStep(0, common)
	}

	for i := 1; i < len(participants); i++ {
		next := make([]Interval, 0, len(common))
		for _, slot := range common {
			for _, free := range participants[i] {
				if overlap, ok := slot.Intersect(free); ok {
					next = append(next, overlap)
				}
			}
		}

		common = next
		if onStep != nil {
			onStep(i, common)
		}

		if len(common) == 0 {
			break
		}
	}

	return common
}

// Trace is FindCommon with a callback invoked after every reduction step.
func Trace(minutes int, participants [][]Interval, onStep Step) []Interval {
	return filterCovering(reduce(participants, onStep), minutes)
}

// filterCovering also drops empty slots, which only a zero Interval{}
// passed in by the caller can produce.
func filterCovering(common []Interval, minutes int) []Interval {
	result := make([]Interval, 0, len(common))
	for _, slot := range common {
		if slot.Duration() > 0 && slot.CoversDuration(minutes) {
			result = append(result, slot)
		}
	}
	return result
}
