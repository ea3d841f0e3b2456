package slots

// Participant is a named availability list. Free may be unsorted
// and may overlap with itself.
type Participant struct {
	Name string
	Free []Interval
}

func Availabilities(participants []Participant) [][]Interval {
	free := make([][]Interval, 0, len(participants))
	for _, p := range participants {
		free = append(free, p.Free)
	}
	return free
}
