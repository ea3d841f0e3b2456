package scenario

// Scenario is a meeting request: how long the meeting is and when
// each participant is free.
type Scenario struct {
	Duration     int           `yaml:"duration" validate:"gt=0"`
	Participants []Participant `yaml:"participants" validate:"dive"`
}

type Participant struct {
	Name string `yaml:"name" validate:"required"`

	// Free holds ["HH:MM", "HH:MM"] pairs.
	Free [][]string `yaml:"free" validate:"min=1,dive,len=2"`
}
