package scenario

import (
	"github.com/nikmy/freeslots/internal/slots"
	"github.com/nikmy/freeslots/pkg/builder"
	"github.com/nikmy/freeslots/pkg/errors"
)

// Availabilities converts every participant into parsed intervals.
// All malformed pairs are reported together.
func (s Scenario) Availabilities() ([]slots.Participant, error) {
	participants := make([]slots.Participant, 0, len(s.Participants))
	var errs []error

	for _, raw := range s.Participants {
		p, err := participant(raw)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "participant %q", raw.Name))
			continue
		}

		participants = append(participants, *p)
	}

	if len(errs) > 0 {
		return nil, errors.Collapse(errs)
	}

	return participants, nil
}

func participant(raw Participant) (*slots.Participant, error) {
	b := builder.New[slots.Participant]().
		Use(func(p *slots.Participant) {
			p.Name = raw.Name
			p.Free = make([]slots.Interval, 0, len(raw.Free))
		})

	for _, pair := range raw.Free {
		b.MaybeUse(func(p *slots.Participant) error {
			if len(pair) != 2 {
				return errors.Wrapf(slots.ErrInvalidInterval, "pair %v", pair)
			}

			free, err := slots.FromClock(pair[0], pair[1])
			if err != nil {
				return err
			}

			p.Free = append(p.Free, free)
			return nil
		})
	}

	return b.Get()
}
