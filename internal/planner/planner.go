package planner

import (
	"github.com/nikmy/freeslots/internal/scenario"
	"github.com/nikmy/freeslots/internal/slots"
	"github.com/nikmy/freeslots/pkg/errors"
	"github.com/nikmy/freeslots/pkg/logger"
)

type reporter interface {
	Report(found []slots.Interval) error
}

func New(log logger.Logger, out reporter) *Planner {
	return &Planner{
		log: log.With("planner"),
		out: out,
	}
}

// Planner resolves a scenario and hands the common slots to a reporter.
type Planner struct {
	log logger.Logger
	out reporter
}

func (p *Planner) Run(s scenario.Scenario) ([]slots.Interval, error) {
	participants, err := s.Availabilities()
	if err != nil {
		return nil, errors.WrapFail(err, "read availabilities")
	}

	p.log.Infof("looking for %d-minute slots shared by %d participants", s.Duration, len(participants))

	found := slots.Trace(s.Duration, slots.Availabilities(participants), func(i int, common []slots.Interval) {
		p.log.Debugf("after %q: %d common intervals", participants[i].Name, len(common))
	})

	p.log.Infof("found %d slots", len(found))

	err = p.out.Report(found)
	if err != nil {
		return nil, errors.WrapFail(err, "report slots")
	}

	return found, nil
}
