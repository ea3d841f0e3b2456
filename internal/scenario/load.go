package scenario

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/freeslots/pkg/errors"
)

//go:embed sample.yaml
var sample []byte

// Sample is the built-in three person scenario used when no file is given.
func Sample() Scenario {
	s, err := Parse(sample)
	if err != nil {
		panic(errors.WrapFail(err, "parse embedded sample"))
	}
	return s
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.WrapFailf(err, "read %q", path)
	}

	s, err := Parse(data)
	if err != nil {
		return Scenario{}, errors.Wrapf(err, "scenario %q", path)
	}
	return s, nil
}

func Parse(data []byte) (Scenario, error) {
	var s Scenario
	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return Scenario{}, errors.WrapFail(err, "parse yaml")
	}

	err = Validate(s)
	if err != nil {
		return Scenario{}, err
	}

	return s, nil
}
