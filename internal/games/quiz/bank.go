package quiz

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// Question is one multiple-choice entry of the bank.
type Question struct {
	Text    string   `yaml:"question"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"`
}

type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// ParseBank decodes and validates a question bank.
func ParseBank(data []byte) ([]Question, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("quiz: parse bank: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("quiz: bank is empty")
	}
	for i, q := range f.Questions {
		if len(q.Options) != Options {
			return nil, fmt.Errorf("quiz: question %d has %d options, expected %d", i, len(q.Options), Options)
		}
		if q.Answer < 0 || q.Answer >= Options {
			return nil, fmt.Errorf("quiz: question %d answer %d out of range", i, q.Answer)
		}
	}
	return f.Questions, nil
}

// Bank returns the embedded questions.
var Bank = sync.OnceValue(func() []Question {
	qs, err := ParseBank(questionsYAML)
	if err != nil {
		panic(err)
	}
	return qs
})
