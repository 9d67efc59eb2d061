package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/log"
)

// Stage is one step of a build plan. Run returns the number of rows it
// produced.
type Stage struct {
	Name  string
	Needs []string
	Run   func() (int, error)
}

// Plan runs stages so that every stage starts only after all the stages it
// needs have completed.
type Plan struct {
	stages    []*Stage
	byName    map[string]*Stage
	completed map[string]bool
	done      []string
}

func NewPlan() *Plan {
	return &Plan{
		byName:    make(map[string]*Stage),
		completed: make(map[string]bool),
	}
}

// Register adds a stage. Names must be unique.
func (p *Plan) Register(stage Stage) error {
	if stage.Name == "" || stage.Run == nil {
		return errs.InvalidArgument("plan", "stage needs a name and a run function")
	}
	if _, ok := p.byName[stage.Name]; ok {
		return errs.InvalidArgument("plan", "stage %s registered twice", stage.Name)
	}
	s := stage
	p.stages = append(p.stages, &s)
	p.byName[s.Name] = &s
	return nil
}

// Completed reports whether the named stage has finished.
func (p *Plan) Completed(name string) bool {
	return p.completed[name]
}

// CompletedStages lists finished stages in the order they ran.
func (p *Plan) CompletedStages() []string {
	out := make([]string, len(p.done))
	copy(out, p.done)
	return out
}

// RunStage runs a single stage, rejecting it when one of its upstream stages
// has not completed yet.
func (p *Plan) RunStage(name string) error {
	stage, ok := p.byName[name]
	if !ok {
		return errs.InvalidArgument("plan", "unknown stage %s", name)
	}
	if p.completed[name] {
		return errs.InvalidArgument("plan", "stage %s already completed", name)
	}
	for _, need := range stage.Needs {
		if !p.completed[need] {
			return errs.DataIntegrity(name, "upstream stage %s has not completed", need)
		}
	}

	rows, err := stage.Run()
	if err != nil {
		return fmt.Errorf("stage %s: %w", name, err)
	}

	p.completed[name] = true
	p.done = append(p.done, name)

	log.GetLogger().WithFields(logrus.Fields{
		"Stage": name,
		"Rows":  rows,
	}).Debug("stage completed")
	return nil
}

// Order returns a topological order of all stages, one dependency level at a
// time. Within a level, registration order wins.
func (p *Plan) Order() ([]string, error) {
	for _, s := range p.stages {
		for _, need := range s.Needs {
			if _, ok := p.byName[need]; !ok {
				return nil, errs.InvalidArgument("plan", "stage %s needs unknown stage %s", s.Name, need)
			}
		}
	}

	order := make([]string, 0, len(p.stages))
	placed := make(map[string]bool, len(p.stages))
	for len(order) < len(p.stages) {
		var level []string
		for _, s := range p.stages {
			if !placed[s.Name] && p.ready(s, placed) {
				level = append(level, s.Name)
			}
		}
		if len(level) == 0 {
			var stuck []string
			for _, s := range p.stages {
				if !placed[s.Name] {
					stuck = append(stuck, s.Name)
				}
			}
			return nil, errs.InvalidArgument("plan", "dependency cycle between stages %v", stuck)
		}
		for _, name := range level {
			placed[name] = true
		}
		order = append(order, level...)
	}
	return order, nil
}

func (p *Plan) ready(s *Stage, placed map[string]bool) bool {
	for _, need := range s.Needs {
		if !placed[need] {
			return false
		}
	}
	return true
}

// Run executes every stage that has not completed yet, in topological order.
func (p *Plan) Run() error {
	order, err := p.Order()
	if err != nil {
		return err
	}
	for _, name := range order {
		if p.completed[name] {
			continue
		}
		if err := p.RunStage(name); err != nil {
			return err
		}
	}
	return nil
}
