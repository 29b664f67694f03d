// Package seed loads a fleet fixture from YAML and applies it through the
// same command handlers the HTTP API uses.
//
// A fixture looks like this:
//
//	missions: [Mars, Luna]
//	rockets: [Dragon 1, Dragon 2, Dragon 3]
//	assignments:
//	  Luna: [Dragon 1, Dragon 2]
//	  Mars: [Dragon 3]
//	statuses:
//	  Dragon 2: IN_REPAIR
//	finished: [Mars]
//
// Sections are applied in the order shown. Mappings keep the order written in
// the file.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the decoded content of a seed file.
type Fixture struct {
	Missions    []string      `yaml:"missions"`
	Rockets     []string      `yaml:"rockets"`
	Assignments Assignments   `yaml:"assignments"`
	Statuses    StatusChanges `yaml:"statuses"`
	Finished    []string      `yaml:"finished"`
}

// Assignment lists the rockets to attach to one mission.
type Assignment struct {
	Mission string
	Rockets []string
}

// Assignments is a mission to rockets mapping in file order.
type Assignments []Assignment

// UnmarshalYAML decodes a mapping node without losing key order.
func (a *Assignments) UnmarshalYAML(node *yaml.Node) error {
	return decodeOrdered(node, "assignments", func(key string, value *yaml.Node) error {
		var rockets []string
		if err := value.Decode(&rockets); err != nil {
			return err
		}
		*a = append(*a, Assignment{Mission: key, Rockets: rockets})
		return nil
	})
}

// StatusChange moves one rocket to Status, a code such as IN_REPAIR.
type StatusChange struct {
	Rocket string
	Status string
}

// StatusChanges is a rocket to status mapping in file order.
type StatusChanges []StatusChange

// UnmarshalYAML decodes a mapping node without losing key order.
func (s *StatusChanges) UnmarshalYAML(node *yaml.Node) error {
	return decodeOrdered(node, "statuses", func(key string, value *yaml.Node) error {
		var status string
		if err := value.Decode(&status); err != nil {
			return err
		}
		*s = append(*s, StatusChange{Rocket: key, Status: status})
		return nil
	})
}

func decodeOrdered(node *yaml.Node, section string, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", node.Line, section)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: %s key: %w", node.Content[i].Line, section, err)
		}
		if err := fn(key, node.Content[i+1]); err != nil {
			return fmt.Errorf("line %d: %s %q: %w", node.Content[i+1].Line, section, key, err)
		}
	}
	return nil
}

// Parse decodes a fixture. Unknown top-level keys are rejected.
func Parse(r io.Reader) (Fixture, error) {
	var f Fixture
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return f, nil
}

// ParseFile reads and decodes the fixture at path.
func ParseFile(path string) (Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("open fixture: %w", err)
	}
	defer file.Close()
	return Parse(file)
}
