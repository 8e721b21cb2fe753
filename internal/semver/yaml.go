package semver

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements yaml.Unmarshaler for VersioningMode.
func (m *VersioningMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseVersioningMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for VersioningMode.
func (m VersioningMode) MarshalYAML() (any, error) {
	return marshalName(m)
}

// UnmarshalYAML implements yaml.Unmarshaler for IncrementStrategy.
func (s *IncrementStrategy) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseIncrementStrategy(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for IncrementStrategy.
func (s IncrementStrategy) MarshalYAML() (any, error) {
	return marshalName(s)
}

// UnmarshalYAML implements yaml.Unmarshaler for CommitMessageIncrementMode.
func (m *CommitMessageIncrementMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCommitMessageIncrementMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for CommitMessageIncrementMode.
func (m CommitMessageIncrementMode) MarshalYAML() (any, error) {
	return marshalName(m)
}

// marshalName refuses out-of-range values so they never round-trip as "Unknown".
func marshalName(v fmt.Stringer) (any, error) {
	name := v.String()
	if name == "Unknown" {
		return nil, fmt.Errorf("cannot marshal %T value %d", v, v)
	}
	return name, nil
}
