package bcbioconf

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrList is a field that bcbio accepts either as a single scalar or as
// a sequence, e.g. `variantcaller: gatk` and `variantcaller: [gatk, vardict]`
// are both valid. It always unmarshals to the list form.
type StringOrList []string

func (s *StringOrList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringOrList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = StringOrList(many)
		return nil
	}

	return fmt.Errorf("expected a string or a list of strings, got a %s", kindName(value.Kind))
}

func (s StringOrList) MarshalYAML() (interface{}, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}

	return "unknown node"
}
