package types

type AttributeType string

const (
	AttributeTypeString AttributeType = "string"
	AttributeTypeInt    AttributeType = "int"
	AttributeTypeBool   AttributeType = "bool"
)

// TargetJvmVersionAttribute discriminates otherwise identical variants
// built for different JVM levels.
const TargetJvmVersionAttribute = "org.gradle.jvm.version"

type AttributeValue struct {
	Type  AttributeType `yaml:"type" json:"type"`
	Value string        `yaml:"value" json:"value"`
}

type Attributes map[string]AttributeValue

func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}
