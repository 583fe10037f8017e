package core

import (
	"strconv"

	"multijdk/internal/types"
)

type AttributePropagator struct{}

func NewAttributePropagator() AttributePropagator {
	return AttributePropagator{}
}

// Propagate copies every attribute of template onto target, keeping each
// declared type, then sets attr to value. Running it twice with the same
// arguments leaves the same attribute set.
func (p AttributePropagator) Propagate(template types.Attributes, target *types.Configuration, attr string, value types.AttributeValue) {
	if target == nil {
		return
	}
	if target.Attributes == nil {
		target.Attributes = types.Attributes{}
	}
	for key, templateValue := range template {
		target.Attributes[key] = templateValue
	}
	target.Attributes[attr] = value
}

// VersionAttribute is the discriminating attribute value for a unit.
func VersionAttribute(version types.Version) types.AttributeValue {
	return types.AttributeValue{
		Type:  types.AttributeTypeInt,
		Value: strconv.Itoa(version.Int()),
	}
}
