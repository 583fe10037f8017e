package policies

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/types"
)

// ElementsScope maps an outgoing elements bucket to the Maven scope its
// variant is published under.
func ElementsScope(bucket string) (types.MavenScope, error) {
	switch bucket {
	case types.BucketAPIElements:
		return types.MavenScopeCompile, nil
	case types.BucketRuntimeElements, types.BucketSourcesElements, types.BucketJavadocElements:
		return types.MavenScopeRuntime, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("bucket %s is not published", bucket))
	}
}

// VariantName names a unit's published view of an elements bucket:
// apiElements + 17 -> apiElementsJava17.
func VariantName(bucket string, version types.Version) string {
	return fmt.Sprintf("%sJava%d", bucket, version.Int())
}

// SuppressedWarnings lists the POM metadata warnings acknowledged for a
// unit. The POM can only describe one variant set, so every per-version
// variant trips the validator.
func SuppressedWarnings(version types.Version) []string {
	return []string{
		VariantName(types.BucketAPIElements, version),
		fmt.Sprintf("apiElementsClassesJava%d", version.Int()),
		VariantName(types.BucketRuntimeElements, version),
	}
}
