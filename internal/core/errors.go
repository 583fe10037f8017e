package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"multijdk/internal/types"
)

// Message prefixes shared with the CLI's exit code mapping.
const (
	MsgBaseNotSet           = "base version must be set"
	MsgBaseAlreadySet       = "base version already set"
	MsgDuplicateVersion     = "unit already exists for"
	MsgNoToolchain          = "no toolchain for"
	MsgNoInstalledToolchain = "no installed toolchain"
	MsgRegistryFinalized    = "registry already finalized"
	MsgBuilderFinalized     = "builder already finalized"
	MsgAmbiguousVariants    = "ambiguous variants"
)

func orderingError(action string, version types.Version) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s before %s %s", MsgBaseNotSet, action, version.JavaName()))
}

func configurationError(current types.Version, requested types.Version) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s to %s, cannot set %s", MsgBaseAlreadySet, current.JavaName(), requested.JavaName()))
}

func duplicateVersionError(version types.Version) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("%s %s", MsgDuplicateVersion, version.JavaName()))
}

func unsupportedVersionError(version types.Version, cause error) error {
	err := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s %s", MsgNoToolchain, version.JavaName()))
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}

func finalizedError(message string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(message)
}
