package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProvider marks transport or protocol failures from a registry or
	// catalog provider. Isolated to the recording being processed.
	ErrProvider = errors.New("provider failure")
	// ErrMalformed marks records missing fields required for matching.
	ErrMalformed = errors.New("malformed record")
	// ErrConfiguration marks invalid configuration; fatal at initialization.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransient marks failures worth retrying at a higher level.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error must abort the run rather than degrade a
// single recording. Only configuration errors are fatal.
func Fatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
