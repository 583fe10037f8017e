package types

import (
	"fmt"
	"strconv"
)

// Version is a JVM language level such as 8, 11 or 17.
type Version int

func (v Version) Int() int {
	return int(v)
}

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// JavaName is the unit and classifier name for the version, e.g. "java17".
func (v Version) JavaName() string {
	return fmt.Sprintf("java%d", int(v))
}

// FullJavaVersion is the compiler-facing level: "1.8" up to 8, "17" after.
func (v Version) FullJavaVersion() string {
	if v <= 8 {
		return fmt.Sprintf("1.%d", int(v))
	}
	return v.String()
}
