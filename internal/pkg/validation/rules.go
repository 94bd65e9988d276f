package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Course name pattern - starts with a letter, then letters, digits and
	// spaces only
	CourseNamePattern = `^[A-Za-z][A-Za-z0-9 ]*$`

	// Course name min/max length
	CourseNameMinLength = 3
	CourseNameMaxLength = 50

	// Course duration lower bound (exclusive)
	CourseDurationMin = 1.0
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseName *regexp.Regexp
}{
	CourseName: regexp.MustCompile(CourseNamePattern),
}

// ValidCourseName reports whether a course name satisfies both the length
// bounds and the character pattern. Length is counted in bytes, matching the
// column definition.
func ValidCourseName(name string) bool {
	if len(name) < CourseNameMinLength || len(name) > CourseNameMaxLength {
		return false
	}
	return CompiledPatterns.CourseName.MatchString(name)
}

// ValidCourseDuration reports whether a course duration is strictly greater
// than the minimum. A duration of exactly 1 is rejected.
func ValidCourseDuration(duration float64) bool {
	return duration > CourseDurationMin
}
