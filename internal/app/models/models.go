package models

// Department is the organisational unit a teacher works in
type Department string

// The accepted department values
const (
	DepartmentScience     Department = "Science"
	DepartmentManagement  Department = "Management"
	DepartmentEngineering Department = "Engineering"
)

// ValidDepartments lists every accepted department value, in the order they
// appear in validation messages.
var ValidDepartments = []Department{
	DepartmentScience,
	DepartmentManagement,
	DepartmentEngineering,
}

// IsValid reports whether the department is one of the accepted values.
// Matching is case-sensitive.
func (d Department) IsValid() bool {
	for _, valid := range ValidDepartments {
		if d == valid {
			return true
		}
	}
	return false
}
