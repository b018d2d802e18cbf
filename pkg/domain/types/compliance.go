package types

import "fmt"

// Compliance is the evaluation result of a CLA criterion
type Compliance string

const (
	ComplianceYes Compliance = "Sí"
	ComplianceNo  Compliance = "No"
	ComplianceNA  Compliance = "N/A"
)

// AllCompliances returns all valid compliance values
func AllCompliances() []Compliance {
	return []Compliance{
		ComplianceYes,
		ComplianceNo,
		ComplianceNA,
	}
}

// IsValid checks if the compliance value is valid
func (c Compliance) IsValid() bool {
	switch c {
	case ComplianceYes,
		ComplianceNo,
		ComplianceNA:
		return true
	default:
		return false
	}
}

// String returns the string representation of the compliance value
func (c Compliance) String() string {
	return string(c)
}

// ParseCompliance parses a string into a Compliance value
func ParseCompliance(s string) (Compliance, error) {
	c := Compliance(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid compliance value: %s", s)
	}
	return c, nil
}
