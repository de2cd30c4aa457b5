package validation

import (
	"fmt"
	"strings"

	"github.com/opendatatools/odcheck/internal/contract"
)

// StructureIssue is one finding from the contract structure check.
type StructureIssue struct {
	Message string
	// Warning issues do not fail the contract.
	Warning bool
}

// requiredSections are the top-level keys every ODCS contract must carry,
// independent of which schema revision it validates against.
var requiredSections = []string{"dataContractSpecification", "id", "info"}

// CheckStructure applies the basic ODCS contract structure rules: the
// required top-level sections must be present, and info.version should
// follow the vX.Y.Z convention (a warning when it does not).
func CheckStructure(doc contract.Document) []StructureIssue {
	var issues []StructureIssue

	for _, section := range requiredSections {
		if _, ok := doc[section]; !ok {
			issues = append(issues, StructureIssue{
				Message: fmt.Sprintf("missing required section %q", section),
			})
		}
	}

	if info, ok := doc["info"].(map[string]interface{}); ok {
		if rawVersion, ok := info["version"]; ok {
			version, isString := rawVersion.(string)
			if !isString || !strings.HasPrefix(version, "v") {
				issues = append(issues, StructureIssue{
					Message: "info.version should follow the 'vX.Y.Z' format",
					Warning: true,
				})
			}
		}
	}

	return issues
}

// StructureValid reports whether the issues contain any non-warning finding.
func StructureValid(issues []StructureIssue) bool {
	for _, issue := range issues {
		if !issue.Warning {
			return false
		}
	}
	return true
}
