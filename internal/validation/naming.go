package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CheckNaming applies the repository file naming conventions and returns
// the violations found. Naming issues are advisory and never fail a
// validation run.
//
// Rules:
//   - contract files must follow name-with-dashes-vX.Y.Z.yaml: the name
//     contains a "-v" version token and at least two hyphens
//   - YAML files at the repository root must be all-lowercase
func CheckNaming(baseDir, contractsDir string) ([]string, error) {
	var issues []string

	contractFiles, err := filepath.Glob(filepath.Join(contractsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing contract files: %w", err)
	}
	for _, path := range contractFiles {
		name := filepath.Base(path)
		if !hasVersionToken(name) {
			issues = append(issues, fmt.Sprintf("contract file %s should follow 'name-with-dashes-vX.Y.Z.yaml'", name))
		}
	}

	rootFiles, err := filepath.Glob(filepath.Join(baseDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing root YAML files: %w", err)
	}
	for _, path := range rootFiles {
		name := filepath.Base(path)
		if name != strings.ToLower(name) {
			issues = append(issues, fmt.Sprintf("root YAML file %s should be lowercase", name))
		}
	}

	return issues, nil
}

// hasVersionToken reports whether a contract filename carries a version
// segment: a "-v" token and at least two hyphens overall.
func hasVersionToken(name string) bool {
	return strings.Contains(name, "-v") && strings.Count(name, "-") >= 2
}
