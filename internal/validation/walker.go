package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/opendatatools/odcheck/internal/contract"
)

// FileResult is the outcome of validating one contract file.
type FileResult struct {
	Path   string
	Result Result
	// Err is set when the file could not be read or parsed at all.
	Err error
}

// Valid reports whether the file passed.
func (r FileResult) Valid() bool {
	return r.Err == nil && r.Result.Valid
}

// ContractFiles lists the YAML files directly under dir (non-recursive),
// sorted for stable output. A missing directory is an error; an existing
// but empty directory returns an empty slice.
func ContractFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("contracts directory %s: %w", dir, err)
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("listing contracts in %s: %w", dir, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// ValidateFile loads one document and validates it. Read and parse
// failures are reported in FileResult.Err; schema violations in
// FileResult.Result.
func ValidateFile(v *Validator, path string) FileResult {
	doc, err := contract.Load(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	return FileResult{Path: path, Result: v.Validate(doc)}
}

// ValidateDir validates every contract file under dir independently. One
// file's failure does not stop the rest; the aggregate flag is true only
// when every file passed. An empty directory is vacuously valid.
func ValidateDir(v *Validator, dir string) ([]FileResult, bool, error) {
	files, err := ContractFiles(dir)
	if err != nil {
		return nil, false, err
	}

	results := make([]FileResult, 0, len(files))
	allValid := true
	for _, path := range files {
		r := ValidateFile(v, path)
		if !r.Valid() {
			allValid = false
		}
		results = append(results, r)
	}
	return results, allValid, nil
}
