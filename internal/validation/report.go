package validation

import (
	"github.com/opendatatools/odcheck/internal/contract"
)

// ContractReport is the combined outcome of the schema validation and the
// structure check for one contract file.
type ContractReport struct {
	Path   string
	Err    error // read or parse failure
	Result Result
	// Structure findings; only non-warning findings fail the contract.
	Structure []StructureIssue
}

// Valid reports whether the contract passed the schema validation and the
// structure check.
func (r ContractReport) Valid() bool {
	return r.Err == nil && r.Result.Valid && StructureValid(r.Structure)
}

// CheckContract loads one contract file and runs both the schema
// validation and the structure check on it.
func CheckContract(v *Validator, path string) ContractReport {
	doc, err := contract.Load(path)
	if err != nil {
		return ContractReport{Path: path, Err: err}
	}
	return ContractReport{
		Path:      path,
		Result:    v.Validate(doc),
		Structure: CheckStructure(doc),
	}
}

// CheckContracts runs CheckContract over every contract file under dir.
// One contract's failure does not stop the rest. The aggregate flag is
// true only when every contract passed; an empty directory is vacuously
// valid.
func CheckContracts(v *Validator, dir string) ([]ContractReport, bool, error) {
	files, err := ContractFiles(dir)
	if err != nil {
		return nil, false, err
	}

	reports := make([]ContractReport, 0, len(files))
	allValid := true
	for _, path := range files {
		r := CheckContract(v, path)
		if !r.Valid() {
			allValid = false
		}
		reports = append(reports, r)
	}
	return reports, allValid, nil
}
