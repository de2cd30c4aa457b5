// Package testutil provides fixture documents and filesystem helpers for
// odcheck tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ValidContract is an ODCS contract that passes the bundled v3.0 schema
// and the structure check.
const ValidContract = `dataContractSpecification: "3.0.0"
id: billing-data
info:
  title: Billing Data
  version: v1.0.0
  description: Monthly billing records
  owner: billing-team
status: active
tags:
  - billing
  - finance
terms:
  usage: Internal reporting only
  noticePeriodDays: 30
`

// InvalidContract is missing the required id field.
const InvalidContract = `dataContractSpecification: "3.0.0"
info:
  title: Broken Contract
  version: v0.1.0
`

// ValidProduct is an ODPS document that passes the bundled v4.0 schema.
const ValidProduct = `schema: https://opendataproducts.org/v4.0/schema/odps.yaml
version: "4.0"
product:
  productID: billing-001
  name: Billing Data Product
  description: Billing records for analytics
  visibility: organisation
  status: production
  type: dataset
  tags:
    - billing
`

// WriteFile writes content under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ContractsDir creates a contracts directory under root populated with the
// given name -> content files.
func ContractsDir(t *testing.T, root string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, "contracts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating contracts dir: %v", err)
	}
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
	return dir
}
