package validation

import (
	"path/filepath"
	"testing"

	"github.com/opendatatools/odcheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasVersionToken(t *testing.T) {
	tests := map[string]struct {
		filename string
		want     bool
	}{
		"versioned contract":     {filename: "billing-data-v1.0.0.yaml", want: true},
		"no version segment":     {filename: "contract.yaml", want: false},
		"one hyphen only":        {filename: "billing-v1.yaml", want: false},
		"version token no dash":  {filename: "billingdata_v1.0.0.yaml", want: false},
		"many hyphens versioned": {filename: "kg-estg-bestand-v2.1.0.yaml", want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasVersionToken(tt.filename))
		})
	}
}

func TestCheckNaming(t *testing.T) {
	t.Run("clean repository has no issues", func(t *testing.T) {
		root := t.TempDir()
		testutil.WriteFile(t, root, "dataproduct.yaml", testutil.ValidProduct)
		dir := testutil.ContractsDir(t, root, map[string]string{
			"billing-data-v1.0.0.yaml": testutil.ValidContract,
		})

		issues, err := CheckNaming(root, dir)
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("unversioned contract is flagged", func(t *testing.T) {
		root := t.TempDir()
		dir := testutil.ContractsDir(t, root, map[string]string{
			"contract.yaml": testutil.ValidContract,
		})

		issues, err := CheckNaming(root, dir)
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "contract.yaml")
		assert.Contains(t, issues[0], "name-with-dashes-vX.Y.Z.yaml")
	})

	t.Run("uppercase root YAML is flagged", func(t *testing.T) {
		root := t.TempDir()
		testutil.WriteFile(t, root, "DataProduct.yaml", testutil.ValidProduct)

		issues, err := CheckNaming(root, filepath.Join(root, "contracts"))
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "DataProduct.yaml")
		assert.Contains(t, issues[0], "lowercase")
	})

	t.Run("missing contracts dir checks only the root", func(t *testing.T) {
		root := t.TempDir()
		issues, err := CheckNaming(root, filepath.Join(root, "contracts"))
		require.NoError(t, err)
		assert.Empty(t, issues)
	})
}
