package cli

import (
	"fmt"
	"io"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/validation"
)

// printResult reports one document's validation outcome.
func printResult(out io.Writer, colors *shared.Colors, path string, r validation.Result) {
	if r.Valid {
		fmt.Fprintf(out, "%s %s is valid\n", colors.Green(shared.MarkPass), path)
		return
	}
	fmt.Fprintf(out, "%s %s failed validation:\n", colors.Red(shared.MarkFail), path)
	fmt.Fprintf(out, "    %s\n", r.Message)
	if len(r.Path) > 0 {
		fmt.Fprintf(out, "    at: %s\n", validation.FormatPath(r.Path))
	}
}

// printContractReport reports one contract's combined schema and structure outcome.
func printContractReport(out io.Writer, colors *shared.Colors, r validation.ContractReport) {
	if r.Err != nil {
		fmt.Fprintf(out, "%s %s could not be checked: %v\n", colors.Red(shared.MarkFail), r.Path, r.Err)
		return
	}
	printResult(out, colors, r.Path, r.Result)
	for _, issue := range r.Structure {
		if issue.Warning {
			fmt.Fprintf(out, "  %s %s\n", colors.Yellow(shared.MarkWarn), issue.Message)
		} else {
			fmt.Fprintf(out, "  %s %s\n", colors.Red(shared.MarkFail), issue.Message)
		}
	}
}

// printNamingIssues reports naming-convention findings. These are advisory.
func printNamingIssues(out io.Writer, colors *shared.Colors, issues []string) {
	if len(issues) == 0 {
		fmt.Fprintf(out, "%s naming conventions are consistent\n", colors.Green(shared.MarkPass))
		return
	}
	fmt.Fprintf(out, "%s naming convention issues found:\n", colors.Yellow(shared.MarkWarn))
	for _, issue := range issues {
		fmt.Fprintf(out, "  - %s\n", issue)
	}
}
