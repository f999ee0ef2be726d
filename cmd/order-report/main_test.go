package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/orderaudit/internal/report"
)

const fixturePath = "../../testdata/orders.json"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// SetArgs(nil) откатывается к os.Args тестового бинаря.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootDefaultsToReport(t *testing.T) {
	out, err := execute(t, fixturePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var summary report.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("stdout is not a summary: %v\n%s", err, out)
	}
	if summary.TotalOrders != 5 {
		t.Fatalf("total_orders = %d, want 5", summary.TotalOrders)
	}
}

func TestReportSubcommandMatchesRoot(t *testing.T) {
	rootOut, err := execute(t, fixturePath)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	reportOut, err := execute(t, "report", fixturePath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if rootOut != reportOut {
		t.Fatalf("root and report output differ:\n%s\n%s", rootOut, reportOut)
	}
}

func TestInsightsWithPolicyFlag(t *testing.T) {
	out, err := execute(t, "insights", fixturePath, "--policy", "../../testdata/policy.yaml", "--top", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var insights report.Insights
	if err := json.Unmarshal([]byte(out), &insights); err != nil {
		t.Fatalf("stdout is not insights: %v\n%s", err, out)
	}
	if len(insights.TopSKUs) != 2 || insights.TopSKUs[0].SKU != "PEN-RED" {
		t.Fatalf("unexpected top SKUs: %+v", insights.TopSKUs)
	}
}

func TestAuditStrictReturnsError(t *testing.T) {
	_, err := execute(t, "audit", fixturePath, "--strict")
	if err == nil {
		t.Fatal("strict audit over the reference fixture must fail")
	}
}

func TestMissingInputArg(t *testing.T) {
	_, err := execute(t)
	if err == nil {
		t.Fatal("expected an argument error")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "version=") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
