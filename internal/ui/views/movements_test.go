package views_test

import (
	"strings"
	"testing"

	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui/views"
	"github.com/pterm/pterm"
)

func TestMovementTableData(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	rows := []service.MovementRow{
		{Index: 2, Type: "withdrawal", Date: "TODAY", Amount: "-$50.00"},
		{Index: 1, Type: "deposit", Date: "YESTERDAY", Amount: "$200.00"},
	}

	data := views.MovementTableData(rows)
	if len(data) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(data))
	}
	if !strings.Contains(data[1][0], "2 withdrawal") || !strings.Contains(data[1][2], "-$50.00") {
		t.Errorf("unexpected first row: %v", data[1])
	}
	if data[2][1] != "YESTERDAY" {
		t.Errorf("date column = %q, want YESTERDAY", data[2][1])
	}
}
