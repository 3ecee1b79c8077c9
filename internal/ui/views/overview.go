package views

import (
	"strings"

	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui"
	"github.com/pterm/pterm"
)

// RenderOverview prints the logged-in screen: greeting, balance, movements
// and the in/out/interest summary.
func RenderOverview(ov *service.Overview) error {
	ui.PrintL1Title("Welcome back, %s", ov.Welcome)
	pterm.Println(pterm.Gray("As of " + ov.Now))
	ui.Separator()

	ui.PrintL2Title("Current balance: %s", ov.Balance)

	if err := RenderMovements(ov.Rows, ov.Sorted); err != nil {
		return err
	}

	return RenderSummary(ov)
}

func RenderSummary(ov *service.Overview) error {
	tableData := pterm.TableData{
		{pterm.Blue("In"), pterm.Green(ov.Income)},
		{pterm.Blue("Out"), pterm.Red(ov.Expense)},
		{pterm.Blue("Interest"), pterm.Green(ov.Interest)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderStatement prints the overview without colours or titles, one row per
// line, for non-interactive use.
func RenderStatement(ov *service.Overview) {
	pterm.Printfln("%s  %s", ov.Welcome, ov.Now)
	pterm.Printfln("Balance: %s", ov.Balance)
	for _, row := range ov.Rows {
		pterm.Printfln("%d\t%s\t%s\t%s", row.Index, strings.ToUpper(row.Type), row.Date, row.Amount)
	}
	pterm.Printfln("In: %s  Out: %s  Interest: %s", ov.Income, ov.Expense, ov.Interest)
}
