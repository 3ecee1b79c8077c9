package views

import (
	"fmt"

	"github.com/hance08/bankist/internal/constants"
	"github.com/hance08/bankist/internal/service"
	"github.com/pterm/pterm"
)

// MovementTableData builds the movement table, header first.
func MovementTableData(rows []service.MovementRow) pterm.TableData {
	tableData := pterm.TableData{
		{"Movement", "Date", "Amount"},
	}

	for _, row := range rows {
		label := fmt.Sprintf("%d %s", row.Index, row.Type)
		var coloredType, coloredAmount string
		switch row.Type {
		case constants.TypeDeposit:
			coloredType = pterm.Green(label)
			coloredAmount = pterm.Green(row.Amount)
		case constants.TypeWithdrawal:
			coloredType = pterm.Red(label)
			coloredAmount = pterm.Red(row.Amount)
		default:
			coloredType = label
			coloredAmount = row.Amount
		}

		tableData = append(tableData, []string{
			coloredType,
			row.Date,
			coloredAmount,
		})
	}

	return tableData
}

func RenderMovements(rows []service.MovementRow, sorted bool) error {
	if len(rows) == 0 {
		pterm.Warning.Println("No movements yet")
		return nil
	}

	title := "Movements"
	if sorted {
		title = "Movements (sorted by amount)"
	}
	pterm.DefaultSection.Println(title)

	return pterm.DefaultTable.WithHasHeader().WithData(MovementTableData(rows)).Render()
}
