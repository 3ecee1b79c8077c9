package views

import (
	"github.com/hance08/bankist/internal/logic/ledger"
	"github.com/hance08/bankist/internal/model"
	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/ui"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	formatter *service.FormatterService
}

func NewAccountListView(formatter *service.FormatterService) *AccountListView {
	return &AccountListView{formatter: formatter}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	headers := []string{"Username", "Owner", "Currency", "Locale", "Movements", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := ledger.Balance(acc)
		formatted := v.formatter.FormatCurrency(balance, acc.Locale, acc.Currency)

		tableData = append(tableData, []string{
			acc.Username,
			acc.Owner,
			acc.Currency,
			acc.Locale,
			pterm.Sprint(len(acc.Movements)),
			ui.Money(formatted, balance.IsNegative()),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
