package output

import (
	"io"
	"strconv"
)

type markdownFormatter struct {
	opts Options
}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

func (f *markdownFormatter) Render(w io.Writer, result *QuoteResult) error {
	q := result.Quote
	p := &printer{w: w}

	p.printf("## Painting quote %s\n\n", result.ID)
	if info := result.Info; info != nil {
		if info.CustomerName != "" {
			p.printf("**Customer:** %s  \n", info.CustomerName)
		}
		if info.Address != "" {
			p.printf("**Address:** %s  \n", info.Address)
		}
		p.printf("**Project:** %s\n\n", info.ProjectType.OrDefault())
	}

	if len(q.LineItems) > 0 {
		if f.opts.ShowDetails {
			p.line("| Surface | Quantity | Rate | Amount |")
			p.line("|---|---:|---:|---:|")
			for _, item := range q.LineItems {
				qty := item.Quantity.String() + " " + item.Measure
				if item.Coats > 1 {
					qty += " x " + strconv.Itoa(item.Coats) + " coats"
				}
				p.printf("| %s | %s | %s | %s |\n", item.Surface.Type, qty, money(item.Rate, q.Currency), money(item.Subtotal, q.Currency))
			}
		} else {
			p.line("| Surface | Amount |")
			p.line("|---|---:|")
			for _, item := range q.LineItems {
				p.printf("| %s | %s |\n", item.Surface.Type, money(item.Subtotal, q.Currency))
			}
		}
		p.line("")
	}

	p.line("| | Amount |")
	p.line("|---|---:|")
	p.printf("| Subtotal | %s |\n", money(q.Subtotal, q.Currency))
	p.printf("| Overhead | %s |\n", money(q.OverheadAmount, q.Currency))
	p.printf("| Profit | %s |\n", money(q.ProfitAmount, q.Currency))
	p.printf("| Tax | %s |\n", money(q.TaxAmount, q.Currency))
	p.printf("| **Total** | **%s** |\n", money(q.TotalCost, q.Currency))

	if len(result.Assumptions) > 0 {
		p.line("\n### Assumptions\n")
		for _, a := range result.Assumptions {
			p.printf("- %s\n", a)
		}
	}
	return p.err
}
