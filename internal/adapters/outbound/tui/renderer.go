package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/abdidvp/stockroom/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(48)

	kindColors = map[domain.Kind]lipgloss.Color{
		domain.KindElectronic: lipgloss.Color("#60A5FA"), // blue
		domain.KindGrocery:    success,
		domain.KindClothing:   lipgloss.Color("#C084FC"), // violet
	}

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle   = lipgloss.NewStyle().Foreground(dim)
	separatorLen = 56
)

// RenderProducts lists products one per line, variant tag first.
func RenderProducts(title string, products []domain.Product) string {
	if len(products) == 0 {
		return "  " + dimStyle.Render("No products found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(title) + "  " + dimStyle.Render(fmt.Sprintf("(%d)", len(products))) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", separatorLen)) + "\n\n")

	for i := range products {
		renderProduct(&b, &products[i])
	}
	return b.String()
}

func renderProduct(b *strings.Builder, p *domain.Product) {
	tag := lipgloss.NewStyle().Bold(true).Foreground(kindColor(p.Kind())).Render(padRight(string(p.Kind()), 10))
	fields := p.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields[1:] {
		parts = append(parts, labelStyle.Render(f.Label+":")+" "+f.Value)
	}
	fmt.Fprintf(b, "  %s %s  %s\n", tag, titleStyle.Render(p.ID()), strings.Join(parts, "  "))
}

// RenderValue shows the total inventory value in a box.
func RenderValue(total decimal.Decimal, count int) string {
	title := headerStyle.Render("stockroom")
	subtitle := dimStyle.Render("Total Inventory Value")
	value := lipgloss.NewStyle().Bold(true).Foreground(success).Render(total.StringFixed(2))
	products := dimStyle.Render(fmt.Sprintf("%d products", count))
	return boxStyle.Render(title+"\n"+subtitle+"\n\n"+value+"\n"+products) + "\n"
}

// RenderSweep reports the groceries removed by an expiry sweep.
func RenderSweep(removed []domain.Product) string {
	if len(removed) == 0 {
		return "  " + passStyle.Render("No expired products.") + "\n"
	}
	var b strings.Builder
	b.WriteString("  " + warnStyle.Render(fmt.Sprintf("Removed %d expired products", len(removed))) + "\n")
	for i := range removed {
		fmt.Fprintf(&b, "  %s %s\n", failStyle.Render("✗"), removed[i].Describe())
	}
	return b.String()
}

// RenderHistory formats save history for terminal output.
func RenderHistory(entries []domain.SaveEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No save history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Save History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		ts := e.Timestamp
		if len(ts) > 19 {
			ts = ts[:19]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			fmt.Sprintf("%d products", e.ProductCount),
			titleStyle.Render(e.TotalValue),
		)

		if i > 0 {
			diff := e.ProductCount - entries[i-1].ProductCount
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func kindColor(k domain.Kind) lipgloss.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
