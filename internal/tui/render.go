package tui

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/news.tmpl
var newsTemplates string

var titleCaser = cases.Title(language.English)

var news = template.Must(template.New("news").Funcs(template.FuncMap{
	"title": title,
}).Parse(newsTemplates))

var (
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	goldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	plainNews = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

func title(v any) string {
	return titleCaser.String(fmt.Sprint(v))
}

// Render turns a result into plain text.
func Render(res engine.Result) string {
	var buf bytes.Buffer
	if err := news.ExecuteTemplate(&buf, res.Outcome.String(), res); err != nil {
		return fmt.Sprintf("(%s)", res.Outcome)
	}
	return strings.TrimSpace(buf.String())
}

// renderNews wraps and colours a result for the log.
func renderNews(res engine.Result, width int) string {
	text := Render(res)
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	return toneOf(res).Render(text)
}

func toneOf(res engine.Result) lipgloss.Style {
	switch res.Outcome {
	case engine.OutcomeBrawlWonArmed, engine.OutcomeBrawlWon, engine.OutcomeDugGold, engine.OutcomeSold:
		return goldStyle
	case engine.OutcomeTreasureFound, engine.OutcomeBought:
		return goodStyle
	case engine.OutcomeBrawlLost, engine.OutcomeMissingItem, engine.OutcomeInsufficientGold, engine.OutcomeInvalidCommand:
		return badStyle
	case engine.OutcomeCrossed:
		if res.Broke {
			return badStyle
		}
		return goodStyle
	case engine.OutcomeWelcome:
		if res.Tough {
			return badStyle
		}
	}
	return plainNews
}

// renderOffers lists a shop's stock for the item prompt.
func renderOffers(mode engine.ShopMode, offers []engine.Offer) string {
	if len(offers) == 0 {
		if mode == engine.ShopSell {
			return "You have nothing to sell."
		}
		return "The shelves are empty."
	}
	var b strings.Builder
	if mode == engine.ShopSell {
		b.WriteString("We'll buy:\n")
	} else {
		b.WriteString("Welcome to the shop! We have:\n")
	}
	for _, o := range offers {
		fmt.Fprintf(&b, "  %-8s %s\n", title(o.Item), goldStyle.Render(fmt.Sprintf("%d gold", o.Price)))
	}
	b.WriteString("Which item? (leave empty to walk out)")
	return b.String()
}
