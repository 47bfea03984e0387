package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusboard/internal/model"
	"github.com/sadopc/focusboard/internal/stats"
)

type reportsModel struct {
	width  int
	height int

	data   model.ProductivityData
	now    func() time.Time
	offset int // weeks back from the current one

	totals  []stats.DayTotal
	chart   barchart.Model
	summary string
}

func newReportsModel(d model.ProductivityData) reportsModel {
	return reportsModel{
		data:  d,
		now:   time.Now,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r *reportsModel) setData(d model.ProductivityData) {
	r.data = d
}

func (r reportsModel) weekStart() time.Time {
	return stats.WeekStart(r.now()).AddDate(0, 0, -7*r.offset)
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
		}
	}
	return r, nil
}

// build recomputes the week's totals, chart and summary. It runs whenever
// data, size, week or theme change.
func (r *reportsModel) build(st styles) {
	r.totals = stats.DailyTotals(r.data.TimeEntries, r.weekStart(), 7)
	r.buildChart(st)

	md := weeklySummary(r.totals, r.data.Goals)
	wrap := max(20, r.width-12)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(st.glamourStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		r.summary = md
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		r.summary = md
		return
	}
	r.summary = strings.TrimSpace(out)
}

func (r *reportsModel) buildChart(st styles) {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if r.height > 36 {
		chartHeight = 14
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	today := stats.DayStart(r.now())
	var bars []barchart.BarData
	for _, d := range r.totals {
		style := lipgloss.NewStyle().Foreground(st.palette.primary)
		if d.Day.Equal(today) {
			style = lipgloss.NewStyle().Foreground(st.palette.secondary)
		}
		if d.Hours() >= r.data.Goals.Daily && r.data.Goals.Daily > 0 {
			style = lipgloss.NewStyle().Foreground(st.palette.success)
		}
		bars = append(bars, barchart.BarData{
			Label: d.Day.Format("Mon 02"),
			Values: []barchart.BarValue{{
				Name:  "Focus",
				Value: d.Hours(),
				Style: style,
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

// weeklySummary renders the week as markdown: a totals line and one table
// row per day.
func weeklySummary(totals []stats.DayTotal, goals model.Goals) string {
	if len(totals) == 0 {
		return "_No data for this period_"
	}

	var week int
	best := totals[0]
	hit := 0
	for _, d := range totals {
		week += d.Minutes
		if d.Minutes > best.Minutes {
			best = d
		}
		if goals.Daily > 0 && d.Hours() >= goals.Daily {
			hit++
		}
	}
	weekHours := float64(week) / 60

	var b strings.Builder
	fmt.Fprintf(&b, "## Week of %s\n\n", totals[0].Day.Format("Jan 02, 2006"))
	fmt.Fprintf(&b, "**%.1fh** focused of a **%gh** weekly goal (%.0f%%).\n\n",
		weekHours, goals.Weekly, stats.Progress(weekHours, goals.Weekly))
	if best.Minutes > 0 {
		fmt.Fprintf(&b, "Best day: **%s** with %s. Daily goal met on %d of %d days.\n\n",
			best.Day.Format("Monday"), formatMinutes(best.Minutes), hit, len(totals))
	}

	b.WriteString("| Day | Focus | Daily goal |\n|---|---:|---:|\n")
	for _, d := range totals {
		fmt.Fprintf(&b, "| %s | %s | %.0f%% |\n",
			d.Day.Format("Mon Jan 02"), formatMinutes(d.Minutes), stats.Progress(d.Hours(), goals.Daily))
	}
	return b.String()
}

func (r reportsModel) view(st styles) string {
	w := r.width - 4
	if w < 20 {
		w = 20
	}

	from := r.weekStart()
	dateLabel := st.muted.Render(fmt.Sprintf("%s - %s", from.Format("Jan 02"), from.AddDate(0, 0, 6).Format("Jan 02, 2006")))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, st.title.Render("Reports"), "  ", dateLabel)

	nav := st.muted.Render("  ←/→: previous/next week")

	return st.panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", r.summary, "", nav,
		),
	)
}
