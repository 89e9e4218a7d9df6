package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobportal/internal/posting"
	"jobportal/internal/ui/textutil"
)

const (
	gridTwoColumnMinWidth = 72
	gridGap               = 2
	cardChrome            = 4 // border + horizontal padding
	chevron               = "›"
)

func cardStyle(cursor bool) lipgloss.Style {
	if cursor {
		return Styles.CardCursor
	}
	return Styles.Card
}

// metaLine renders "company · location" followed by the salary, trimming
// the company/location part first when space runs out.
func metaLine(p posting.JobPosting, inner int, withSalary bool) string {
	meta := p.Company + " · " + p.Location
	if !withSalary {
		return Styles.Meta.Render(textutil.Truncate(meta, inner))
	}
	sep := " · "
	room := inner - textutil.Width(sep) - textutil.Width(p.Salary)
	if room < textutil.Width(p.Company) {
		return Styles.Meta.Render(textutil.Truncate(meta, inner))
	}
	return Styles.Meta.Render(textutil.Truncate(meta, room)+sep) + Styles.Salary.Render(p.Salary)
}

// listCard is a full-width card: title and tags on the first line, meta
// and salary on the second.
func listCard(p posting.JobPosting, width int, cursor bool) string {
	inner := max(width-cardChrome, 8)

	tags := textutil.Hashtags(p.Tags, inner/2)
	right := Styles.Chevron.Render(chevron)
	if tags != "" {
		right = Styles.Tag.Render(tags) + " " + right
	}
	titleRoom := max(inner-lipgloss.Width(right)-1, 4)
	title := Styles.CardTitle.Render(textutil.Truncate(p.Title, titleRoom))
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(right), 1)

	body := title + strings.Repeat(" ", gap) + right + "\n" + metaLine(p, inner, true)
	return cardStyle(cursor).Width(width - 2).Render(body)
}

// gridCard stacks title, meta, salary and tags vertically.
func gridCard(p posting.JobPosting, width int, cursor bool) string {
	inner := max(width-cardChrome, 8)
	lines := []string{
		Styles.CardTitle.Render(textutil.Truncate(p.Title, inner)),
		metaLine(p, inner, false),
		Styles.Salary.Render(textutil.Truncate(p.Salary, inner)),
		"",
		Styles.Tag.Render(textutil.Hashtags(p.Tags, inner-2)) + " " + Styles.Chevron.Render(chevron),
	}
	return cardStyle(cursor).Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderList stacks one card per posting.
func renderList(items []posting.JobPosting, cursor, width int) (string, []cardBox) {
	var (
		cards = make([]string, len(items))
		boxes = make([]cardBox, len(items))
		line  int
	)
	for i, p := range items {
		cards[i] = listCard(p, width, i == cursor)
		h := lipgloss.Height(cards[i])
		boxes[i] = cardBox{top: line, bottom: line + h - 1, left: 0, right: width - 1}
		line += h
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...), boxes
}

// renderGrid lays cards out in rows of cols.
func renderGrid(items []posting.JobPosting, cursor, width, cols int) (string, []cardBox) {
	if cols < 1 {
		cols = 1
	}
	cardW := (width - gridGap*(cols-1)) / cols
	spacer := strings.Repeat(" ", gridGap)

	var (
		rows  []string
		boxes = make([]cardBox, len(items))
		line  int
	)
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		row := make([]string, 0, 2*cols-1)
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, spacer)
			}
			row = append(row, gridCard(items[i], cardW, i == cursor))
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, row...)
		h := lipgloss.Height(joined)
		for i := start; i < end; i++ {
			col := i - start
			left := col * (cardW + gridGap)
			boxes[i] = cardBox{top: line, bottom: line + h - 1, left: left, right: left + cardW - 1}
		}
		rows = append(rows, joined)
		line += h
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), boxes
}
