package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trezcool/horario/core/calendar"
)

var weekHeader = "Mo  Tu  We  Th  Fr  Sa  Su"

// printCalendar prints the month as a grid, days with classes marked by "*", then the classes of each day.
func (cli *commandLine) printCalendar(year, month int) error {
	weeks, err := cli.calendarSvc.Month(context.Background(), calendar.Cursor{Year: year, Month: time.Month(month)})
	if err != nil {
		return err
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %d", time.Month(month), year)
	b.WriteString(strings.Repeat(" ", (len(weekHeader)-len(title))/2) + title + "\n")
	b.WriteString(weekHeader + "\n")
	for _, week := range weeks {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, formatCell(cell))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " ") + "\n")
	}

	b.WriteString("\n")
	for _, week := range weeks {
		for _, cell := range week {
			if cell.Day == nil || len(cell.Classes) == 0 {
				continue
			}
			classes := make([]string, 0, len(cell.Classes))
			for _, cls := range cell.Classes {
				classes = append(classes, fmt.Sprintf("%s (%s)", cls.Subject, cls.Modality))
			}
			fmt.Fprintf(&b, "%02d: %s\n", *cell.Day, strings.Join(classes, ", "))
		}
	}

	_, err = fmt.Fprint(cli.out, b.String())
	return err
}

func formatCell(cell calendar.Cell) string {
	if cell.Day == nil {
		return "   "
	}
	mark := " "
	switch {
	case cell.Today:
		mark = "<"
	case len(cell.Classes) > 0:
		mark = "*"
	}
	return fmt.Sprintf("%2d%s", *cell.Day, mark)
}
