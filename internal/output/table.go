package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ptrains/ptrains-cli/internal/models"
	"github.com/ptrains/ptrains-cli/internal/operators"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors       *Colors
	ShowNotes    bool
	ShowOperator bool
}

func (o TableOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

// RenderStations renders station search results as a formatted list
func RenderStations(w io.Writer, nodes []models.Node, opts TableOptions) {
	if len(nodes) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("Found stations:"))
	_, _ = fmt.Fprintln(w)

	for _, node := range nodes {
		_, _ = fmt.Fprintf(w, "  %s\n", c.Station("%s", models.Value(node.Name)))
		if node.ID == nil {
			_, _ = fmt.Fprintln(w)
			continue
		}
		_, _ = fmt.Fprintf(w, "    %s %d\n", c.Muted("ID:"), *node.ID)
		_, _ = fmt.Fprintf(w, "    %s ptrains board %d\n", c.Muted("Use:"), *node.ID)
		_, _ = fmt.Fprintln(w)
	}
}

// RenderStationBoard renders one departures or arrivals timetable
func RenderStationBoard(w io.Writer, table *models.StationTimeTable, opts TableOptions) {
	if table == nil || len(table.Elements) == 0 {
		_, _ = fmt.Fprintln(w, "No trains found.")
		return
	}

	c := opts.colors()
	kind := models.Departures
	if table.TableType != nil {
		kind = *table.TableType
	}

	title := "Departures"
	if kind == models.Arrivals {
		title = "Arrivals"
	}
	if name := models.Value(table.StationName); name != "" {
		title += " at " + name
	}
	_, _ = fmt.Fprintln(w, c.Header("%s", title))
	_, _ = fmt.Fprintln(w)

	for _, el := range table.Elements {
		timeStr := models.Value(el.Time)
		if timeStr == "" {
			timeStr = "??:??"
		}

		trains := joinTrainNumbers(el.TrainNumbers())
		service := truncate(models.Value(el.ServiceType), 9)

		// Departures list where a train goes, arrivals where it came from
		place := models.Value(el.DestinationStationName)
		if kind == models.Arrivals {
			place = models.Value(el.OriginStationName)
		}

		if models.Value(el.HasPassed) {
			_, _ = fmt.Fprintf(w, "%s  %-11s  %-9s  %s\n",
				c.Passed("%-5s", timeStr),
				c.Passed("%s", trains),
				c.Passed("%s", service),
				c.Passed("%s [passed]", place),
			)
		} else {
			_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
				c.Time("%-5s", timeStr),
				c.Train("%-11s", trains),
				c.Service("%-9s", service),
				place,
			)
		}

		if opts.ShowOperator && el.Operator != nil {
			_, _ = fmt.Fprintf(w, "%32s%s\n", "", c.Operator("%s", operators.Label(*el.Operator)))
		}
		if opts.ShowNotes {
			if notes := c.FormatNotes(models.Value(el.Observations)); notes != "" {
				_, _ = fmt.Fprintf(w, "%32s%s\n", "", notes)
			}
		}
	}
}

// RenderTrain renders a train's route with all stops
func RenderTrain(w io.Writer, trainID int, train *models.TrainTimeTable, opts TableOptions) {
	if train == nil {
		_, _ = fmt.Fprintf(w, "No timetable found for train %d.\n", trainID)
		return
	}

	c := opts.colors()

	header := fmt.Sprintf("Train %d", trainID)
	if service := models.Value(train.ServiceType); service != "" {
		header += " " + service
	}
	_, _ = fmt.Fprintf(w, "%s\n", c.Header("%s", header))

	_, _ = fmt.Fprintf(w, "%s %s %s → %s %s\n",
		c.Muted("Route:"),
		c.Time("%s", models.Value(train.DepartureTime)),
		models.Value(train.Origin),
		c.Time("%s", models.Value(train.ArrivalTime)),
		models.Value(train.Destination),
	)
	if d := models.Value(train.Duration); d != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Duration:"), d)
	}
	if op := models.Value(train.Operator); op != "" {
		name := operators.GetOperatorName(op)
		if name == "" {
			name = op
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Operator:"), c.Operator("%s", name))
	}
	if status := models.Value(train.Status); status != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Status:"), c.FormatNotes(status))
	}

	if len(train.Stops) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, c.Header("Stops:"))
	_, _ = fmt.Fprintln(w)

	next := train.NextStop()
	for i, stop := range train.Stops {
		symbol := "├"
		if i == 0 {
			symbol = "┌"
		} else if i == len(train.Stops)-1 {
			symbol = "└"
		}

		scheduled := models.Value(stop.ScheduledTime)
		if scheduled == "" {
			scheduled = "     "
		}
		name := models.Value(stop.StationName)

		switch {
		case i == next:
			_, _ = fmt.Fprintf(w, "%s %s %s  %s",
				c.Current(">"), c.Muted(symbol), c.Current("%-5s", scheduled), c.Current("%s", name))
		case models.Value(stop.HasPassed):
			_, _ = fmt.Fprintf(w, "  %s %s  %s",
				c.Muted(symbol), c.Passed("%-5s", scheduled), c.Passed("%s", name))
		default:
			_, _ = fmt.Fprintf(w, "  %s %s  %s",
				c.Muted(symbol), c.Time("%-5s", scheduled), name)
		}

		if opts.ShowNotes {
			if notes := c.FormatNotes(models.Value(stop.Notes)); notes != "" {
				_, _ = fmt.Fprintf(w, "  %s", notes)
			}
		}
		_, _ = fmt.Fprintln(w)
	}
}

func joinTrainNumbers(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "/")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
