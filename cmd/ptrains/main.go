package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ptrains/ptrains-cli/internal/api"
	"github.com/ptrains/ptrains-cli/internal/models"
	"github.com/ptrains/ptrains-cli/internal/output"
	"github.com/ptrains/ptrains-cli/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ptrains",
	Short: "CLI for querying Portuguese railway timetables",
	Long: `ptrains is a command-line interface for the public timetable endpoints
of Infraestruturas de Portugal (servicos.infraestruturasdeportugal.pt).

Features:
  - Station search by name
  - Departure and arrival boards for the rest of the day
  - Train routes with every stop and whether it was passed
  - JSON output for scripting

Quick Start:
  1. Launch TUI:               ptrains (or ptrains tui)
  2. Search for a station:     ptrains search "Porto Campanhã"
  3. Show the station board:   ptrains board <station-id>
  4. Show a train's route:     ptrains train <train-number>`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagJSON    bool
	flagRawJSON bool
	flagColor   string
	flagTimeout time.Duration
	flagVerbose bool
)

// Board/train flags
var (
	flagDate       string
	flagTime       string
	flagUntil      string
	flagArrivals   bool
	flagDepartures bool
	flagNoFilter   bool
	flagNotes      bool
	flagOperator   bool
	flagWatch      bool
)

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(tuiCmd)

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every request to stderr")

	boardCmd.Flags().StringVarP(&flagDate, "date", "d", "", "Date (YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY)")
	boardCmd.Flags().StringVarP(&flagTime, "time", "t", "", "Start time (HH:MM)")
	boardCmd.Flags().StringVarP(&flagUntil, "until", "u", "", "End time (HH:MM), default end of day")
	boardCmd.Flags().BoolVarP(&flagArrivals, "arrivals", "a", false, "Show only arrivals")
	boardCmd.Flags().BoolVar(&flagDepartures, "departures", false, "Show only departures")
	boardCmd.Flags().BoolVar(&flagNoFilter, "no-filter", false, "Do not send the service type filter")
	boardCmd.Flags().BoolVarP(&flagNotes, "notes", "n", false, "Show observations for each train")
	boardCmd.Flags().BoolVarP(&flagOperator, "operator", "o", false, "Show the operator of each train")
	boardCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 30 seconds")

	trainCmd.Flags().StringVarP(&flagDate, "date", "d", "", "Date (YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY)")
	trainCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 30 seconds")
}

// newLogger returns the request logger for the CLI, writing to stderr
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// createClient creates an API client with common options
func createClient() (*api.Client, error) {
	return api.NewClient(
		api.WithTimeout(flagTimeout),
		api.WithLogger(newLogger()),
		api.WithServiceTypeFilter(!flagNoFilter),
	)
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for stations by name",
	Long: `Search for stations by name. The IDs printed are the ones
'ptrains board' expects.

Example:
  ptrains search "Porto Campanhã"
  ptrains search Coimbra`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var boardCmd = &cobra.Command{
	Use:   "board <station-id>",
	Short: "Show departures and arrivals at a station",
	Long: `Show the departures and arrivals at a station, from now until the
end of the day unless --date, --time or --until say otherwise.

Use 'ptrains search <name>' to find station IDs.

Examples:
  ptrains board 94                           # Porto - Campanhã, rest of today
  ptrains board 94 --departures --notes      # Only departures, with observations
  ptrains board 9430 -d 2026-03-05 -t 6:00 -u 8:30
  ptrains board 94 --watch                   # Refresh every 30 seconds`,
	Args: cobra.ExactArgs(1),
	RunE: runBoard,
}

var trainCmd = &cobra.Command{
	Use:   "train <train-number>",
	Short: "Show a train's route",
	Long: `Show every stop of a train on a given day (today by default),
marking the stops it has already passed.

Examples:
  ptrains train 130
  ptrains train 130 --date 2026-03-05
  ptrains train 130 --watch          # Track the train in real-time`,
	Args: cobra.ExactArgs(1),
	RunE: runTrain,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI for browsing
stations, their timetables and train routes.

Keyboard:
  Tab          Cycle focus between panels
  j/k or arrows  Navigate lists
  Enter        Select / confirm
  Esc          Go back
  /            Jump to search
  q            Quit`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	client, err := api.NewClient(api.WithTimeout(flagTimeout))
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	p := tea.NewProgram(tui.New(client), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

const watchInterval = 30 * time.Second

// runWatch redraws fetchAndRender every watchInterval until interrupted
func runWatch(fetchAndRender func(ctx context.Context) error) error {
	ctx, stop := output.InterruptContext(context.Background())
	defer stop()

	screen := output.NewScreen(os.Stdout, output.NewColors(getColorMode()))
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	screen.Begin()
	defer screen.End()

	for {
		screen.Frame(time.Now(), watchInterval)

		if err := fetchAndRender(ctx); err != nil && ctx.Err() == nil {
			_, _ = fmt.Fprintln(os.Stderr, describeError(err))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := strings.TrimSpace(args[0])
	if query == "" {
		return api.ErrMissingField("query")
	}

	client, err := createClient()
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	if flagRawJSON {
		raw, err := client.Stations.SearchStationsRaw(ctx, query)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	reply, err := client.Stations.SearchStations(ctx, query)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(reply.Response)
	}

	output.RenderStations(os.Stdout, reply.Response, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	stationID, err := parseID("station", args[0])
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	req := api.StationBoardRequest{StationID: stationID}
	if flagDate != "" || flagTime != "" {
		if req.Start, err = parseDateTime(flagDate, flagTime, client.Now()); err != nil {
			return err
		}
	}
	if flagUntil != "" {
		start := req.Start
		if start.IsZero() {
			start = client.Now()
		}
		if req.End, err = parseUntil(flagUntil, start); err != nil {
			return err
		}
	}

	render := func(reply *models.StationReply) {
		opts := output.TableOptions{
			Colors:       output.NewColors(getColorMode()),
			ShowNotes:    flagNotes,
			ShowOperator: flagOperator,
		}
		showDep, showArr := boardSelection(flagDepartures, flagArrivals)
		if showDep {
			output.RenderStationBoard(os.Stdout, reply.Departures(), opts)
		}
		if showDep && showArr {
			fmt.Println()
		}
		if showArr {
			output.RenderStationBoard(os.Stdout, reply.Arrivals(), opts)
		}
	}

	if flagWatch {
		return runWatch(func(ctx context.Context) error {
			reply, err := client.Stations.GetStationTimeTable(ctx, req)
			if err != nil {
				return err
			}
			render(reply)
			return nil
		})
	}

	if flagRawJSON {
		raw, err := client.Stations.GetStationTimeTableRaw(ctx, req)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	reply, err := client.Stations.GetStationTimeTable(ctx, req)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(reply.Response)
	}

	render(reply)
	return nil
}

func runTrain(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	trainID, err := parseID("train", args[0])
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	var day time.Time
	if flagDate != "" {
		if day, err = parseDateTime(flagDate, "", client.Now()); err != nil {
			return err
		}
	}

	render := func(reply *models.TrainReply) {
		output.RenderTrain(os.Stdout, trainID, reply.Response, output.TableOptions{
			Colors:    output.NewColors(getColorMode()),
			ShowNotes: true,
		})
	}

	if flagWatch {
		return runWatch(func(ctx context.Context) error {
			reply, err := client.Trains.GetTrainTimeTable(ctx, trainID, day)
			if err != nil {
				return err
			}
			render(reply)
			return nil
		})
	}

	if flagRawJSON {
		raw, err := client.Trains.GetTrainTimeTableRaw(ctx, trainID, day)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	reply, err := client.Trains.GetTrainTimeTable(ctx, trainID, day)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(reply.Response)
	}

	render(reply)
	return nil
}

// boardSelection returns which timetables to print. Neither flag means both.
func boardSelection(departures, arrivals bool) (showDep, showArr bool) {
	if !departures && !arrivals {
		return true, true
	}
	return departures, arrivals
}

// parseID parses a positive station or train number
func parseID(field, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, api.ErrInvalidFormat(field, "a number")
	}
	if id <= 0 {
		return 0, api.ErrInvalidValue(field, id)
	}
	return id, nil
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2-1-2006", "2/1/2006"}

// parseDateTime combines a date and a HH:MM time. Missing parts are taken
// from now, whose location is used for the result.
func parseDateTime(dateStr, timeStr string, now time.Time) (time.Time, error) {
	loc := now.Location()
	year, month, day := now.Date()
	hour, minute := now.Hour(), now.Minute()

	if dateStr != "" {
		var parsed time.Time
		var err error
		for _, layout := range dateLayouts {
			if parsed, err = time.ParseInLocation(layout, dateStr, loc); err == nil {
				break
			}
		}
		if err != nil {
			return time.Time{}, api.ErrInvalidFormat("date", "YYYY-MM-DD")
		}
		year, month, day = parsed.Date()
	}

	if timeStr != "" {
		h, m, err := parseClock("time", timeStr)
		if err != nil {
			return time.Time{}, err
		}
		hour, minute = h, m
	}

	return time.Date(year, month, day, hour, minute, 0, 0, loc), nil
}

// parseUntil returns HH:MM on the day of start, which it may not precede
func parseUntil(s string, start time.Time) (time.Time, error) {
	h, m, err := parseClock("until", s)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := start.Date()
	end := time.Date(year, month, day, h, m, 0, 0, start.Location())
	if end.Before(start) {
		return time.Time{}, api.ErrInvalidValue("until", s)
	}
	return end, nil
}

func parseClock(field, s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, api.ErrInvalidFormat(field, "HH:MM")
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0, 0, api.ErrInvalidFormat(field, "HH:MM")
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, api.ErrInvalidValue(field, s)
	}
	return h, m, nil
}

// describeError turns library errors into one-line messages for the terminal
func describeError(err error) string {
	switch {
	case errors.Is(err, api.ErrTimeout):
		return "Error: request timed out, try a larger --timeout"
	case errors.Is(err, api.ErrNotFound):
		return "Error: not found (" + err.Error() + ")"
	case errors.Is(err, api.ErrDecode):
		return "Error: unexpected response from the server: " + err.Error()
	}
	return "Error: " + err.Error()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPrettyJSON(data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		// If we can't parse it, just print raw
		fmt.Println(string(data))
		return err
	}
	return printJSON(prettyJSON)
}
