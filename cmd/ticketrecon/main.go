// Package main provides the CLI entry point for ticketrecon-go.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon"
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/config"
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/output"
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/parser"
)

var (
	mode          string
	dealerConfig  string
	gamesPath     string
	gameOverride  string
	drawOverride  string
	masterCode    string
	trimLeading   int
	barcodePrefix string
	blocksStr     string
	breakStart    int64
	breakSizesStr string
	v1Path        string
	strictV1      bool
	outputPath    string
	xlsxPath      string
	pretty        bool
	dateStr       string
)

func main() {
	// .env is optional; flags override the environment.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ticketrecon",
		Short: "Reconcile lottery ticket-range spreadsheets",
		Long: `ticketrecon-go extracts dealer-attributed ticket ranges from
lottery-operator spreadsheet exports and emits structured records.`,
	}

	processCmd := &cobra.Command{
		Use:   "process [files...]",
		Short: "Process one or more report workbooks",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runProcess,
	}
	processCmd.Flags().StringVar(&mode, "mode", "erp", "Report layout: erp, returns")
	processCmd.Flags().StringVar(&dealerConfig, "dealer-config", os.Getenv("TICKETRECON_DEALER_CONFIG"), "Path to dealer config JSON")
	processCmd.Flags().StringVar(&masterCode, "master", "", "Master dealer code (overrides dealer config)")
	processCmd.Flags().StringVar(&gameOverride, "game", "", "Game name override")
	processCmd.Flags().StringVar(&drawOverride, "draw", "", "Draw date override")
	processCmd.Flags().IntVar(&trimLeading, "trim-leading", 0, "Leading digits to drop from scanned barcodes")
	processCmd.Flags().StringVar(&barcodePrefix, "barcode-prefix", "", "Prefix prepended to short barcodes")
	processCmd.Flags().StringVar(&blocksStr, "blocks", "", "Availability blocks as from-to pairs, e.g. 1000-1999,3000-3999")
	processCmd.Flags().Int64Var(&breakStart, "break-start", 0, "Start barcode for derived breaks")
	processCmd.Flags().StringVar(&breakSizesStr, "break-sizes", "", "Comma-separated break sizes")
	processCmd.Flags().StringVar(&v1Path, "v1", "", "Path to previously-reported ranges JSON")
	processCmd.Flags().BoolVar(&strictV1, "strict-v1", false, "Scope V1 exclusion by dealer+game+draw")
	processCmd.Flags().StringVarP(&outputPath, "output", "o", "", "JSON output file path (default: stdout)")
	processCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "XLSX output file path")
	processCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	suggestCmd := &cobra.Command{
		Use:   "suggest-game [file]",
		Short: "Suggest the game for a report file name",
		Args:  cobra.ExactArgs(1),
		RunE:  runSuggest,
	}
	suggestCmd.Flags().StringVar(&dateStr, "date", "", "Business date (YYYY-MM-DD, default: today)")
	suggestCmd.Flags().StringVar(&gamesPath, "games", os.Getenv("TICKETRECON_GAMES"), "Path to game master JSON")
	suggestCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(processCmd, suggestCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	cfg := &models.DealerConfig{Aliases: map[string]string{}}
	if dealerConfig != "" {
		cfg, err = config.LoadDealerConfig(dealerConfig)
		if err != nil {
			return err
		}
	}
	if masterCode != "" {
		cfg.MasterDealerCode = masterCode
	}

	results, errs := ticketrecon.ProcessBatch(args, opts, cfg)
	for _, procErr := range errs {
		fmt.Fprintln(os.Stderr, procErr)
	}

	jsonData, err := output.ToJSON(results, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(string(jsonData))
	}

	if xlsxPath != "" {
		var rows []models.StructuredRow
		for _, res := range results {
			rows = append(rows, res.Rows...)
		}
		if err := output.WriteXLSX(xlsxPath, rows); err != nil {
			return fmt.Errorf("failed to write xlsx: %w", err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed", len(errs), len(args))
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	businessDate := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		businessDate = parsed
	}

	if gamesPath == "" {
		return fmt.Errorf("a game master file is required (--games or TICKETRECON_GAMES)")
	}
	games, err := config.LoadGames(gamesPath)
	if err != nil {
		return err
	}

	sug := parser.SuggestGame(args[0], businessDate, parser.BuildDayCodeTable(games))
	jsonData, err := output.SuggestionToJSON(sug, pretty)
	if err != nil {
		return err
	}
	fmt.Println(string(jsonData))
	return nil
}

func buildOptions() (ticketrecon.Options, error) {
	opts := ticketrecon.DefaultOptions()
	switch mode {
	case "erp":
		opts.Mode = ticketrecon.ModeERP
	case "returns":
		opts.Mode = ticketrecon.ModeReturns
	default:
		return opts, fmt.Errorf("invalid mode: %s (must be erp or returns)", mode)
	}

	opts.Game = gameOverride
	opts.Draw = drawOverride
	opts.Trim = parser.TrimPolicy{TrimLeading: trimLeading, DefaultPrefix: barcodePrefix}
	opts.StrictV1 = strictV1
	opts.BreakStart = breakStart

	if blocksStr != "" {
		for _, part := range strings.Split(blocksStr, ",") {
			bounds := strings.SplitN(part, "-", 2)
			block := models.BlockInput{From: bounds[0]}
			if len(bounds) == 2 {
				block.To = bounds[1]
			}
			opts.Blocks = append(opts.Blocks, block)
		}
	}
	if breakSizesStr != "" {
		for _, part := range strings.Split(breakSizesStr, ",") {
			size, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return opts, fmt.Errorf("invalid break size %q: %w", part, err)
			}
			opts.BreakSizes = append(opts.BreakSizes, size)
		}
	}
	if v1Path != "" {
		v1, err := config.LoadV1Rows(v1Path)
		if err != nil {
			return opts, err
		}
		opts.V1 = v1
	}
	return opts, nil
}
