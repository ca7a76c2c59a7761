// Package main provides the vendorsheet CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/minwe11/vendorsheet-go/internal/config"
	"github.com/minwe11/vendorsheet-go/internal/profile"
	"github.com/minwe11/vendorsheet-go/internal/server"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/loader"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/models"
	"github.com/minwe11/vendorsheet-go/pkg/vendorsheet/output"
)

const version = "1.0.0"

var (
	outputPath  string
	pretty      bool
	baseURL     string
	imageLang   string
	sheetNames  []string
	prefixPairs []string
	profilePath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vendorsheet",
		Short: "Convert spreadsheet game catalogs to vendor-games JSON",
		Long: `vendorsheet converts workbook tabs of game catalog listings into the
normalized vendor-games JSON document, deriving per-game image URLs from a
configurable base URL, language and per-vendor prefixes.`,
		Version: version,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [input.xlsx|input.csv]",
		Short: "Convert selected tabs of a workbook to vendor-games JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	convertCmd.Flags().StringVar(&baseURL, "base-url", "", "Image base URL (required unless set in the profile)")
	convertCmd.Flags().StringVar(&imageLang, "lang", "", "Image language segment (default: en)")
	convertCmd.Flags().StringArrayVar(&sheetNames, "sheet", nil, "Tab to convert, in order; repeatable (default: all tabs)")
	convertCmd.Flags().StringArrayVar(&prefixPairs, "prefix", nil, "Vendor image prefix as VENDOR=prefix; repeatable")
	convertCmd.Flags().StringVar(&profilePath, "config", "", "Conversion profile yaml file")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx|input.csv]",
		Short: "List a workbook's tabs with their detected vendor and wallet codes",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP authoring service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	rootCmd.AddCommand(convertCmd, sheetsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts := vendorsheet.DefaultOptions()
	selection := sheetNames

	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return err
		}
		opts = p.Options()
		if len(selection) == 0 {
			selection = p.Sheets
		}
	}

	// Flags override the profile.
	if baseURL != "" {
		opts.BaseURL = baseURL
	}
	if imageLang != "" {
		opts.ImageLang = imageLang
	}
	for _, pair := range prefixPairs {
		vendor, prefix, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --prefix %q (expected VENDOR=prefix)", pair)
		}
		if opts.VendorPrefixes == nil {
			opts.VendorPrefixes = make(map[string]string)
		}
		opts.VendorPrefixes[vendor] = prefix
	}

	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w (set --base-url or baseUrl in the profile)", err)
	}

	sheets, err := loadInput(args[0])
	if err != nil {
		return err
	}

	selected, err := selectSheets(sheets, selection)
	if err != nil {
		return err
	}

	doc, skips := vendorsheet.ConvertBatch(selected, opts)
	for _, skip := range skips {
		fmt.Fprintln(os.Stderr, "warning:", skip.String())
	}

	jsonData, err := output.ToJSON(doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	sheets, err := loadInput(args[0])
	if err != nil {
		return err
	}

	discovery := loader.Discover(sheets)
	for _, info := range discovery.Sheets {
		wallet := "-"
		if info.WalletCode != nil {
			wallet = *info.WalletCode
		}
		fmt.Printf("%-30s vendor=%-15s wallet=%s\n", info.Name, info.VendorCode, wallet)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg).Run(ctx)
}

// loadInput picks the decoder from the file extension.
func loadInput(path string) ([]models.Sheet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loader.LoadCSV(path)
	}
	return loader.LoadWorkbook(path)
}

// selectSheets keeps the named tabs in the order given, or every tab when
// no names were given.
func selectSheets(sheets []models.Sheet, names []string) ([]models.Sheet, error) {
	if len(names) == 0 {
		return sheets, nil
	}
	byName := make(map[string]models.Sheet, len(sheets))
	for _, sheet := range sheets {
		byName[sheet.Name] = sheet
	}
	selected := make([]models.Sheet, 0, len(names))
	for _, name := range names {
		sheet, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("sheet %q not found in workbook", name)
		}
		selected = append(selected, sheet)
	}
	return selected, nil
}
