package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/carousel/internal/config"
	"github.com/nikbrunner/carousel/internal/exporter"
	"github.com/nikbrunner/carousel/internal/importer"
	"github.com/nikbrunner/carousel/internal/model"
	"github.com/nikbrunner/carousel/internal/picker"
	"github.com/nikbrunner/carousel/internal/search"
	"github.com/nikbrunner/carousel/internal/storage"
	"github.com/nikbrunner/carousel/internal/tui"
)

func main() {
	closeLog := setupLogging()
	defer closeLog()

	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: carousel import <file.html> [catalog]\n")
				os.Exit(1)
			}
			name := "imported"
			if len(os.Args) >= 4 {
				name = os.Args[3]
			}
			runImport(os.Args[2], name)
			return
		case "export":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: carousel export <catalog> [file.html]\n")
				os.Exit(1)
			}
			var outputPath string
			if len(os.Args) >= 4 {
				outputPath = os.Args[3]
			}
			runExport(os.Args[2], outputPath)
			return
		case "list":
			runList()
			return
		case "pick":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: carousel pick <query>\n")
				os.Exit(1)
			}
			runPick(strings.Join(os.Args[2:], " "))
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command %q, see 'carousel help'\n", os.Args[1])
			os.Exit(1)
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `carousel - keyboard and mouse driven item carousels

Usage:
  carousel                           Open interactive TUI
  carousel import <file> [catalog]   Import links from bookmark HTML into a catalog
  carousel export <catalog> [path]   Export a catalog to bookmark HTML
  carousel pick <query>              Fuzzy pick an item, prints "id<TAB>title"
  carousel list                      List catalogs
  carousel help                      Show this help

TUI Keybindings:
  h/l, ←/→     Previous/next item
  g/G          First/last item
  1-9          Item by position
  j/k, tab     Focus carousel below/above
  /            Jump to item
  y            Copy item title
  ?            Help overlay
  q            Quit

Mouse:
  Click a card, dot or arrow to select; wheel scrolls.
  Card clicks are ignored while a carousel is centering.

Files:
  ~/.config/carousel/config.toml     Settings
  ~/.config/carousel/catalogs.json   Catalogs (catalogs.db when present)

Set CAROUSEL_DEBUG=<file> to write a debug log.
`
	fmt.Print(help)
}

// setupLogging routes the standard logger to a file when CAROUSEL_DEBUG is
// set and discards it otherwise, so nothing is drawn over the TUI.
func setupLogging() func() {
	path := os.Getenv("CAROUSEL_DEBUG")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	if path == "1" || path == "true" {
		path = "carousel-debug.log"
	}

	f, err := tea.LogToFile(path, "carousel")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
		os.Exit(1)
	}
	return func() { f.Close() }
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStorage opens the configured backend. The returned func releases it.
func openStorage(cfg *config.Config) (storage.Storage, func()) {
	s, err := storage.OpenStorage(cfg.Library)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalogs: %v\n", err)
		os.Exit(1)
	}
	closeFn := func() {}
	if c, ok := s.(io.Closer); ok {
		closeFn = func() { c.Close() }
	}
	return s, closeFn
}

func loadLibrary(s storage.Storage) *model.Library {
	lib, fallback, err := storage.LoadLibrary(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalogs: %v\n", err)
		os.Exit(1)
	}
	if fallback {
		log.Printf("no stored catalogs, using the built-in library")
	}
	return lib
}

// runTUI runs the full interactive TUI.
func runTUI() {
	cfg := loadConfig()
	s, closeStorage := openStorage(cfg)
	defer closeStorage()

	lib := loadLibrary(s)
	log.Printf("loaded %d catalogs", len(lib.Catalogs))

	app, err := tui.NewApp(tui.AppParams{Library: lib, Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building carousels: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runImport appends the links of a bookmark HTML file to a catalog.
func runImport(filePath, name string) {
	cfg := loadConfig()
	s, closeStorage := openStorage(cfg)
	defer closeStorage()

	lib := loadLibrary(s)

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	items, err := importer.ParseHTMLItems(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, skipped := lib.ImportMerge(name, items)

	if _, err := lib.Build(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating catalogs: %v\n", err)
		os.Exit(1)
	}

	if err := s.Save(lib); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalogs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d items into %s", added, name)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport writes one catalog as bookmark HTML.
func runExport(name, outputPath string) {
	cfg := loadConfig()
	s, closeStorage := openStorage(cfg)
	defer closeStorage()

	lib := loadLibrary(s)
	rec := lib.GetCatalogByName(name)
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no catalog named %q\n", name)
		os.Exit(1)
	}

	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(outputPath, []byte(exporter.ExportHTML(*rec)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d items to %s\n", len(rec.Items), outputPath)
}

// runList prints every catalog with its item count.
func runList() {
	cfg := loadConfig()
	s, closeStorage := openStorage(cfg)
	defer closeStorage()

	lib := loadLibrary(s)
	for _, rec := range lib.Catalogs {
		lock := ""
		if rec.ScrollLock {
			lock = "  [lock]"
		}
		fmt.Printf("%-16s %3d items  %s%s\n", rec.Name, len(rec.Items), rec.DisplayTitle(), lock)
	}
}

// runPick fuzzy-searches every catalog and prints the chosen item.
func runPick(query string) {
	cfg := loadConfig()
	s, closeStorage := openStorage(cfg)
	defer closeStorage()

	catalogs, err := loadLibrary(s).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalogs: %v\n", err)
		os.Exit(1)
	}

	results := search.FuzzySearchLibrary(catalogs, query)
	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "No items found for '%s'\n", query)
		os.Exit(1)
	}

	selected := &results[0].Item
	if len(results) > 1 {
		p := picker.New(results, query)
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		selected = finalModel.(picker.Picker).SelectedItem()
		if selected == nil {
			os.Exit(0)
		}
	}

	fmt.Printf("%s\t%s\n", selected.ID, selected.Title)
}
