package main

import (
	"encoding/json"
	"fmt"
	"os"

	"axscan/internal/model"
	"axscan/internal/scan"
	"axscan/internal/tui"
	"axscan/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "macmcp",
		Repository: "axscan",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/macmcp/axscan/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: axscan [options] <source_directory>\n\n")
		fmt.Fprintf(os.Stderr, "axscan finds direct AXUIElementCopyAttributeValue calls in Swift sources\n")
		fmt.Fprintf(os.Stderr, "and suggests the equivalent SafeAttributeAccess wrapper for each one.\n")
		fmt.Fprintf(os.Stderr, "Scanned files are never modified.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  axscan Sources/            # Print report to stdout\n")
		fmt.Fprintf(os.Stderr, "  axscan -o r.txt Sources/   # Save report to file\n")
		fmt.Fprintf(os.Stderr, "  axscan --json Sources/     # Output scan result as JSON\n")
		fmt.Fprintf(os.Stderr, "  axscan --tui Sources/      # Browse matches interactively\n")
		fmt.Fprintf(os.Stderr, "  axscan --web Sources/      # Serve report on http://localhost:8080\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output raw scan data as JSON")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file")
	tuiFlag := pflag.BoolP("tui", "t", false, "Start interactive TUI match browser")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("axscan version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if pflag.NArg() != 1 {
		fmt.Println("Usage: axscan <source_directory>")
		os.Exit(1)
	}
	root := pflag.Arg(0)

	if *tuiFlag {
		runTuiMode(root)
		return
	}

	scanner := scan.NewScanner()
	result, err := scanner.Run(root)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, skipped := range result.Skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipping %s: %s\n", skipped.Path, skipped.Reason)
	}

	if *webFlag {
		web.StartServer(root)
		return
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
		return
	}

	report := scan.GenerateReport(result)

	if *outputFlag != "" {
		err := os.WriteFile(*outputFlag, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", *outputFlag, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", *outputFlag)
	} else {
		fmt.Print(report)
	}
}

func runTuiMode(root string) {
	m := tui.InitialModel(root)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
