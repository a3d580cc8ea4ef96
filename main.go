// pirots2ascii renders slot-machine game replays as text boards and step paths.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/term"

	"pirots2ascii/config"
	"pirots2ascii/decode"
	"pirots2ascii/render"
	"pirots2ascii/replay"
	"pirots2ascii/types"
	"pirots2ascii/ui"
	"pirots2ascii/web"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagHTML      = flag.Bool("html", false, "Write the results page to stdout")
	flagBrowse    = flag.Bool("browse", false, "Browse the replay in the terminal")
	flagServe     = flag.Bool("serve", false, "Run the upload server")
	flagColor     = flag.String("color", "auto", "Highlight colors: auto, always or never")
	flagSkipBlank = flag.Bool("skip-blank", false, "Skip window states with no symbols")
	flagVersion   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pirots2ascii [flags] <replay.xml | dir>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetPrefix("[PIROTS] ")

	if *flagVersion {
		fmt.Printf("pirots2ascii %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *flagSkipBlank {
		cfg.Render.SkipBlank = true
	}

	theme := render.ThemeWithBackground(cfg.Render.HighlightColor)
	walker := replay.NewWalker(decode.NewDecoder(decode.DefaultSymbols()), cfg.Render.GridWidth, cfg.Render.GridHeight)

	if *flagServe {
		if err := serve(cfg, theme, walker); err != nil {
			log.Fatalf("serve: %v", err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	files, err := replayFiles(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *flagHTML || *flagBrowse {
		rp, err := loadReplay(walker, files[0], cfg.Render.SkipBlank)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if *flagHTML {
			if err := web.WriteResults(os.Stdout, theme, rp.FileName, rp.States); err != nil {
				log.Fatalf("write results: %v", err)
			}
			return
		}
		if err := browse(cfg, theme, rp); err != nil {
			log.Fatalf("browse: %v", err)
		}
		return
	}

	colored, err := useColor(*flagColor)
	if err != nil {
		log.Fatalf("%v", err)
	}
	for _, f := range files {
		rp, err := loadReplay(walker, f, cfg.Render.SkipBlank)
		if err != nil {
			log.Fatalf("%v", err)
		}
		printReplay(os.Stdout, theme, rp, colored)
	}
}

// replayFiles resolves the argument to one file, or to every replay in a
// directory, newest first.
func replayFiles(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	files, err := replay.ListReplays(arg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no replays found in %s", arg)
	}
	return files, nil
}

func loadReplay(walker *replay.Walker, path string, skipBlank bool) (*replay.Replay, error) {
	rp, err := walker.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if skipBlank {
		rp.States = dropBlank(rp.States)
	}
	return rp, nil
}

// dropBlank removes window states whose board has no symbols.
func dropBlank(states []types.GameState) []types.GameState {
	kept := states[:0]
	for _, s := range states {
		if bs, ok := s.(*types.BoardState); ok && bs.Board.Blank() {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf("invalid -color %q: want auto, always or never", mode)
}

func printReplay(w io.Writer, theme render.Theme, rp *replay.Replay, colored bool) {
	for _, s := range rp.States {
		out := theme.State(s, render.Plain)
		if !colored {
			out = render.StripColor(out)
		}
		if _, ok := s.(*types.PathState); ok {
			out = fmt.Sprintf("\n=== %s ===\n%s", s.Heading(), out)
		}
		fmt.Fprintln(w, out)
	}
	boards, paths := rp.Counts()
	fmt.Fprintf(w, "%s: %d game states (%d windows, %d paths)\n", rp.FileName, len(rp.States), boards, paths)
}

func serve(cfg *config.Config, theme render.Theme, walker *replay.Walker) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := web.NewServer(web.Config{
		HTTPAddr:    cfg.ListenAddr(),
		MaxUploadMB: cfg.Server.MaxUploadMB,
		Theme:       theme,
		Walker:      walker,
	})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}

func browse(cfg *config.Config, theme render.Theme, rp *replay.Replay) error {
	app := tview.NewApplication()
	pages := tview.NewPages()
	colors := ui.NewColors(cfg.Browser)

	browser := ui.NewReplayBrowser(rp, theme, colors, func() {
		app.Stop()
	})
	colorConfig := ui.NewColorConfig(cfg, colors, func(t render.Theme) {
		browser.SetTheme(t)
		pages.SwitchToPage("browser")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			pages.SwitchToPage("browser")
			return nil
		}
		return event
	})
	browser.SetColorsFunc(func() {
		pages.SwitchToPage("colors")
	})

	pages.AddPage("browser", browser.Flex(), true, true)
	pages.AddPage("colors", colorConfig.Flex(), true, false)

	if err := app.SetRoot(pages, true).Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
