package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/harlanw/scb/config"
	"github.com/harlanw/scb/screen"
	"github.com/harlanw/scb/terminal"
	"github.com/harlanw/scb/version"
)

// Define the command-line flags
var (
	initConfig  = flag.Bool("init-config", false, "Create a default config file and exit.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
)

// ctrl maps a key to its control-key byte, e.g. ctrl('q') for Ctrl-Q.
func ctrl(b byte) byte {
	return b & 0x1f
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("SCB Demo %s\n", version.GetFullVersion())
		os.Exit(0)
	}

	if *initConfig {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg := config.LoadConfig()

	if cfg.EnableLogger {
		f, err := os.OpenFile("scb.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- SCB Demo Started (Logging Enabled) ---")
	} else {
		log.SetOutput(io.Discard)
	}

	term := terminal.New()
	defer term.Close()

	scr, err := screen.New(term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}

	scr.SetCursor(cfg.ShowCursor)

	// Render loop: paint the previous frame, queue the next one, poll
	// for a key. The bounded key read paces the loop at ~10 fps.
	frame := 0
	for {
		scr.Refresh()

		scr.Printf("[demo: scb ]\n")
		scr.Printf("[frame: %.4d ]\n", frame)

		if frame%10 < 5 {
			pad := (scr.Width() - len(cfg.Banner)) / 2
			for i := 0; i < pad; i++ {
				scr.Printf(" ")
			}
			scr.Printf("%s\n", cfg.Banner)
		}

		frame++

		if scr.ReadKey() == ctrl('q') {
			break
		}
	}

	if err := scr.Close(); err != nil {
		log.Printf("error restoring terminal: %v", err)
	}
	log.Println("--- SCB Demo Exited Cleanly ---")
}
