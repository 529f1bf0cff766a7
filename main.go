package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"typing-app/internal/cli"
	"typing-app/internal/format"
	"typing-app/internal/keyboard"
	"typing-app/ui"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg == nil {
		return
	}

	if cfg.Print {
		s := cfg.Style()
		layout := keyboard.QWERTY()
		fmt.Println(format.FormatTree(layout.Name, keyboard.Build(layout, s), s.KeyWidth))
		return
	}

	a := app.NewWithID("com.typing-app.gui")
	win := ui.BuildMainWindow(a, ui.NewApp(cfg.Style()))
	win.ShowAndRun()
}
