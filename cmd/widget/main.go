package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/z-marketing/sb1-fn7ghc/config"
	"github.com/z-marketing/sb1-fn7ghc/widget"
)

type cliFlags struct {
	configPath string
	baseURL    string
	format     string
	once       bool
	options    widget.Options
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	var theme string

	fs := flag.NewFlagSet("widget", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "config.yaml", "path to config file")
	fs.StringVar(&f.baseURL, "base-url", "", "proxy base URL, overrides widget.base_url")
	fs.StringVar(&f.options.CoinID, "coin", "bitcoin", "coin slug to display")
	fs.StringVar(&theme, "theme", "light", "light, dark or custom")
	fs.StringVar(&f.options.AccentColor, "accent", widget.DefaultAccentColor, "accent colour for the custom theme")
	fs.StringVar(&f.options.BackgroundColor, "background", widget.DefaultBackgroundColor, "background colour for the custom theme")
	fs.IntVar(&f.options.Padding, "padding", widget.DefaultPadding, "container padding in pixels")
	fs.BoolVar(&f.options.Responsive, "responsive", false, "stretch the container to the full width")
	fs.StringVar(&f.format, "format", "text", "output format: text or html")
	fs.BoolVar(&f.once, "once", false, "fetch once and exit")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}

	f.options.Theme = widget.ParseTheme(theme)
	if f.format != "text" && f.format != "html" {
		return cliFlags{}, fmt.Errorf("unknown format %q", f.format)
	}
	return f, nil
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal("Error parsing flags:", err)
	}

	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}
	if flags.baseURL != "" {
		cfg.Widget.BaseURL = flags.baseURL
	}

	opts := flags.options
	opts.Interval = cfg.Widget.UpdateInterval

	client := widget.NewClient(cfg.Widget.BaseURL, cfg.Widget.RequestTimeout)
	w := widget.New(client, opts)

	render := func(v widget.View) {
		if flags.format == "html" {
			out, err := widget.RenderHTML(v)
			if err != nil {
				log.Printf("Widget: %v", err)
				return
			}
			fmt.Println(out)
			return
		}
		fmt.Println(widget.RenderText(v))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if flags.once {
		err := w.Refresh(ctx)
		render(w.View())
		if err != nil {
			os.Exit(1)
		}
		return
	}

	w.OnUpdate(render)
	w.Start(ctx)

	<-ctx.Done()
	log.Println("Received shutdown signal, stopping widget...")
	w.Stop()
}
