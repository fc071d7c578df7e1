// Command relayctl sends text to a cliprelay server from the terminal.
//
//	relayctl -provider grok -text "transcrição..."
//	echo "transcrição" | relayctl -post
//	relayctl -quick
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mandalnilabja/cliprelay/internal/client"
	"github.com/mandalnilabja/cliprelay/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("relayctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	baseURL := fs.String("url", envOr("CLIPRELAY_URL", "http://localhost:8080"), "Relay server URL")
	providerID := fs.String("provider", client.DefaultProvider, "Provider id (gemini, grok)")
	text := fs.String("text", "", "Text to send (default: read stdin)")
	usePOST := fs.Bool("post", false, "Send as POST JSON body instead of GET query")
	quick := fs.Bool("quick", false, "Use the quick clip-suggestion prompt")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "relayctl %s\n", version.Version)
		return nil
	}

	c := client.NewController(client.New(*baseURL, nil), client.NewTextSurface(stdout, stderr))
	c.SelectProvider(*providerID)

	switch {
	case *quick:
		c.FillQuickSuggestion()
	case *text != "":
		c.SetText(*text)
	default:
		input, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		c.SetText(string(input))
	}

	mode := client.TransportGET
	if *usePOST {
		mode = client.TransportPOST
	}

	err := c.Generate(ctx, mode)
	if errors.Is(err, client.ErrEmptyText) {
		return errors.New("no text to send")
	}
	return err
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
