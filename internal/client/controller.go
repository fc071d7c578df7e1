package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mandalnilabja/cliprelay/internal/types"
)

// Status log messages.
const (
	LogReady        = "Frontend pronto — escolha a API e cole o texto."
	LogEmptyText    = "Coloque um texto / transcrição no campo."
	LogQuickFilled  = "Texto preenchido com sugestão rápida. Clique em Gerar."
	LogInFlight     = "Requisição em andamento, aguarde a resposta."
	LogSelectFile   = "Selecione um arquivo para enviar."
	LogUploadHint   = "Upload local detectado. Use seu storage (S3/Cloud) ou configure backend para receber o arquivo."
	DefaultProvider = types.ProviderGemini
)

// Controller errors. Both are reported on the status log before returning.
var (
	ErrEmptyText = errors.New("empty text")
	ErrInFlight  = errors.New("request already in flight")
)

// UIState is the controller's ephemeral view state.
type UIState struct {
	Provider string
	Text     string
	Result   string
	Log      string
}

// Controller owns the interaction: provider choice, the text buffer and the
// rendering of whatever the relay returns. It is provider agnostic.
type Controller struct {
	caller  Caller
	surface Surface

	mu        sync.Mutex
	state     UIState
	inFlight  bool
	hasUpload bool
}

// NewController attaches a controller to surface, building a stdout/stderr
// TextSurface when surface is nil.
func NewController(caller Caller, surface Surface) *Controller {
	if surface == nil {
		surface = NewTextSurface(os.Stdout, os.Stderr)
	}
	c := &Controller{
		caller:  caller,
		surface: surface,
		state:   UIState{Provider: DefaultProvider},
	}
	c.log(LogReady)
	return c
}

// State returns a copy of the current UI state.
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectProvider switches the target relay endpoint. Empty means gemini.
func (c *Controller) SelectProvider(provider string) {
	if provider == "" {
		provider = DefaultProvider
	}
	c.mu.Lock()
	c.state.Provider = provider
	c.mu.Unlock()
}

// SetText replaces the text buffer.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	c.state.Text = text
	c.mu.Unlock()
}

// FillQuickSuggestion pre-fills the buffer with the clip-timestamp prompt.
// It makes no network call.
func (c *Controller) FillQuickSuggestion() {
	c.SetText(types.QuickSuggestion)
	c.log(LogQuickFilled)
}

// Generate sends the trimmed text buffer to the selected provider using
// mode. Any HTTP response, whatever its status, is rendered to the result
// pane; transport failures only reach the log.
func (c *Controller) Generate(ctx context.Context, mode Transport) error {
	c.mu.Lock()
	provider := c.state.Provider
	text := strings.TrimSpace(c.state.Text)
	if text == "" {
		c.mu.Unlock()
		c.log(LogEmptyText)
		return ErrEmptyText
	}
	if c.inFlight {
		c.mu.Unlock()
		c.log(LogInFlight)
		return ErrInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	endpoint := Endpoint(provider)
	c.log(fmt.Sprintf("Chamando %s (%s)...", endpoint, mode))

	resp, err := c.caller.Call(ctx, mode, provider, text)
	if err != nil {
		c.log("Erro fetch: " + err.Error())
		return err
	}

	c.showResult(Render(resp.Body))
	c.log(fmt.Sprintf("%s retornou (status %d)", endpoint, resp.StatusCode))
	return nil
}

// EnableUpload marks the surface as having an upload control.
func (c *Controller) EnableUpload() {
	c.mu.Lock()
	c.hasUpload = true
	c.mu.Unlock()
}

// Upload reacts to the upload control. No backend receives files, so it
// only logs a hint; without an upload control it does nothing.
func (c *Controller) Upload(file string) {
	c.mu.Lock()
	enabled := c.hasUpload
	c.mu.Unlock()
	if !enabled {
		return
	}
	if file == "" {
		c.log(LogSelectFile)
		return
	}
	c.log(LogUploadHint)
}

func (c *Controller) log(line string) {
	c.mu.Lock()
	c.state.Log = line
	c.mu.Unlock()
	c.surface.ShowLog(line)
}

func (c *Controller) showResult(text string) {
	c.mu.Lock()
	c.state.Result = text
	c.mu.Unlock()
	c.surface.ShowResult(text)
}
