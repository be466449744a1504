package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rubi-browser/icongen/internal/render"
)

// Asset set required by the extension manifest.
var (
	// Sizes are the icon edge lengths, generated in this order.
	Sizes = []int{16, 48, 128}

	// OutputDir receives every generated asset.
	OutputDir = filepath.Join("assets", "icons")

	// InstallURL is encoded into the install-hint QR asset.
	// Empty skips that asset.
	InstallURL = "https://github.com/rubi-browser/rubi-extension#install"
)

type App struct {
	Sizes      []int
	OutputDir  string
	InstallURL string
	Renderer   *render.IconRenderer
	Logger     Logger
	Out        io.Writer
}

func New(renderer *render.IconRenderer) *App {
	return &App{
		Sizes:      Sizes,
		OutputDir:  OutputDir,
		InstallURL: InstallURL,
		Renderer:   renderer,
		Logger:     NoopLogger{},
		Out:        os.Stdout,
	}
}

// Run generates every configured icon size in order, then the optional
// install-hint QR asset, and prints the confirmation lines. Files
// already on disk are overwritten; files written before a failure are
// left in place.
func (app *App) Run(ctx context.Context) error {
	if err := os.MkdirAll(app.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	app.Logger.Infof("app", "output dir ready: %s", app.OutputDir)

	for _, size := range app.Sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		canvas := app.Renderer.RenderIcon(size)
		path := filepath.Join(app.OutputDir, fmt.Sprintf("icon%d.png", size))
		if err := writePNG(path, canvas); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(app.Out, "Created %s\n", path)
		app.Logger.Infof("app", "icon %dx%d written to %s", size, size, path)
	}

	if err := app.writeInstallQR(); err != nil {
		return err
	}

	fmt.Fprintln(app.Out)
	fmt.Fprintln(app.Out, "Icons created successfully!")
	fmt.Fprintln(app.Out, "You can now load the extension in Chrome.")
	return nil
}

// writeInstallQR emits the supplemental QR asset. A QR encoding error
// only costs the asset; the icon set is the contract.
func (app *App) writeInstallQR() error {
	card, err := app.Renderer.InstallQRCard(app.InstallURL, 0)
	if err != nil {
		app.Logger.Errorf("qr", "install QR skipped: %v", err)
		return nil
	}
	if card == nil {
		return nil
	}
	path := filepath.Join(app.OutputDir, "install-qr.png")
	if err := writePNG(path, card); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	app.Logger.Infof("qr", "install QR written to %s", path)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
