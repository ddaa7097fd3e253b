// Package printer writes styled, human-readable CLI output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasklist/internal/core/styles"
)

type ctxKey struct{}

// Printer writes leveled messages to w.
type Printer struct {
	w io.Writer
}

// New returns a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.leveled(styles.CommandHeaderStyle, "•", format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.leveled(styles.SuccessStyle, "✓", format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.leveled(lipgloss.NewStyle().Foreground(styles.ColorWarning), "!", format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.leveled(styles.ErrorStyle, "✗", format, args...)
}

// Section writes a bold heading followed by a divider.
func (p *Printer) Section(title string) {
	p.Printf("%s", styles.CommandHeaderStyle.Render(title))
	p.Printf("%s", styles.DividerStyle.Render("──────────────────────────"))
}

func (p *Printer) leveled(style lipgloss.Style, icon, format string, args ...any) {
	p.Printf("%s %s", style.Render(icon), fmt.Sprintf(format, args...))
}
