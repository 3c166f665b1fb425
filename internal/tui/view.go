// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the client's console output: settings, stock, the
// generation outcome and the exit prompt. Results go to the standard writer,
// failures and warnings to the error writer.
//
// Colors are chosen per writer by lipgloss, so redirected output stays plain
// text.
package tui

import (
	"fmt"
	"io"

	"github.com/MKhiriev/xagcl/models"
	"github.com/charmbracelet/lipgloss"
)

// View writes operator-facing output.
type View struct {
	out    io.Writer
	errOut io.Writer
	styles styles
}

// New creates a View writing results to out and failures to errOut.
func New(out, errOut io.Writer) *View {
	return &View{
		out:    out,
		errOut: errOut,
		styles: newStyles(lipgloss.NewRenderer(out), lipgloss.NewRenderer(errOut)),
	}
}

// Settings prints the resolved selection.
func (v *View) Settings(selection models.Selection) {
	v.println(v.out, v.styles.title, "? Settings:")
	v.println(v.out, v.styles.plain, fmt.Sprintf("┌ → Test mode: %t", selection.TestMode))
	v.println(v.out, v.styles.plain, "└ → Account type: "+selection.Type.String())
	fmt.Fprintln(v.out)
}

// Stock prints the three stock counts. No other numbers appear in the
// output.
func (v *View) Stock(stock models.StockSnapshot) {
	v.println(v.out, v.styles.title, "? Stock:")
	v.println(v.out, v.styles.plain, fmt.Sprintf("┌ → Total accounts: %d", stock.Total))
	v.println(v.out, v.styles.plain, fmt.Sprintf("│ → Regular accounts: %d", stock.Normal))
	v.println(v.out, v.styles.plain, fmt.Sprintf("└ → xag+ accounts: %d", stock.Plus))
	fmt.Fprintln(v.out)
}

// Account prints the success banner with the credentials.
func (v *View) Account(account models.GeneratedAccount) {
	v.println(v.out, v.styles.success, "✔  Account created!")
	v.println(v.out, v.styles.success, "┌ → Email: "+account.Email)
	v.println(v.out, v.styles.success, "│ → Password: "+account.Password)
	v.println(v.out, v.styles.success, "└ → Username: "+account.Username)
}

// Rejection prints the generator's refusal.
func (v *View) Rejection(rejection models.Rejection) {
	v.println(v.errOut, v.styles.failure, "✘ Failed to generate an account: "+rejection.Message)
}

// Failure prints an error that ended the run.
func (v *View) Failure(err error) {
	v.println(v.errOut, v.styles.failure, "✘ Error: "+err.Error())
}

// Warning prints a non-fatal problem.
func (v *View) Warning(message string, err error) {
	v.println(v.errOut, v.styles.warning, fmt.Sprintf("⚠ %s: %v", message, err))
}

// Notice prints an informational line.
func (v *View) Notice(message string) {
	v.println(v.out, v.styles.help, message)
}

// Pause prints the exit prompt shown while the process idles.
func (v *View) Pause() {
	fmt.Fprintln(v.out)
	v.println(v.out, v.styles.help, "Press ctrl+c to exit")
}

// println renders one line at a time; lipgloss pads multi-line blocks to a
// common width.
func (v *View) println(w io.Writer, style lipgloss.Style, line string) {
	fmt.Fprintln(w, style.Render(line))
}
