package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/habits/internal/domain"
)

const summaryDivider = "---------------------------"

// Renderer prints menu and summary output, styled when out is a terminal.
type Renderer struct {
	out   io.Writer
	title lipgloss.Style
	habit lipgloss.Style
	good  lipgloss.Style
	warn  lipgloss.Style
}

// NewRenderer binds styles to out's color profile.
func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		habit: r.NewStyle().Bold(true),
		good:  r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Menu prints the main menu.
func (r *Renderer) Menu() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.title.Render("📋 Habit Strength Tracker"))
	for i, c := range menuOrder {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, c.Label())
	}
}

// HabitList prints the 1-indexed habit names.
func (r *Renderer) HabitList(habits []*domain.Habit) {
	for i, h := range habits {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, h.Name())
	}
}

// Summary prints one habit report block.
func (r *Renderer) Summary(s domain.Summary) {
	fmt.Fprintln(r.out, r.habit.Render("Habit: "+s.Name))
	fmt.Fprintf(r.out, "Description: %s\n", s.Description)
	fmt.Fprintf(r.out, "Frequency: %s\n", s.Frequency)
	fmt.Fprintf(r.out, "Strength: %s%%\n", s.StrengthText())
	fmt.Fprintf(r.out, "Streak: %d days\n", s.Streak)
	feedback := s.Feedback
	if domain.TierFor(s.Strength) == domain.TierGreat {
		feedback = r.good.Render(feedback)
	}
	fmt.Fprintf(r.out, "Feedback: %s\n", feedback)
	fmt.Fprintln(r.out, summaryDivider)
}

// Success prints a confirmation line.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, "✅ "+msg)
}

// Warning prints a non-fatal notice.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.out, r.warn.Render("⚠️ "+msg))
}

// Failure prints an error line.
func (r *Renderer) Failure(msg string) {
	fmt.Fprintln(r.out, "❌ "+msg)
}
