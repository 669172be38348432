package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// banner is printed once the startup checks have passed.
var banner = []string{
	"==========================================================================================================",
	"   _  _   ____    _____                                                                                   ",
	"  | || | |  _ \\  |_   _|   _ _ __ __ _ _ __  _ __   ___  ___  __ _ _   _ _ __ _   _ ___   _ __ _____  __  ",
	"  | || |_| | | |   | || | | | '__/ _` | '_ \\| '_ \\ / _ \\/ __|/ _` | | | | '__| | | / __| | '__/ _ \\ \\/ /  ",
	"  |__   _| |_| |   | || |_| | | | (_| | | | | | | | (_) \\__ \\ (_| | |_| | |  | |_| \\__ \\ | | |  __/>  <   ",
	"     |_| |____/    |_| \\__, |_|  \\__,_|_| |_|_| |_|\\___/|___/\\__,_|\\__,_|_|   \\__,_|___/ |_|  \\___/_/\\_\\  ",
	"                       |___/                                                                              ",
	"==========================================================================================================",
}

// Console renders the dinosaur's coloured terminal output.  Colours are
// dropped automatically when the writer is not a terminal.
type Console struct {
	w     io.Writer
	white lipgloss.Style
	red   lipgloss.Style
	blue  lipgloss.Style
}

// NewConsole returns a console writing to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:     w,
		white: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		red:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		blue:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// Header prints the program banner.
func (c *Console) Header() {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.white.Render(strings.Join(banner, "\n")))
	fmt.Fprintln(c.w)
}

// Prompt asks the user to push a button.
func (c *Console) Prompt() {
	fmt.Fprintln(c.w, c.white.Render("Push the white button to activate the T. Rex."))
	fmt.Fprintln(c.w,
		c.white.Render("Push the ")+
			c.red.Render("red button ")+
			c.white.Render("or press Ctrl-C to ")+
			c.red.Render("stop ")+
			c.white.Render("the program."))
	fmt.Fprintln(c.w)
}

// Fact prints a dinosaur fun fact.
func (c *Console) Fact(fact string) {
	fmt.Fprintln(c.w, c.blue.Render("DINOSAUR FUN FACT:"))
	fmt.Fprintln(c.w, fact)
}

// Failure tells the user the program cannot continue and where to look.
func (c *Console) Failure(logFile string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.red.Render(fmt.Sprintf(
		"Could not run the program. Check the log (%s) for more information.", logFile)))
	fmt.Fprintln(c.w)
}

// Exiting prints the farewell line.
func (c *Console) Exiting() {
	fmt.Fprintln(c.w, c.white.Render("Exiting program."))
	fmt.Fprintln(c.w)
}
