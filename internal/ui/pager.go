package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// DetailOps shows record details in the ov pager
type DetailOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewDetailOps creates a new detail operations instance
func NewDetailOps() *DetailOps {
	return &DetailOps{}
}

// SetProgram sets the program reference for terminal management
func (d *DetailOps) SetProgram(p *tea.Program) {
	d.program = p
}

// ShowInPager shows content using the ov pager
func (d *DetailOps) ShowInPager(content string) error {
	if d.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := d.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = d.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
