package output

// Help text goes to stdout and is never colored: the usage line doubles as
// the error message for a wrong argument count.

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	w.Println("%s", title)
}

// HelpSection formats a section header.
func (w *Writer) HelpSection(title string) {
	w.Println("")
	w.Println("%s", title)
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	w.Println("  %-*s  %s", width, name, description)
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	w.Println("  %s", command)
	if description != "" {
		w.Println("      %s", description)
	}
}
