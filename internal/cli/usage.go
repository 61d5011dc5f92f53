package cli

import "github.com/AndreyAkinshin/gnu-json-result/internal/output"

func printUsage(w *output.Writer) {
	w.HelpTitle("gnu-json-result - collect GNU test-suite logs into one JSON document")
	w.HelpSection("Usage:")
	w.Println("  gnu-json-result [flags] <gnu_test_directory>")
	w.HelpSection("Description:")
	w.Println("  Scans the directory for *.log files. Automake per-test logs are placed")
	w.Println("  under their directory path; Autotest testsuite.log lines are placed at")
	w.Println("  the root as \"test N\". The result is written to stdout with sorted keys.")

	const width = 18
	w.HelpSection("Flags:")
	w.HelpFlag("--format=<fmt>", "Output format: json (default) or yaml", width)
	w.HelpFlag("--config=<file>", "JSON config file (aggregate_log, extension, tail_bytes, format)", width)
	w.HelpFlag("--summary", "Print status totals to stderr", width)
	w.HelpFlag("-q, --quiet", "Suppress per-file errors", width)
	w.HelpFlag("-v, --verbose", "Trace each log on stderr", width)
	w.HelpFlag("-h, --help", "Show this help", width)
	w.HelpFlag("--version", "Show version", width)

	w.HelpSection("Examples:")
	w.HelpExample("gnu-json-result gnu/tests > results.json", "Convert a finished GNU test run")
	w.HelpExample("gnu-json-result --format=yaml --summary gnu/tests", "YAML output plus totals")
	w.Println("")
}
