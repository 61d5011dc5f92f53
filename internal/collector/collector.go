// Package collector walks a GNU test directory and assembles the result tree.
package collector

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AndreyAkinshin/gnu-json-result/internal/errors"
	"github.com/AndreyAkinshin/gnu-json-result/internal/model"
	"github.com/AndreyAkinshin/gnu-json-result/internal/output"
	"github.com/AndreyAkinshin/gnu-json-result/internal/testparser"
)

// Options configures a Collector. Zero values select the GNU defaults.
type Options struct {
	Extension    string
	AggregateLog string
	TailBytes    int64
}

// Stats counts what a Collect call did.
type Stats struct {
	Autotest int // testsuite.log files read
	Automake int // individual logs read
	Recorded int // individual logs that produced a status
	Failed   int // logs that could not be processed
}

// Collector scans one root directory.
type Collector struct {
	root       string
	classifier *testparser.Classifier
	tailBytes  int64
	out        *output.Writer
	stats      Stats

	walkDir func(root string, fn fs.WalkDirFunc) error
}

// New creates a Collector for root. Per-file diagnostics go to w.
func New(root string, opts Options, w *output.Writer) *Collector {
	classifier := testparser.NewClassifier()
	if opts.Extension != "" {
		classifier.Extension = opts.Extension
	}
	if opts.AggregateLog != "" {
		classifier.AutotestName = opts.AggregateLog
	}
	tail := opts.TailBytes
	if tail <= 0 {
		tail = testparser.DefaultTailWindow
	}
	return &Collector{
		root:       root,
		classifier: classifier,
		tailBytes:  tail,
		out:        w,
		walkDir:    filepath.WalkDir,
	}
}

// CheckRoot returns an error unless root names an existing directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return errors.NotFound("Directory %s does not exist.", root)
	}
	return nil
}

// Stats returns the counters of the last Collect call.
func (c *Collector) Stats() Stats {
	return c.stats
}

// Collect walks the root and returns the result tree. Per-file failures
// and unreadable directories are reported and skipped; only cancellation
// is returned as an error.
func (c *Collector) Collect(ctx context.Context) (model.Tree, error) {
	c.stats = Stats{}
	tree := model.New()

	// WalkDir does not follow a symlinked root unless it ends in a separator.
	walkRoot := c.root
	if info, err := os.Lstat(c.root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		walkRoot = c.root + string(filepath.Separator)
	}

	err := c.walkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == walkRoot {
				c.out.FileError(errors.FileError("Error scanning directory", c.root, walkErr))
			} else {
				c.out.Debug("skipping %s: %v", path, walkErr)
			}
			return nil
		}
		if d.IsDir() || !c.classifier.IsLog(d.Name()) {
			return nil
		}

		kind := c.classifier.Kind(d.Name())
		c.out.Debug("%s: %s log", path, kind)
		switch kind {
		case testparser.KindAutotest:
			c.stats.Autotest++
			c.collectAutotest(tree, path)
		default:
			c.stats.Automake++
			c.collectAutomake(tree, path, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan "+c.root)
	}
	return tree, nil
}

// collectAutotest records every subtest of a testsuite.log at the tree root,
// regardless of where the log lives.
func (c *Collector) collectAutotest(tree model.Tree, path string) {
	results, err := c.readAutotest(path)
	if err != nil {
		c.stats.Failed++
		c.out.FileError(errors.FileError("Error processing testsuite.log", path, err))
		return
	}
	for _, r := range results {
		tree.SetAutotest(r)
	}
}

func (c *Collector) readAutotest(path string) ([]testparser.AutotestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return testparser.ParseAutotest(f)
}

// collectAutomake records an individual log under its directory path. The
// directory levels are created before the log is read.
func (c *Collector) collectAutomake(tree model.Tree, path, name string) {
	node := tree.Descend(c.segments(path))

	status, ok, err := c.readAutomake(path)
	if err != nil {
		c.stats.Failed++
		c.out.FileError(errors.FileError("Error processing file", path, err))
		return
	}
	if !ok {
		c.out.Debug("%s: no status line", path)
		return
	}
	c.stats.Recorded++
	c.out.Debug("%s: %s", path, status)
	node.SetStatus(name, status)
}

func (c *Collector) readAutomake(path string) (testparser.Status, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = f.Close() }()
	return testparser.ParseAutomake(f, c.tailBytes)
}

// segments returns the directory components from the root to path's parent.
func (c *Collector) segments(path string) []string {
	rel, err := filepath.Rel(c.root, filepath.Dir(path))
	if err != nil || rel == "." {
		return nil
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}
