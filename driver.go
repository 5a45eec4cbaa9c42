package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fortio.org/safecast"

	"github.com/quangtuyen1993/hardcoded-strings/internal/config"
	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/rules"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// dumpSuffix marks front-end dump documents.
const dumpSuffix = ".ast.json"

// analysis bundles the outcome of one run over a set of dump documents.
type analysis struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
}

// analyzeTargets runs the enabled rules over every dump named by args, which
// may mix dump files and directories searched recursively.
func analyzeTargets(args []string, cfg config.Config, progress io.Writer) (*analysis, error) {
	dumps, err := collectDumps(args)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSet()
	bag := diag.NewBag(cfg.MaxDiagnostics)
	ruleset := enabledRules(cfg)

	for _, dump := range dumps {
		if bag.Full() {
			break
		}

		data, err := os.ReadFile(dump) // #nosec G304 -- dump path was collected from the arguments
		if err != nil {
			return nil, fmt.Errorf("read dump: %w", err)
		}

		before := bag.Len()
		if err := analyzeDocument(fileSet, bag, ruleset, data, filepath.Dir(dump), false); err != nil {
			return nil, fmt.Errorf("%s: %w", dump, err)
		}
		fmt.Fprintf(progress, "checked %s: %d findings\n", dump, bag.Len()-before)
	}

	bag.Sort()
	bag.Dedup()
	return &analysis{FileSet: fileSet, Bag: bag}, nil
}

// analyzeDocument decodes one dump, registers its source text and feeds the
// tree to the rules. Virtual documents (tests, stdin) never touch the disk.
func analyzeDocument(fileSet *source.FileSet, bag *diag.Bag, ruleset []rules.Rule, data []byte, baseDir string, virtual bool) error {
	lenFiles, err := safecast.Conv[uint32](fileSet.Len())
	if err != nil {
		return fmt.Errorf("file count overflow: %w", err)
	}

	// Add below assigns IDs sequentially, so the document's ID is known
	// before its text is registered.
	doc, err := dartast.Decode(data, source.FileID(lenFiles))
	if err != nil {
		return err
	}

	path := doc.Path
	flags := source.FileFlags(0)
	if virtual {
		flags = source.FileVirtual
	} else {
		path = resolveSourcePath(baseDir, doc.Path)
	}
	id := fileSet.Add(path, []byte(doc.Text), flags)

	ctx := &rules.Context{
		File:     fileSet.Get(id),
		Types:    doc.Types,
		Reporter: diag.BagReporter{Bag: bag},
		Stop:     bag.Full,
	}
	rules.RunFile(ctx, doc.Unit, ruleset)
	return nil
}

// enabledRules translates the config switches into the rule set, preserving
// the canonical order.
func enabledRules(cfg config.Config) []rules.Rule {
	out := make([]rules.Rule, 0, 2)
	for _, r := range rules.Default() {
		switch r.Code().ID() {
		case "hardcoded_strings":
			if cfg.StringsEnabled() {
				out = append(out, r)
			}
		case "hardcoded_assets":
			if cfg.AssetsEnabled() {
				out = append(out, r)
			}
		default:
			out = append(out, r)
		}
	}
	return out
}

// collectDumps expands the argument list into a sorted list of dump files.
func collectDumps(args []string) ([]string, error) {
	seen := make(map[string]bool)
	dumps := make([]string, 0, len(args))

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			if !strings.HasSuffix(arg, dumpSuffix) {
				return nil, fmt.Errorf("%s is not a %s dump", arg, dumpSuffix)
			}
			if !seen[arg] {
				seen[arg] = true
				dumps = append(dumps, arg)
			}
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, dumpSuffix) {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				dumps = append(dumps, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	if len(dumps) == 0 {
		return nil, fmt.Errorf("no %s dumps found", dumpSuffix)
	}
	sort.Strings(dumps)
	return dumps, nil
}

// resolveSourcePath maps the project-relative path of a dump document onto
// the filesystem, anchoring at the dump's directory and walking up from
// there. Fixes are skipped later when the file cannot be found.
func resolveSourcePath(baseDir, docPath string) string {
	if filepath.IsAbs(docPath) {
		return docPath
	}

	dir := baseDir
	for {
		candidate := filepath.Join(dir, docPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return docPath
		}
		dir = parent
	}
}
