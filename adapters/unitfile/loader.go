// Package unitfile loads unit, prefix, constant and quantity-kind
// definitions from HCL files into a registry.
//
// A unit file looks like:
//
//	prefix "Ki" {
//	  name   = "kibi"
//	  factor = 1024
//	}
//
//	base "bit" {
//	  description = "Bit"
//	  prefixed    = true
//	}
//
//	unit "B" {
//	  value       = 8 * bit
//	  description = "Byte"
//	  prefixed    = true
//	}
//
//	kind "information" {
//	  unit = bit
//	}
//
// Blocks are registered by type in the order prefix, base, unit, constant,
// kind. Units and constants may refer to each other within their block
// type regardless of the order they appear in.
package unitfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"go.uber.org/zap"

	"unties/core/expression"
	"unties/core/quantity"
	"unties/core/registry"
	uerrors "unties/internal/errors"
)

// Extension is the file extension picked up when loading a directory
const Extension = ".hcl"

// Summary counts what a load registered
type Summary struct {
	Files     []string
	Prefixes  int
	Units     int
	Constants int
	Kinds     int
}

func (s *Summary) add(o *Summary) {
	s.Files = append(s.Files, o.Files...)
	s.Prefixes += o.Prefixes
	s.Units += o.Units
	s.Constants += o.Constants
	s.Kinds += o.Kinds
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger sets the loader's logger
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader parses unit files and registers their definitions
type Loader struct {
	parser *hclparse.Parser
	logger *zap.Logger
}

// NewLoader creates a new unit file loader
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		parser: hclparse.NewParser(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load registers every unit file at the given paths. A directory
// contributes its *.hcl files in lexical order; subdirectories are walked.
// Loading stops at the first failing file; files loaded before it stay
// registered.
func (l *Loader) Load(reg *registry.Registry, paths ...string) (*Summary, error) {
	total := &Summary{}
	for _, path := range paths {
		files, err := discover(path)
		if err != nil {
			return total, err
		}
		for _, file := range files {
			s, err := l.LoadFile(reg, file)
			if s != nil {
				total.add(s)
			}
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// LoadFile registers the definitions of a single unit file
func (l *Loader) LoadFile(reg *registry.Registry, path string) (*Summary, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, uerrors.Config(fmt.Sprintf("failed to read unit file %s", path), err)
	}
	return l.LoadSource(reg, src, path)
}

// LoadSource registers the definitions in src. filename is used in
// diagnostics only. A file is loaded as a whole: when any definition
// fails, the registry is rolled back to its state before the call.
func (l *Loader) LoadSource(reg *registry.Registry, src []byte, filename string) (*Summary, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, uerrors.Parsing(fmt.Sprintf("failed to parse unit file %s", filename), diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, uerrors.Parsing(fmt.Sprintf("failed to decode unit file %s", filename), diags)
	}

	if err := validate(&parsed); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	summary := &Summary{Files: []string{filename}}
	snapshot := reg.Snapshot()
	if err := l.register(reg, &parsed, summary); err != nil {
		// a frozen registry refused every write, so there is nothing to undo
		_ = reg.Rollback(snapshot)
		l.logger.Warn("unit file rejected", zap.String("file", filename), zap.Error(err))
		return &Summary{}, fmt.Errorf("%s: %w", filename, err)
	}

	l.logger.Info("unit file loaded",
		zap.String("file", filename),
		zap.Int("prefixes", summary.Prefixes),
		zap.Int("units", summary.Units),
		zap.Int("constants", summary.Constants),
		zap.Int("kinds", summary.Kinds),
	)
	return summary, nil
}

func (l *Loader) register(reg *registry.Registry, f *hclFile, summary *Summary) error {
	for _, p := range f.Prefixes {
		if err := reg.AddPrefix(registry.Prefix{Symbol: p.Symbol, Name: p.Name, Factor: p.Factor}); err != nil {
			return fmt.Errorf("prefix %q: %w", p.Symbol, err)
		}
		summary.Prefixes++
	}

	for _, b := range f.Bases {
		if _, err := reg.Base(b.Symbol, b.Description, unitOptions(b.Prefixed)...); err != nil {
			return fmt.Errorf("base unit %q: %w", b.Symbol, err)
		}
		summary.Units++
	}

	units := make(map[string]*hclUnit, len(f.Units))
	defs := make([]definition, 0, len(f.Units))
	for _, u := range f.Units {
		units[u.Symbol] = u
		defs = append(defs, definition{symbol: u.Symbol, value: u.Value})
	}
	err := resolve(reg, defs, func(symbol string, q quantity.Quantity) error {
		u := units[symbol]
		if u.Factor != nil {
			q = q.Scale(*u.Factor)
		}
		if _, err := reg.Derived(q, symbol, u.Description, unitOptions(u.Prefixed)...); err != nil {
			return fmt.Errorf("unit %q: %w", symbol, err)
		}
		l.logger.Debug("unit defined", zap.String("symbol", symbol), zap.Stringer("value", q))
		summary.Units++
		return nil
	})
	if err != nil {
		return err
	}

	constants := make(map[string]*hclConstant, len(f.Constants))
	defs = make([]definition, 0, len(f.Constants))
	for _, c := range f.Constants {
		constants[c.Symbol] = c
		defs = append(defs, definition{symbol: c.Symbol, value: c.Value})
	}
	err = resolve(reg, defs, func(symbol string, q quantity.Quantity) error {
		if _, err := reg.Constant(q, symbol, constants[symbol].Description); err != nil {
			return fmt.Errorf("constant %q: %w", symbol, err)
		}
		summary.Constants++
		return nil
	})
	if err != nil {
		return err
	}

	for _, k := range f.Kinds {
		q, err := expression.Evaluate(k.Unit, reg)
		if err != nil {
			return fmt.Errorf("kind %q: %w", k.Label, err)
		}
		if err := reg.AddQuantityKind(q, k.Label); err != nil {
			return fmt.Errorf("kind %q: %w", k.Label, err)
		}
		summary.Kinds++
	}
	return nil
}

// resolve evaluates defs in dependency order, passing each value to
// define once every symbol it refers to is known to reg.
func resolve(reg *registry.Registry, defs []definition, define func(string, quantity.Quantity) error) error {
	pending := defs
	for len(pending) > 0 {
		var deferred []definition
		for _, d := range pending {
			if len(expression.Missing(d.value, reg)) > 0 {
				deferred = append(deferred, d)
				continue
			}
			q, err := expression.Evaluate(d.value, reg)
			if err != nil {
				return fmt.Errorf("%q: %w", d.symbol, err)
			}
			if err := define(d.symbol, q); err != nil {
				return err
			}
		}

		if len(deferred) == len(pending) {
			d := deferred[0]
			missing := expression.Missing(d.value, reg)
			return uerrors.NotFound("unit", strings.Join(missing, ", ")).
				WithContext("symbol", d.symbol).
				WithContext("range", d.value.Range().String())
		}
		pending = deferred
	}
	return nil
}

// validate checks labels and function names before anything is registered
func validate(f *hclFile) error {
	seen := make(map[string]hcl.Range)
	check := func(kind, symbol string, rng hcl.Range) error {
		if !hclsyntax.ValidIdentifier(symbol) {
			return uerrors.Input(fmt.Sprintf("%s %q is not a valid identifier", kind, symbol))
		}
		if prev, ok := seen[symbol]; ok {
			return uerrors.Duplicate(kind, symbol).WithContext("previous", prev.String())
		}
		seen[symbol] = rng
		return nil
	}
	calls := func(kind, symbol string, expr hcl.Expression) error {
		if unknown := expression.UnknownCalls(expr); len(unknown) > 0 {
			return uerrors.NotFound("function", strings.Join(unknown, ", ")).
				WithContext(kind, symbol)
		}
		return nil
	}

	for _, b := range f.Bases {
		if err := check("base unit", b.Symbol, hcl.Range{}); err != nil {
			return err
		}
	}
	for _, u := range f.Units {
		if err := check("unit", u.Symbol, u.Value.Range()); err != nil {
			return err
		}
		if err := calls("unit", u.Symbol, u.Value); err != nil {
			return err
		}
	}
	for _, c := range f.Constants {
		if err := check("constant", c.Symbol, c.Value.Range()); err != nil {
			return err
		}
		if err := calls("constant", c.Symbol, c.Value); err != nil {
			return err
		}
	}
	for _, k := range f.Kinds {
		if err := calls("kind", k.Label, k.Unit); err != nil {
			return err
		}
	}
	return nil
}

func unitOptions(prefixed bool) []registry.UnitOption {
	if prefixed {
		return []registry.UnitOption{registry.Prefixed()}
	}
	return nil
}

func discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, uerrors.Config(fmt.Sprintf("unit file path %s", path), err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, Extension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, uerrors.Config(fmt.Sprintf("failed to walk %s", path), err)
	}
	sort.Strings(files)
	return files, nil
}
