// Package plugin shows ARM64_SYSREG operands as symbolic register names.
//
// A Plugin owns everything it installs on a host: the register enum and a
// maturity hook. Init installs them, Term takes them away again. Once a
// function reaches MaturityBuilt the hook walks its tree, and every
// ARM64_SYSREG(op0, op1, CRn, CRm, op2) call with a known encoding is
// reduced to a single enum constant.
package plugin

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/hexnight/pseudo"
	"github.com/sarchlab/hexnight/rewrite"
	"github.com/sarchlab/hexnight/sysreg"
)

// EnumName is the enum the register names are registered under.
const EnumName = "ARM64_SYSREG_aenum"

// Errors returned by the lifecycle methods.
var (
	ErrUnsupportedHost  = errors.New("host is not a 64-bit ARM decompiler")
	ErrAlreadyInstalled = errors.New("plugin already installed")
	ErrNotInstalled     = errors.New("plugin not installed")
)

// Host is the decompiler the plugin attaches to.
type Host interface {
	sim.Hookable
	Arch() string
	Bits() int
	Enums() *pseudo.Enums
}

// Stats counts what the plugin has done since Init.
type Stats struct {
	Functions uint64 // functions visited
	Rewritten uint64 // calls replaced by an enum constant
	Missed    uint64 // ARM64_SYSREG calls with an unknown encoding
	Faults    uint64 // visits that panicked and were skipped
}

// Plugin is the per-host state of the rewrite.
type Plugin struct {
	table    *sysreg.Table
	resolver rewrite.Resolver
	enumName string
	logger   *slog.Logger

	mu   sync.Mutex
	host Host
	hook *maturityHook
	pass *rewrite.Pass

	functions atomic.Uint64
	rewritten atomic.Uint64
	missed    atomic.Uint64
	faults    atomic.Uint64
}

// Option is a functional option for configuring the Plugin.
type Option func(*Plugin)

// WithTable sets the register table used for the enum and for lookups.
func WithTable(t *sysreg.Table) Option {
	return func(p *Plugin) {
		p.table = t
	}
}

// WithResolver overrides the lookups done by the rewrite pass. The enum is
// still filled from the table.
func WithResolver(r rewrite.Resolver) Option {
	return func(p *Plugin) {
		p.resolver = r
	}
}

// WithEnumName sets the enum type name.
func WithEnumName(name string) Option {
	return func(p *Plugin) {
		p.enumName = name
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		p.logger = l
	}
}

// New creates an uninstalled plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		table:    sysreg.Default(),
		enumName: EnumName,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.resolver == nil {
		p.resolver = p.table
	}
	p.hook = &maturityHook{plugin: p}

	return p
}

// Init registers the register enum with h and installs the maturity hook.
// It fails with ErrUnsupportedHost unless h is a 64-bit ARM host.
func (p *Plugin) Init(h Host) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.host != nil {
		return ErrAlreadyInstalled
	}
	if h.Arch() != "arm64" || h.Bits() != 64 {
		p.logger.Warn("plugin skipped", "arch", h.Arch(), "bits", h.Bits())
		return fmt.Errorf("%w: %s/%d", ErrUnsupportedHost, h.Arch(), h.Bits())
	}

	enum, err := h.Enums().Add(p.enumName)
	if err != nil {
		return fmt.Errorf("failed to register enum: %w", err)
	}

	var addErr error
	p.table.Each(func(k sysreg.Key, name string) bool {
		addErr = enum.AddMember(name, uint64(k))
		return addErr == nil
	})
	if addErr != nil {
		h.Enums().Remove(p.enumName)
		return fmt.Errorf("failed to register enum member: %w", addErr)
	}

	p.pass = rewrite.NewPass(p.resolver, p.enumName)
	p.hook.domain.Store(&hookDomain{host: h})
	if !slices.Contains(h.Hooks(), sim.Hook(p.hook)) {
		h.AcceptHook(p.hook)
	}
	p.host = h

	p.functions.Store(0)
	p.rewritten.Store(0)
	p.missed.Store(0)
	p.faults.Store(0)

	p.logger.Info("plugin installed", "enum", p.enumName, "members", enum.Len())

	return nil
}

// Run does nothing; the plugin works through its hook.
func (p *Plugin) Run() {}

// Term deactivates the hook and removes the enum from the host.
func (p *Plugin) Term() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.host == nil {
		return ErrNotInstalled
	}

	// sim.Hookable has no way to detach a hook, so it is disarmed instead
	// and armed again by the next Init.
	p.hook.domain.Store(nil)
	p.host.Enums().Remove(p.enumName)
	p.host = nil

	p.logger.Info("plugin removed", "enum", p.enumName)

	return nil
}

// Installed reports whether Init has succeeded without a matching Term.
func (p *Plugin) Installed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.host != nil
}

// Stats returns the counters since the last Init.
func (p *Plugin) Stats() Stats {
	return Stats{
		Functions: p.functions.Load(),
		Rewritten: p.rewritten.Load(),
		Missed:    p.missed.Load(),
		Faults:    p.faults.Load(),
	}
}

// maturityHook is the plugin's only hook. It is attached to a host at most
// once and acts only while armed for that host.
type maturityHook struct {
	plugin *Plugin
	domain atomic.Pointer[hookDomain]
}

type hookDomain struct {
	host sim.Hookable
}

// Func implements sim.Hook.
func (h *maturityHook) Func(ctx sim.HookCtx) {
	d := h.domain.Load()
	if d == nil || d.host != ctx.Domain || ctx.Pos != pseudo.HookPosMaturity {
		return
	}
	if m, ok := ctx.Detail.(pseudo.Maturity); !ok || m != pseudo.MaturityBuilt {
		return
	}
	fn, ok := ctx.Item.(*pseudo.Func)
	if !ok {
		return
	}

	h.plugin.visitFunc(fn)
}

func (p *Plugin) visitFunc(fn *pseudo.Func) {
	p.functions.Add(1)

	var rewritten, missed uint64
	fn.Walk(pseudo.VisitorFunc(func(e pseudo.Expr) bool {
		switch p.visitExpr(fn, e) {
		case outcomeRewritten:
			rewritten++
		case outcomeMissed:
			missed++
		}
		return true
	}))

	p.rewritten.Add(rewritten)
	p.missed.Add(missed)

	p.logger.Debug("function visited",
		"func", fn.Name,
		"rewritten", rewritten,
		"missed", missed)
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeRewritten
	outcomeMissed
	outcomeFault
)

// visitExpr rewrites e if it is a resolvable ARM64_SYSREG call. A panic
// while doing so is logged and the node is left as it is.
func (p *Plugin) visitExpr(fn *pseudo.Func, e pseudo.Expr) (res outcome) {
	defer func() {
		if r := recover(); r != nil {
			p.faults.Add(1)
			p.logger.Error("visit failed",
				"func", fn.Name,
				"panic", r,
				"stack", string(debug.Stack()))
			res = outcomeFault
		}
	}()

	call, ok := e.(*pseudo.Call)
	if !ok {
		return outcomeSkipped
	}

	site := callSite(call)
	if !p.pass.Matches(site) {
		return outcomeSkipped
	}

	d, ok := p.pass.Visit(site)
	if !ok {
		return outcomeMissed
	}

	call.Symbolize(d.Keep, d.Enum, uint64(d.Key))
	return outcomeRewritten
}

// callSite takes a read-only view of call's operands.
func callSite(call *pseudo.Call) rewrite.CallSite {
	site := rewrite.CallSite{
		Helper: call.Helper,
		Args:   make([]rewrite.Operand, len(call.Args)),
	}
	for i, a := range call.Args {
		if n, ok := a.(*pseudo.Num); ok {
			site.Args[i] = rewrite.Operand{
				Value: n.Value,
				IsInt: n.Type == pseudo.TypeInt && n.Enum == "",
			}
		}
	}
	return site
}
