package driver

import (
	"sort"
	"time"

	"github.com/qcsc/slurmled/internal/display"
	"github.com/qcsc/slurmled/internal/logger"
)

// Panel drives one binary output per configured node.
type Panel struct {
	lines map[string]Line
	order []string // node ids, sorted, for deterministic walks
	state map[string]bool
	log   logger.Logger
}

// NewPanel claims one output per entry in nodes (node id -> BCM offset).
// Any claim failure releases the lines claimed so far and is fatal to the
// caller.
func NewPanel(req LineRequester, nodes map[string]int, log logger.Logger) (*Panel, error) {
	order := make([]string, 0, len(nodes))
	for node := range nodes {
		order = append(order, node)
	}
	sort.Strings(order)

	p := &Panel{
		lines: make(map[string]Line, len(nodes)),
		order: order,
		state: make(map[string]bool, len(nodes)),
		log:   log,
	}
	for _, node := range order {
		line, err := req(nodes[node])
		if err != nil {
			p.Close()
			return nil, err
		}
		p.lines[node] = line
	}
	return p, nil
}

// Nodes returns the configured node ids in deterministic order.
func (p *Panel) Nodes() []string {
	return p.order
}

// Apply sets each configured node's light from the directives. Nodes with
// no entry in NodeLights keep their current state — absence means no fresh
// information, not off.
func (p *Panel) Apply(d display.Directives) error {
	for _, node := range p.order {
		want, ok := d.NodeLights[node]
		if !ok {
			continue
		}
		if err := p.set(node, want); err != nil {
			return err
		}
	}
	return nil
}

// SelfTest walks every configured output: each activates once, holds, then
// deactivates, verifying wiring and addressing. It ends with all outputs off.
func (p *Panel) SelfTest(hold time.Duration) error {
	p.log.Info("panel self-test: %d outputs", len(p.order))
	for _, node := range p.order {
		p.log.Info("  %s on", node)
		if err := p.set(node, true); err != nil {
			return err
		}
		time.Sleep(hold)
		if err := p.set(node, false); err != nil {
			return err
		}
	}
	p.log.Info("panel self-test complete")
	return nil
}

// Close drives every output off and releases it.
func (p *Panel) Close() error {
	var firstErr error
	for _, node := range p.order {
		line, ok := p.lines[node]
		if !ok {
			continue
		}
		_ = line.Set(false)
		if err := line.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *Panel) set(node string, on bool) error {
	if current, ok := p.state[node]; ok && current == on {
		return nil
	}
	if err := p.lines[node].Set(on); err != nil {
		return err
	}
	p.state[node] = on
	p.log.Debug("panel: %s=%v", node, on)
	return nil
}
