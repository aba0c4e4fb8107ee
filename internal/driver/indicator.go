package driver

import (
	"github.com/qcsc/slurmled/internal/display"
	"github.com/qcsc/slurmled/internal/logger"
)

// Indicators drives the two discrete partition-activity outputs.
// Apply is idempotent: the same directives can be rendered every tick.
type Indicators struct {
	classical Line
	quantum   Line
	log       logger.Logger
}

// NewIndicators claims the two indicator outputs. A claim failure releases
// anything already claimed and is fatal to the caller.
func NewIndicators(req LineRequester, classicalPin, quantumPin int, log logger.Logger) (*Indicators, error) {
	classical, err := req(classicalPin)
	if err != nil {
		return nil, err
	}
	quantum, err := req(quantumPin)
	if err != nil {
		classical.Close()
		return nil, err
	}
	return &Indicators{classical: classical, quantum: quantum, log: log}, nil
}

// Apply sets both indicators from the directives.
func (i *Indicators) Apply(d display.Directives) error {
	if err := i.classical.Set(d.IndicatorA); err != nil {
		return err
	}
	if err := i.quantum.Set(d.IndicatorB); err != nil {
		return err
	}
	i.log.Debug("indicators: classical=%v quantum=%v", d.IndicatorA, d.IndicatorB)
	return nil
}

// Close drives both indicators off and releases them.
func (i *Indicators) Close() error {
	_ = i.classical.Set(false)
	_ = i.quantum.Set(false)
	err1 := i.classical.Close()
	err2 := i.quantum.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
