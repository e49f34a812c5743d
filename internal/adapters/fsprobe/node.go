package fsprobe

import (
	"context"

	"github.com/Smattr/scrutineer/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	ProbeNodeID         graft.ID = "adapter.fsprobe"
	FingerprinterNodeID graft.ID = "adapter.fsprobe.fingerprinter"
)

func init() {
	graft.Register(graft.Node[ports.FileProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileProbe, error) {
			return NewProbe(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
