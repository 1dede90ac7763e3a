package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stake/internal/adapters/fs"
	"go.trai.ch/stake/internal/adapters/logger"
	"go.trai.ch/stake/internal/core/ports"
)

// NodeID is the unique identifier for the mirror loader Graft node.
const NodeID graft.ID = "adapter.mirror_loader"

func init() {
	graft.Register(graft.Node[ports.MirrorLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.MirrorLoader, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMirrorsLoader(fsys, log), nil
		},
	})
}
