package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/castcolor/pkg/cache"
	"github.com/matzehuels/castcolor/pkg/casting"
	"github.com/matzehuels/castcolor/pkg/coloring"
	cio "github.com/matzehuels/castcolor/pkg/io"
)

// parseCasting decodes text and returns the instance with the hash of its
// canonical encoding.
func parseCasting(ctx context.Context, logger *log.Logger, text string) (*casting.Instance, string, time.Duration, error) {
	start := time.Now()
	inst, err := cio.ParseCasting(text)
	if err != nil {
		return nil, "", 0, err
	}
	elapsed := time.Since(start)
	logger.Debug("parsed instance",
		"kind", InputCasting,
		"roles", inst.RoleCount(),
		"scenes", inst.SceneCount(),
		"actors", inst.ActorCount(),
		"duration", elapsed)
	return inst, CastingHash(inst), elapsed, ctx.Err()
}

// parseColoring decodes text and returns the instance with the hash of its
// canonical encoding.
func parseColoring(ctx context.Context, logger *log.Logger, text string) (*coloring.Instance, string, error) {
	g, err := cio.ParseColoring(text)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("parsed instance",
		"kind", InputColoring,
		"vertices", g.Vertices,
		"edges", len(g.Edges),
		"colors", g.Colors)
	return g, ColoringHash(g), ctx.Err()
}

// CastingHash hashes the canonical text encoding of inst, so inputs that
// differ only in layout share cache entries.
func CastingHash(inst *casting.Instance) string {
	return cache.Hash([]byte(cio.FormatCasting(inst)))
}

// ColoringHash hashes the canonical text encoding of g.
func ColoringHash(g *coloring.Instance) string {
	return cache.Hash([]byte(cio.FormatColoring(g)))
}
