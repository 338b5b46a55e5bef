package pggname

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pangenome/pggname/canonical"
	"github.com/pangenome/pggname/digest"
	"github.com/pangenome/pggname/graph"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Namer computes stable names for pangenome graphs.
//
// A Namer is configured once and may name any number of graphs; every call
// to Name runs a fresh computation with no shared state, so a single Namer
// is safe for concurrent use and two concurrent computations cannot
// interfere with each other.
type Namer struct {
	cfg namerConfig

	nodesNamed     metric.Int64Counter
	canonicalBytes metric.Int64Counter
}

// NewNamer creates a Namer.
//
// Configuration precedence, highest first: explicit options, the YAML file
// given with WithConfigFile, defaults (SHA-256, natural digest length,
// runtime.NumCPU() sort workers). Returns an error wrapping
// ErrInvalidConfiguration if the hash variant is unrecognized or the
// truncation length exceeds the variant's natural digest length; the check
// happens here, never mid-digest.
//
// Example:
//
//	namer, err := pggname.NewNamer(
//	    pggname.WithHashVariant(digest.SHA512_256),
//	    pggname.WithTruncation(16),
//	)
func NewNamer(opts ...Option) (*Namer, error) {
	var probe namerConfig
	for _, opt := range opts {
		opt(&probe)
	}

	cfg := namerConfig{variant: digest.SHA256}
	if probe.configFile != "" {
		fileCfg, err := LoadConfig(probe.configFile)
		if err != nil {
			return nil, NewConfigurationError("NewNamer", err)
		}
		if err := fileCfg.apply(&cfg); err != nil {
			return nil, NewConfigurationError("NewNamer", err)
		}
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate the digest configuration up front with a throwaway pipeline.
	if _, err := digest.NewPipeline(cfg.variant, cfg.length); err != nil {
		return nil, NewConfigurationError("NewNamer", err)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.tracer == nil {
		cfg.tracer = noop.NewTracerProvider().Tracer("pggname")
	}

	n := &Namer{cfg: cfg}
	if cfg.meter != nil {
		var err error
		n.nodesNamed, err = cfg.meter.Int64Counter("pggname.nodes",
			metric.WithDescription("Nodes included in canonical views"))
		if err != nil {
			return nil, NewConfigurationError("NewNamer", err)
		}
		n.canonicalBytes, err = cfg.meter.Int64Counter("pggname.canonical_bytes",
			metric.WithDescription("Canonical bytes fed to the digest"))
		if err != nil {
			return nil, NewConfigurationError("NewNamer", err)
		}
	}
	return n, nil
}

// Variant returns the configured hash variant.
func (n *Namer) Variant() digest.Variant {
	return n.cfg.variant
}

// runLogger derives a logger carrying a fresh run ID, one per computation.
func (n *Namer) runLogger() *slog.Logger {
	return n.cfg.logger.With("run_id", uuid.NewString())
}

// Name computes the stable name of the graph supplied by src.
//
// It resolves the identifier universe, builds the canonical view, streams
// the canonical byte grammar through the configured digest, and returns the
// hex-encoded name. Fatal conditions (duplicate identifiers, dangling
// edges) abort the computation with no partial name.
func (n *Namer) Name(ctx context.Context, src graph.Source) (string, error) {
	ctx, span := n.cfg.tracer.Start(ctx, "pggname.Name")
	defer span.End()

	logger := n.runLogger()
	view, err := n.canonicalize(ctx, src, logger)
	if err != nil {
		return "", err
	}
	return n.nameView(ctx, view, n.cfg.variant, n.cfg.length, logger)
}

// Canonicalize resolves the identifier universe and builds the canonical
// view for src. Most callers want Name; Canonicalize is exposed so a view
// can be hashed under several variants without re-sorting (see NameViewAs).
func (n *Namer) Canonicalize(ctx context.Context, src graph.Source) (*graph.CanonicalView, error) {
	return n.canonicalize(ctx, src, n.runLogger())
}

// NameView computes the stable name of an already-canonicalized view using
// the Namer's configured variant and truncation.
func (n *Namer) NameView(ctx context.Context, view *graph.CanonicalView) (string, error) {
	return n.nameView(ctx, view, n.cfg.variant, n.cfg.length, n.runLogger())
}

// NameViewAs is NameView with an explicit variant and truncation length,
// used to hash one view under several configurations.
func (n *Namer) NameViewAs(ctx context.Context, view *graph.CanonicalView, variant digest.Variant, length int) (string, error) {
	return n.nameView(ctx, view, variant, length, n.runLogger())
}

func (n *Namer) canonicalize(ctx context.Context, src graph.Source, logger *slog.Logger) (*graph.CanonicalView, error) {
	_, span := n.cfg.tracer.Start(ctx, "pggname.Canonicalize")
	defer span.End()

	view, err := graph.Build(src, n.cfg.workers)
	if err != nil {
		return nil, NewStructureError("Namer.Canonicalize", err)
	}

	nodes, edges, seqLen := view.Statistics()
	span.SetAttributes(
		attribute.String("pggname.universe", view.Universe.String()),
		attribute.Int("pggname.nodes", nodes),
		attribute.Int("pggname.edges", edges),
	)
	logger.Debug("canonical view built",
		"universe", view.Universe.String(),
		"nodes", nodes,
		"edges", edges,
		"sequence_length", seqLen,
	)
	return view, nil
}

func (n *Namer) nameView(ctx context.Context, view *graph.CanonicalView, variant digest.Variant, length int, logger *slog.Logger) (string, error) {
	ctx, span := n.cfg.tracer.Start(ctx, "pggname.NameView",
		trace.WithAttributes(attribute.String("pggname.hash", variant.String())))
	defer span.End()

	pipe, err := digest.NewPipeline(variant, length)
	if err != nil {
		return "", NewConfigurationError("Namer.NameView", err)
	}

	// Strictly sequential fold: the serializer writes straight into the
	// running hash state in canonical order.
	written, err := canonical.Write(pipe, view)
	if err != nil {
		return "", NewInternalError("Namer.NameView", err)
	}
	name := pipe.HexName()

	nodes, _, _ := view.Statistics()
	if n.nodesNamed != nil {
		n.nodesNamed.Add(ctx, int64(nodes))
	}
	if n.canonicalBytes != nil {
		n.canonicalBytes.Add(ctx, written)
	}
	logger.Info("graph named",
		"name", name,
		"hash", variant.String(),
		"bytes", written,
	)
	return name, nil
}
