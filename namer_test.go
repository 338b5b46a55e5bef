package pggname

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pangenome/pggname/digest"
	"github.com/pangenome/pggname/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

// referenceName is the SHA-256 digest of the reference scenario's canonical
// byte stream.
const referenceName = "54b49d18354a34fbd1af9aaac279e1b3ee67b2f68f0ff79f5ebf6c50c8d922a5"

func quietNamer(t *testing.T, opts ...Option) *Namer {
	t.Helper()
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	namer, err := NewNamer(opts...)
	require.NoError(t, err)
	return namer
}

func referenceSource() *graph.Memory {
	m := graph.NewMemory()
	m.AddNode("11", []byte("ACCTT"))
	m.AddNode("12", []byte("TCAAGG"))
	m.AddNode("13", []byte("CTTGATT"))
	m.AddEdge("11", graph.Forward, "12", graph.Reverse)
	m.AddEdge("12", graph.Reverse, "13", graph.Forward)
	m.AddEdge("11", graph.Forward, "13", graph.Forward)
	return m
}

func TestNamerReferenceScenario(t *testing.T) {
	namer := quietNamer(t)
	name, err := namer.Name(context.Background(), referenceSource())
	require.NoError(t, err)
	assert.Equal(t, referenceName, name)
}

func TestNamerAllVariants(t *testing.T) {
	// Externally computed digests of the reference canonical stream.
	want := map[digest.Variant]string{
		digest.SHA224:     "8471beeb834cb43e7d1660f79fd785969e19ab72af90540d79e069d6",
		digest.SHA256:     referenceName,
		digest.SHA384:     "f13caeed1f1111fb5feb672ef35e3a67a278921500f62bf14e6fe49ec4188c22be9182a522e922414e5fdcb4faeb7bfc",
		digest.SHA512:     "ad2edf6c9d3e46ee0538636d1e0d63a60137473897c00f8117a57db640043e9b1cb5ba6337f83fa79df7677e0432b7ac257b6256339c799cfff0af10459f0c3e",
		digest.SHA512_224: "7d6ccaaac8891938ae9f0b2c1675e54a208ccb5ae520e1c3a047be84",
		digest.SHA512_256: "0860dfbb8398ad7a680c1eb66b1da680afe35ba5126d2f2cd4d8ec74feb02fe4",
	}

	namer := quietNamer(t)
	view, err := namer.Canonicalize(context.Background(), referenceSource())
	require.NoError(t, err)

	for variant, expected := range want {
		name, err := namer.NameViewAs(context.Background(), view, variant, 0)
		require.NoError(t, err, "variant %s", variant)
		assert.Equal(t, expected, name, "variant %s", variant)
	}
}

func TestNamerStringUniverse(t *testing.T) {
	m := graph.NewMemory()
	m.AddNode("11", []byte("ACCTT"))
	m.AddNode("n2", []byte("TCAAGG"))
	m.AddNode("13", []byte("CTTGATT"))
	m.AddEdge("11", graph.Forward, "n2", graph.Reverse)
	m.AddEdge("n2", graph.Reverse, "13", graph.Forward)
	m.AddEdge("11", graph.Forward, "13", graph.Forward)

	namer := quietNamer(t)
	name, err := namer.Name(context.Background(), m)
	require.NoError(t, err)
	// Same topology as the reference scenario, but the string universe
	// orders "13" before "n2", so the canonical stream and name differ.
	assert.Equal(t, "5327b844113630ed62a44cab2f4a4f17dcee9e848514e1e3c5e050512187b776", name)
}

func TestNamerSelfLoops(t *testing.T) {
	namer := quietNamer(t)

	kept := graph.NewMemory()
	kept.AddNode("5", []byte("AT"))
	kept.AddEdge("5", graph.Reverse, "5", graph.Forward)
	name, err := namer.Name(context.Background(), kept)
	require.NoError(t, err)
	assert.Equal(t, "ae9834ad22c3116a482c04af9742f1afb45d2efa79e0412b9b8fbd261799efd6", name)

	dropped := graph.NewMemory()
	dropped.AddNode("5", []byte("AT"))
	dropped.AddEdge("5", graph.Reverse, "5", graph.Reverse)
	name, err = namer.Name(context.Background(), dropped)
	require.NoError(t, err)
	// Both-reverse loops are excluded, leaving only the S-record.
	assert.Equal(t, "c2f0fe46276b652406275886c5161b2b67d33c1e50c4e157c334e90d5f420fa3", name)
}

func TestNamerDeterminism(t *testing.T) {
	namer := quietNamer(t)
	first, err := namer.Name(context.Background(), referenceSource())
	require.NoError(t, err)
	second, err := namer.Name(context.Background(), referenceSource())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNamerInputOrderInvariance(t *testing.T) {
	permuted := graph.NewMemory()
	permuted.AddEdge("11", graph.Forward, "13", graph.Forward)
	permuted.AddNode("13", []byte("CTTGATT"))
	permuted.AddEdge("12", graph.Reverse, "13", graph.Forward)
	permuted.AddNode("11", []byte("ACCTT"))
	permuted.AddEdge("11", graph.Forward, "12", graph.Reverse)
	permuted.AddNode("12", []byte("TCAAGG"))

	namer := quietNamer(t)
	name, err := namer.Name(context.Background(), permuted)
	require.NoError(t, err)
	assert.Equal(t, referenceName, name)
}

func TestNamerEdgeDeduplication(t *testing.T) {
	m := referenceSource()
	// The logical reverse of an existing connection adds nothing.
	m.AddEdge("12", graph.Forward, "11", graph.Reverse)

	namer := quietNamer(t)
	name, err := namer.Name(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, referenceName, name)
}

func TestNamerTruncation(t *testing.T) {
	namer := quietNamer(t, WithTruncation(8))
	name, err := namer.Name(context.Background(), referenceSource())
	require.NoError(t, err)
	assert.Equal(t, referenceName[:16], name)
}

func TestNamerStructuralErrors(t *testing.T) {
	namer := quietNamer(t)

	dup := graph.NewMemory()
	dup.AddNode("11", []byte("A"))
	dup.AddNode("11", []byte("A"))
	_, err := namer.Name(context.Background(), dup)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)

	var structured *Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, KindStructure, structured.Kind)

	dangling := graph.NewMemory()
	dangling.AddNode("1", []byte("A"))
	dangling.AddEdge("1", graph.Forward, "2", graph.Forward)
	_, err = namer.Name(context.Background(), dangling)
	require.ErrorIs(t, err, ErrDanglingEdge)
}

func TestNewNamerInvalidConfiguration(t *testing.T) {
	_, err := NewNamer(WithHashVariant(digest.Variant("md5")))
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewNamer(WithTruncation(33))
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	var structured *Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, KindConfiguration, structured.Kind)
}

func TestNamerConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pggname.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hash: sha512/256\nlength: 16\n"), 0o644))

	namer := quietNamer(t, WithConfigFile(path))
	assert.Equal(t, digest.SHA512_256, namer.Variant())

	name, err := namer.Name(context.Background(), referenceSource())
	require.NoError(t, err)
	assert.Equal(t, "0860dfbb8398ad7a680c1eb66b1da680", name)
}

func TestNamerExplicitOptionsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pggname.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hash: sha512\n"), 0o644))

	namer := quietNamer(t, WithConfigFile(path), WithHashVariant(digest.SHA224))
	assert.Equal(t, digest.SHA224, namer.Variant())
}

func TestNamerTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	namer := quietNamer(t, WithTracer(provider.Tracer("test")))
	_, err := namer.Name(context.Background(), referenceSource())
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, span := range recorder.Ended() {
		names[span.Name()] = true
	}
	assert.True(t, names["pggname.Name"])
	assert.True(t, names["pggname.Canonicalize"])
	assert.True(t, names["pggname.NameView"])
}

func TestNamerWithMeter(t *testing.T) {
	namer := quietNamer(t, WithMeter(noopmetric.NewMeterProvider().Meter("test")))
	name, err := namer.Name(context.Background(), referenceSource())
	require.NoError(t, err)
	assert.Equal(t, referenceName, name)
}

func TestNamerConcurrentUse(t *testing.T) {
	namer := quietNamer(t)
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name, err := namer.Name(context.Background(), referenceSource())
			if err == nil {
				results[i] = name
			}
		}(i)
	}
	wg.Wait()
	for _, name := range results {
		assert.Equal(t, referenceName, name)
	}
}
