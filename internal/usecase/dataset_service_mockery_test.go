package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	schemamock "github.com/riskibarqy/player-insights/internal/mocks/domain/schema"
	"github.com/stretchr/testify/mock"
)

func sampleTable(version string) schema.RawTable {
	return schema.RawTable{
		Version: version,
		Origin:  "players.csv",
		Header:  []string{"Player", "Nation", "Pos", "Squad", "Min", "Gls", "Ast", "Tkl", "Int"},
		Rows: [][]string{
			{"A", "eng ENG", "FW,MF", "X", "1000", "10", "5", "3", "2"},
			{"B", "fr FRA", "FW", "X", "200", "3", "0", "1", "0"},
			{"C", "es ESP", "DF", "Y", "2700", "1", "2", "60", "40"},
		},
	}
}

func TestDatasetService_Load_NormalizesAndDerives(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := schemamock.NewSource(t)
	source.On("Fetch", mock.Anything).Return(sampleTable("v1"), nil).Once()

	service := NewDatasetService(source, metric.NewDeriver(), nil)
	view, err := service.Load(ctx)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if view.Dataset.Version() != "v1" || view.Dataset.Len() != 3 {
		t.Fatalf("unexpected dataset: version=%s rows=%d", view.Dataset.Version(), view.Dataset.Len())
	}

	a, ok := view.Dataset.Find("A")
	if !ok || a.Nation != "England" || a.Position != "FW" {
		t.Fatalf("unexpected record A: %+v", a)
	}
	if gc, ok := a.Derived(metric.GoalContribution); !ok || gc != 15 {
		t.Fatalf("goal contribution = %v (%v), want 15", gc, ok)
	}
	if _, err := view.Registry.Lookup(metric.DefensiveImpact); !errors.Is(err, metric.ErrUnknownMetric) {
		t.Fatalf("defensive impact needs blocks and clearances, got %v", err)
	}

	current, err := service.Current(ctx)
	if err != nil || current.Dataset != view.Dataset {
		t.Fatalf("current should return the loaded dataset, err=%v", err)
	}
}

func TestDatasetService_Load_ReusesCachedVersion(t *testing.T) {
	t.Parallel()

	source := schemamock.NewSource(t)
	source.On("Fetch", mock.Anything).Return(sampleTable("same"), nil).Twice()

	service := NewDatasetService(source, nil, nil)
	first, err := service.Load(context.Background())
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := service.Load(context.Background())
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first.Dataset != second.Dataset {
		t.Fatalf("expected the cached dataset handle for an unchanged version")
	}
}

func TestDatasetService_Load_MalformedInput(t *testing.T) {
	t.Parallel()

	source := schemamock.NewSource(t)
	source.On("Fetch", mock.Anything).Return(schema.RawTable{
		Version: "bad",
		Header:  []string{"Player", "Squad"},
		Rows:    [][]string{{"A", "X"}},
	}, nil).Once()

	_, err := NewDatasetService(source, nil, nil).Load(context.Background())
	if !errors.Is(err, schema.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestDatasetService_Load_SourceFailure(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("connection refused")
	source := schemamock.NewSource(t)
	source.On("Fetch", mock.Anything).Return(schema.RawTable{}, fetchErr).Once()

	_, err := NewDatasetService(source, nil, nil).Current(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) || !errors.Is(err, fetchErr) {
		t.Fatalf("expected dependency error wrapping the fetch error, got %v", err)
	}
}
