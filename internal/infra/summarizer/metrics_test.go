package summarizer

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu          sync.Mutex
	lengths     []int
	outOfBounds int
	compliance  []bool
	durations   []time.Duration
}

func (f *fakeRecorder) RecordLength(_ string, words int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lengths = append(f.lengths, words)
}

func (f *fakeRecorder) RecordOutOfBounds(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outOfBounds++
}

func (f *fakeRecorder) RecordCompliance(_ string, within bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.compliance = append(f.compliance, within)
}

func (f *fakeRecorder) RecordDuration(_ string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations = append(f.durations, d)
}

func TestNewPrometheusSummaryMetrics_Singleton(t *testing.T) {
	m1 := NewPrometheusSummaryMetrics()
	m2 := NewPrometheusSummaryMetrics()

	require.NotNil(t, m1)
	assert.Same(t, m1, m2)
}

func TestPrometheusSummaryMetrics_Record(t *testing.T) {
	m := NewPrometheusSummaryMetrics()

	before := testutil.ToFloat64(m.outOfBounds.WithLabelValues("test-provider"))
	m.RecordOutOfBounds("test-provider")
	assert.Equal(t, before+1, testutil.ToFloat64(m.outOfBounds.WithLabelValues("test-provider")))

	m.RecordCompliance("test-provider", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.complianceGauge.WithLabelValues("test-provider")))
	m.RecordCompliance("test-provider", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.complianceGauge.WithLabelValues("test-provider")))

	assert.NotPanics(t, func() {
		m.RecordLength("test-provider", 80)
		m.RecordDuration("test-provider", 250*time.Millisecond)
	})
}

func TestObserve(t *testing.T) {
	bounds := DefaultBounds()

	tests := []struct {
		name       string
		summary    string
		wantWords  int
		wantWithin bool
	}{
		{name: "within bounds", summary: strings.Repeat("w ", 50), wantWords: 50, wantWithin: true},
		{name: "at min", summary: strings.Repeat("w ", 30), wantWords: 30, wantWithin: true},
		{name: "at max", summary: strings.Repeat("w ", 130), wantWords: 130, wantWithin: true},
		{name: "too short", summary: "short summary", wantWords: 2, wantWithin: false},
		{name: "too long", summary: strings.Repeat("w ", 131), wantWords: 131, wantWithin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}

			observe(context.Background(), rec, "test", bounds, tt.summary, time.Second)

			assert.Equal(t, []int{tt.wantWords}, rec.lengths)
			assert.Equal(t, []bool{tt.wantWithin}, rec.compliance)
			assert.Equal(t, []time.Duration{time.Second}, rec.durations)
			if tt.wantWithin {
				assert.Zero(t, rec.outOfBounds)
			} else {
				assert.Equal(t, 1, rec.outOfBounds)
			}
		})
	}
}

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr string
	}{
		{name: "defaults", bounds: DefaultBounds()},
		{name: "equal", bounds: Bounds{MinLength: 10, MaxLength: 10}},
		{name: "ceiling", bounds: Bounds{MinLength: 1, MaxLength: 1024}},
		{name: "zero min", bounds: Bounds{MinLength: 0, MaxLength: 10}, wantErr: "below minimum 1"},
		{name: "max below min", bounds: Bounds{MinLength: 50, MaxLength: 40}, wantErr: "below min length"},
		{name: "above ceiling", bounds: Bounds{MinLength: 1, MaxLength: 1025}, wantErr: "exceeds maximum 1024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBounds_OrDefault(t *testing.T) {
	assert.Equal(t, DefaultBounds(), Bounds{}.orDefault())
	assert.Equal(t, Bounds{MinLength: 5, MaxLength: 9}, Bounds{MinLength: 5, MaxLength: 9}.orDefault())
}

func TestMaxTokens(t *testing.T) {
	assert.Equal(t, 276, maxTokens(DefaultBounds()))
}

func TestBuildPrompt_IncludesBounds(t *testing.T) {
	p := buildPrompt(Bounds{MinLength: 30, MaxLength: 130})

	assert.Contains(t, p, "between 30 and 130 words")
}
