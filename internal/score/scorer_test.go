package score

import (
	"testing"
	"time"

	"github.com/repofolio/repofolio/config"
	"github.com/repofolio/repofolio/internal/model"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestScorer() *Scorer {
	s := NewScorer(config.DefaultScoreWeights())
	s.Now = testNow
	return s
}

func TestStarsScore(t *testing.T) {
	tests := []struct {
		stars int
		want  int
	}{
		{0, 0},
		{1, 10},  // log10(2)*33 ≈ 9.93
		{9, 33},  // log10(10)*33 = 33
		{99, 66}, // log10(100)*33 = 66
		{1000, 99},
		{100000, 100}, // capped
	}

	for _, tt := range tests {
		if got := starsScore(tt.stars); got != tt.want {
			t.Errorf("starsScore(%d) = %d, want %d", tt.stars, got, tt.want)
		}
	}
}

func TestStarsScoreMonotonic(t *testing.T) {
	prev := 0
	for stars := 0; stars <= 2000; stars++ {
		got := starsScore(stars)
		if got < prev {
			t.Fatalf("starsScore(%d) = %d < starsScore(%d) = %d", stars, got, stars-1, prev)
		}
		if got > 100 {
			t.Fatalf("starsScore(%d) = %d exceeds 100", stars, got)
		}
		prev = got
	}
}

func TestRecencyScore(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{0, 100},
		{7, 100},
		{8, 90},
		{30, 90},
		{90, 70},
		{180, 50},
		{365, 30},
		{730, 15},
		{731, 5},
	}

	for _, tt := range tests {
		d := time.Duration(tt.days) * 24 * time.Hour
		if got := recencyScore(d); got != tt.want {
			t.Errorf("recencyScore(%d days) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestCodeSizeScore(t *testing.T) {
	tests := []struct {
		sizeKB int
		want   int
	}{
		{0, 5},
		{9, 5},
		{10, 20},
		{49, 20},
		{50, 40},
		{199, 40},
		{200, 60},
		{999, 60},
		{1000, 80},
		{4999, 80},
		{5000, 100},
		{49999, 100},
		{50000, 90},
	}

	for _, tt := range tests {
		if got := codeSizeScore(tt.sizeKB); got != tt.want {
			t.Errorf("codeSizeScore(%d) = %d, want %d", tt.sizeKB, got, tt.want)
		}
	}
}

func TestScoreBreakdownAndTotal(t *testing.T) {
	s := newTestScorer()
	repo := model.Repository{
		Name:      "proj",
		Language:  "Go",
		Stars:     9,
		Forks:     0,
		SizeKB:    300,
		Topics:    []string{"cli", "tooling"},
		UpdatedAt: testNow.Add(-5 * 24 * time.Hour),
	}

	sr := s.Score(repo, "")

	want := model.ScoreBreakdown{
		Stars:          33,
		Forks:          0,
		RecentActivity: 100,
		CodeSize:       60,
		HasReadme:      0,
		ReadmeQuality:  0,
		HasLanguage:    100,
		TopicCount:     40,
		IsOriginal:     100,
	}
	if sr.Breakdown != want {
		t.Errorf("breakdown = %+v, want %+v", sr.Breakdown, want)
	}

	// 0.2*33 + 0.2*100 + 0.1*60 + 0.05*100 + 0.05*40 + 0.1*100 = 49.6 -> 50
	if sr.TotalScore != 50 {
		t.Errorf("TotalScore = %d, want 50", sr.TotalScore)
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := newTestScorer()
	repo := model.Repository{
		Name:      "proj",
		Language:  "Go",
		Stars:     42,
		Forks:     7,
		SizeKB:    1234,
		UpdatedAt: testNow.Add(-100 * 24 * time.Hour),
	}
	const text = "# proj\n\nSomething useful.\n"

	first := s.Score(repo, text)
	for i := 0; i < 5; i++ {
		if got := s.Score(repo, text); got.TotalScore != first.TotalScore || got.Breakdown != first.Breakdown {
			t.Fatalf("score not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestForkZeroesOriginalScore(t *testing.T) {
	s := newTestScorer()
	repo := model.Repository{
		Name:      "fork",
		Language:  "Go",
		Stars:     50,
		SizeKB:    100,
		Fork:      true,
		UpdatedAt: testNow,
	}

	sr := s.Score(repo, "")
	if sr.Breakdown.IsOriginal != 0 {
		t.Errorf("IsOriginal = %d, want 0 for forks", sr.Breakdown.IsOriginal)
	}
}
