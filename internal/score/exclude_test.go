package score

import (
	"testing"

	"github.com/repofolio/repofolio/config"
	"github.com/repofolio/repofolio/internal/model"
)

func newTestExcluder() *Excluder {
	return NewExcluder(config.DefaultDotfilePatterns(), config.DefaultLearningPatterns())
}

func TestShouldExclude(t *testing.T) {
	e := newTestExcluder()

	// Baseline repo that passes every rule.
	base := model.Repository{
		Name:     "useful-project",
		Language: "Go",
		SizeKB:   100,
		Stars:    3,
	}

	tests := []struct {
		name   string
		modify func(r *model.Repository)
		want   bool
	}{
		{"qualifying repo", func(r *model.Repository) {}, false},
		{"fork with few stars", func(r *model.Repository) { r.Fork = true; r.Stars = 4 }, true},
		{"fork with enough stars", func(r *model.Repository) { r.Fork = true; r.Stars = 5 }, false},
		{"archived with few stars", func(r *model.Repository) { r.Archived = true; r.Stars = 9 }, true},
		{"archived with enough stars", func(r *model.Repository) { r.Archived = true; r.Stars = 10 }, false},
		{"tiny repo", func(r *model.Repository) { r.SizeKB = 4 }, true},
		{"no primary language", func(r *model.Repository) { r.Language = "" }, true},
		{"dotfiles by name", func(r *model.Repository) { r.Name = "dotfiles" }, true},
		{"dotfiles case-insensitive", func(r *model.Repository) { r.Name = "DotFiles" }, true},
		{"homebrew tap prefix", func(r *model.Repository) { r.Name = "homebrew-tools" }, true},
		{"learning repo at zero stars", func(r *model.Repository) { r.Name = "hello-world"; r.Stars = 0 }, true},
		{"learning repo with stars", func(r *model.Repository) { r.Name = "hello-world"; r.Stars = 1 }, false},
		{"tutorial prefix at zero stars", func(r *model.Repository) { r.Name = "tutorial-rust"; r.Stars = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := base
			tt.modify(&repo)
			if got := e.ShouldExclude(repo); got != tt.want {
				t.Errorf("ShouldExclude(%+v) = %v, want %v", repo, got, tt.want)
			}
		})
	}
}

// The dotfile rule has no star-count exception: a popular dotfiles repo is
// still excluded by name.
func TestDotfileExclusionIgnoresStars(t *testing.T) {
	e := newTestExcluder()
	repo := model.Repository{
		Name:     "dotfiles",
		Language: "Shell",
		SizeKB:   500,
		Stars:    50,
	}
	if !e.ShouldExclude(repo) {
		t.Error("dotfiles repo with 50 stars should still be excluded")
	}
}

func TestShouldExcludeIdempotent(t *testing.T) {
	e := newTestExcluder()
	repo := model.Repository{Name: "thing", Language: "Go", SizeKB: 50}

	first := e.ShouldExclude(repo)
	for i := 0; i < 10; i++ {
		if e.ShouldExclude(repo) != first {
			t.Fatal("ShouldExclude not idempotent")
		}
	}
}
