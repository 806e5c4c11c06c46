// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/gitfolio/gitfolio/internal/domain"
	"github.com/gitfolio/gitfolio/internal/gateway"
)

// Builder is the use case for assembling a portfolio.
// It orchestrates the fetching and combining of data.
type Builder struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewBuilder creates a new Builder instance.
func NewBuilder(fetcher gateway.Fetcher, logger *log.Logger) *Builder {
	return &Builder{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Assemble performs the main business logic: fetch the profile first, then
// repositories and pinned repositories concurrently, and derive the skill
// list and star summary from whatever arrived.
//
// No fetch failure is fatal. Each failure is logged and the corresponding
// portion of the portfolio keeps its zero value, so the page renders with
// placeholders instead of erroring out.
func (b *Builder) Assemble(ctx context.Context, username string) *domain.Portfolio {
	b.logger.Println("Usecase: Starting portfolio assembly...")

	p := &domain.Portfolio{
		Social: domain.Social{GitHub: "https://github.com/" + username},
	}

	profile, err := b.fetcher.FetchProfile(ctx, username)
	if err != nil {
		b.logger.Printf("Profile fetch failed, rendering placeholders: %v\n", err)
	} else {
		p.Profile = profile
		if profile.Blog != "" {
			p.Social.Blog = profile.Blog
		}
	}

	// Both remaining fetches degrade independently, so the goroutines swallow
	// their errors after logging instead of cancelling each other.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		repos, err := b.fetcher.FetchRepositories(egCtx, username)
		if err != nil {
			b.logger.Printf("Repository fetch failed, project grid will be empty: %v\n", err)
			return nil
		}
		p.Repos = repos
		return nil
	})
	eg.Go(func() error {
		pinned, err := b.fetcher.FetchPinnedRepositories(egCtx, username)
		if err != nil {
			b.logger.Printf("Pinned repository fetch failed, skipping featured section: %v\n", err)
			return nil
		}
		p.Pinned = pinned
		return nil
	})
	_ = eg.Wait() // goroutines always return nil

	p.Skills = AggregateSkills(p.Repos)
	p.Stars = summarizeStars(p.Repos)

	b.logger.Println("Usecase: Portfolio assembly complete.")
	return p
}

// summarizeStars rolls the retained repositories' stargazer counts up into
// the figures shown in the about section.
func summarizeStars(repos []domain.Repository) domain.StarSummary {
	if len(repos) == 0 {
		return domain.StarSummary{}
	}
	counts := make([]float64, len(repos))
	total := 0
	for i, repo := range repos {
		counts[i] = float64(repo.Stars)
		total += repo.Stars
	}
	median, _ := stats.Median(counts)
	max, _ := stats.Max(counts)
	return domain.StarSummary{Total: total, Median: median, Max: int(max)}
}
