// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/gitfolio/gitfolio/internal/domain"
)

// repoPageSize is both the per_page value sent to the API and the maximum
// number of repositories exposed downstream after the star re-sort.
const repoPageSize = 6

// Fetcher defines the behavior of a gateway for fetching portfolio data from GitHub.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (*domain.Profile, error)
	FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	FetchPinnedRepositories(ctx context.Context, username string) ([]domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// pinnedItemsQuery fetches the user's pinned repositories. Pins are only
// reachable through the GraphQL API.
type pinnedItemsQuery struct {
	User struct {
		PinnedItems struct {
			Nodes []struct {
				Repository struct {
					Name            githubv4.String
					Description     githubv4.String
					URL             githubv4.URI
					StargazerCount  githubv4.Int
					ForkCount       githubv4.Int
					PrimaryLanguage struct {
						Name githubv4.String
					}
				} `graphql:"... on Repository"`
			}
		} `graphql:"pinnedItems(first: 6, types: REPOSITORY)"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated (rate-limited) client rather than an error.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{Transport: transport}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchProfile fetches the public profile for the given username.
func (g *GitHubGateway) FetchProfile(ctx context.Context, username string) (*domain.Profile, error) {
	g.logger.Println("[1/3] Fetching profile using REST API...")
	user, _, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %q: %w", username, err)
	}
	g.logger.Println("Completed fetching profile.")
	return &domain.Profile{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Bio:       user.GetBio(),
		AvatarURL: user.GetAvatarURL(),
		HTMLURL:   user.GetHTMLURL(),
		Location:  user.GetLocation(),
		Blog:      user.GetBlog(),
		Followers: user.GetFollowers(),
		Following: user.GetFollowing(),
	}, nil
}

// FetchRepositories fetches one page of the user's most recently updated
// repositories, then re-sorts by descending star count and truncates to
// repoPageSize before exposing the result.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Println("[2/3] Fetching repositories using REST API...")
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: repoPageSize},
	}
	ghRepos, _, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %q: %w", username, err)
	}

	repos := make([]domain.Repository, 0, len(ghRepos))
	for _, r := range ghRepos {
		repos = append(repos, domain.Repository{
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			OpenIssues:  r.GetOpenIssuesCount(),
			Language:    r.GetLanguage(),
			License:     r.GetLicense().GetName(),
			HTMLURL:     r.GetHTMLURL(),
			PushedAt:    r.GetPushedAt().Time,
			Topics:      r.Topics,
		})
	}
	sort.SliceStable(repos, func(i, j int) bool { return repos[i].Stars > repos[j].Stars })
	if len(repos) > repoPageSize {
		repos = repos[:repoPageSize]
	}
	g.logger.Printf("Completed fetching repositories (%d retained).\n", len(repos))
	return repos, nil
}

// FetchPinnedRepositories fetches the user's pinned repositories via GraphQL.
func (g *GitHubGateway) FetchPinnedRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Println("[3/3] Fetching pinned repositories using GraphQL API...")
	variables := map[string]interface{}{"login": githubv4.String(username)}

	var q pinnedItemsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for pinned items: %w", err)
	}

	pinned := make([]domain.Repository, 0, len(q.User.PinnedItems.Nodes))
	for _, node := range q.User.PinnedItems.Nodes {
		repo := node.Repository
		if repo.Name == "" {
			continue // Skip pinned items that are not repositories.
		}
		var htmlURL string
		if repo.URL.URL != nil {
			htmlURL = repo.URL.String()
		}
		pinned = append(pinned, domain.Repository{
			Name:        string(repo.Name),
			Description: string(repo.Description),
			Stars:       int(repo.StargazerCount),
			Forks:       int(repo.ForkCount),
			Language:    string(repo.PrimaryLanguage.Name),
			HTMLURL:     htmlURL,
		})
	}
	g.logger.Printf("Completed fetching pinned repositories (%d found).\n", len(pinned))
	return pinned, nil
}
