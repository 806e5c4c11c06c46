// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitfolio/gitfolio/internal/gateway"
	"github.com/gitfolio/gitfolio/internal/site"
	"github.com/gitfolio/gitfolio/internal/usecase"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetches the portfolio data and writes index.html",
	Long: `Fetches the configured user's profile, repositories and pinned repositories,
aggregates the skill list, and writes the rendered page to <out>/index.html.
Fetch failures degrade to placeholder sections; only render/write failures are fatal.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		user := resolveUser(cmd)
		if user == "" {
			fmt.Fprintln(os.Stderr, "Error: --user flag or GITFOLIO_USER environment variable is required.")
			os.Exit(1)
		}
		out, _ := cmd.Flags().GetString("out")
		linkedin, _ := cmd.Flags().GetString("linkedin")
		twitter, _ := cmd.Flags().GetString("twitter")

		// The token is optional: without it requests are unauthenticated and
		// subject to the lower rate limit.
		token := os.Getenv("GITHUB_TOKEN")

		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		builder := usecase.NewBuilder(githubGateway, logger)

		portfolio := builder.Assemble(ctx, user)
		portfolio.Social.LinkedIn = linkedin
		portfolio.Social.Twitter = twitter

		renderer, err := site.NewRenderer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create renderer: %v\n", err)
			os.Exit(1)
		}
		if err := renderer.WriteFile(out, portfolio); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write page: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("Wrote portfolio page for %s to %s/index.html\n", user, out)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("user", "u", "", "GitHub username to build the portfolio for")
	buildCmd.Flags().StringP("out", "o", ".", "Output directory for index.html")
	buildCmd.Flags().String("linkedin", "", "LinkedIn profile URL for the social section")
	buildCmd.Flags().String("twitter", "", "Twitter profile URL for the social section")
}
