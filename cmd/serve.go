// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitfolio/gitfolio/internal/gateway"
	"github.com/gitfolio/gitfolio/internal/site"
	"github.com/gitfolio/gitfolio/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Fetches the portfolio data once and serves the page over HTTP",
	Long: `Fetches the configured user's portfolio data at startup, renders the page
once, and serves it at / together with a /livez health endpoint. The data is
not refetched while the server runs; restart to refresh.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		user := resolveUser(cmd)
		if user == "" {
			fmt.Fprintln(os.Stderr, "Error: --user flag or GITFOLIO_USER environment variable is required.")
			os.Exit(1)
		}
		addr, _ := cmd.Flags().GetString("addr")
		linkedin, _ := cmd.Flags().GetString("linkedin")
		twitter, _ := cmd.Flags().GetString("twitter")
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
		handler, err := site.Handler(logger, renderer, portfolio)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render page: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Serving portfolio for %s on %s\n", user, addr)
		if err := http.ListenAndServe(addr, handler); err != nil {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("user", "u", "", "GitHub username to build the portfolio for")
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("linkedin", "", "LinkedIn profile URL for the social section")
	serveCmd.Flags().String("twitter", "", "Twitter profile URL for the social section")
}
