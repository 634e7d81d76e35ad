package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"devconnect/pkg/client"
	"devconnect/pkg/client/store"
)

var (
	serverURL   string
	sessionPath string

	actions *store.Actions
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "devconnect",
	Short: "Command-line client for the devconnect API",
	Long: `devconnect talks to a running devconnect server.

Authenticate with "register" or "login"; the issued token is stored in a
session file and sent on every authenticated call until "logout".`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		sessions := client.NewFileSessionStore(sessionPath)
		actions = store.NewActions(client.New(serverURL, sessions), store.NewStore())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var registerCmd = &cobra.Command{
	Use:   "register <name> <email> <password>",
	Short: "Create an account and store the session",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		if err := actions.Register(ctx, args[0], args[1], args[2]); err != nil {
			printAlerts()
			return err
		}
		fmt.Println("Registered. Session stored at", sessionPath)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Authenticate and store the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		if err := actions.Login(ctx, args[0], args[1]); err != nil {
			printAlerts()
			return err
		}
		fmt.Println("Logged in. Session stored at", sessionPath)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := actions.Client.Sessions.Clear(); err != nil {
			return err
		}
		fmt.Println("Session cleared")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the identity behind the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		if err := actions.LoadUser(ctx); err != nil {
			return err
		}
		user := actions.Store.Auth().User.(*client.User)
		fmt.Printf("%s <%s>\njoined %s\n", user.Name, user.Email, user.Date.Format("2006-01-02"))
		return nil
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List all posts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		posts, err := actions.Client.Feed(ctx)
		if err != nil {
			return err
		}
		for _, p := range posts {
			fmt.Printf("%s  %s  (%d likes, %d comments)\n  %s\n",
				p.ID, p.Name, len(p.Likes), len(p.Comments), p.Text)
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <text>",
	Short: "Publish a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		p, err := actions.Client.CreatePost(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println("Posted", p.ID)
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		likes, err := actions.Client.Like(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d likes\n", len(likes))
		return nil
	},
}

var unlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove your like from a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		likes, err := actions.Client.Unlike(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d likes\n", len(likes))
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <post-id> <text>",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		comments, err := actions.Client.Comment(ctx, args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("%d comments\n", len(comments))
		return nil
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List every developer profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		profiles, err := actions.Client.Profiles(ctx)
		if err != nil {
			return err
		}
		for _, p := range profiles {
			fmt.Printf("%s  %s  [%s]\n", p.User.Name, p.Status, strings.Join(p.Skills, ", "))
		}
		return nil
	},
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// printAlerts drains the alert slice to stderr, one line per message.
func printAlerts() {
	for _, a := range actions.Store.Alerts() {
		fmt.Fprintln(os.Stderr, a.Msg)
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".devconnect-session"
	}
	return filepath.Join(home, ".devconnect", "session")
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000", "devconnect server URL")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", defaultSessionPath(), "session token file")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, meCmd,
		feedCmd, postCmd, likeCmd, unlikeCmd, commentCmd, profilesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
