// coachctl is a small command-line client for the CoachDesk API. It reuses a
// persisted session when one exists and logs in with the configured
// credentials otherwise.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/coachdesk/coachdesk-go/pkg/coachdesk"
	"github.com/rs/zerolog"
)

func main() {
	cfg := MustLoad()

	opts := &coachdesk.ClientOptions{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		SessionFile: cfg.SessionFile,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "session expired, please log in again")
		},
	}

	if cfg.Verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts.Logger = coachdesk.NewZerologAdapter(logger)
	}

	client, err := coachdesk.NewClient(opts)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if err := ensureSession(ctx, client, cfg); err != nil {
		log.Fatalf("authentication failed: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if err := run(ctx, client, args); err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
}

// ensureSession reuses the persisted session or performs a fresh login
func ensureSession(ctx context.Context, client *coachdesk.Client, cfg *Config) error {
	if _, err := client.Auth.Session(); err == nil {
		return nil
	}

	if cfg.Email == "" || cfg.Password == "" {
		return fmt.Errorf("no stored session; set COACHDESK_EMAIL and COACHDESK_PASSWORD")
	}

	_, err := client.Auth.Login(ctx, cfg.Email, cfg.Password)
	return err
}

func run(ctx context.Context, client *coachdesk.Client, args []string) error {
	switch args[0] {
	case "whoami":
		sess, err := client.Auth.Session()
		if err != nil {
			return err
		}
		return printJSON(sess)

	case "teams":
		teams, err := client.Teams.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(teams)

	case "roster":
		if len(args) < 2 {
			return fmt.Errorf("usage: coachctl roster <team-id>")
		}
		players, err := client.Teams.Roster(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(players)

	case "plans":
		if len(args) < 2 {
			return fmt.Errorf("usage: coachctl plans <team-id>")
		}
		plans, err := client.Plans.List(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(plans)

	case "sessions":
		if len(args) < 2 {
			return fmt.Errorf("usage: coachctl sessions <team-id>")
		}
		from := coachdesk.Today()
		to := coachdesk.NewDate(from.Year(), from.Month(), from.Day()+7)
		sessions, err := client.Plans.Sessions(ctx, args[1], from, to)
		if err != nil {
			return err
		}
		return printJSON(sessions)

	case "wellness":
		if len(args) < 2 {
			return fmt.Errorf("usage: coachctl wellness <team-id>")
		}
		summary, err := client.Wellness.TeamSummary(ctx, args[1], coachdesk.Today())
		if err != nil {
			return err
		}
		return printJSON(summary)

	case "logout":
		return client.Auth.Logout(ctx)

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: coachctl [--config path] <command>

commands:
  whoami               show the current session
  teams                list teams
  roster <team-id>     list the players on a team
  plans <team-id>      list training plans
  sessions <team-id>   list the next week of training sessions
  wellness <team-id>   show today's wellness summary
  logout               log out and clear the stored session`)
}
