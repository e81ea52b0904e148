package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"travelbook/internal/adapters/graphql"
	"travelbook/internal/adapters/observability"
	redisad "travelbook/internal/adapters/redis"
	"travelbook/internal/adapters/rest"
	"travelbook/internal/app"
	"travelbook/internal/domain"
	"travelbook/internal/session"
	"travelbook/internal/shared"
	"travelbook/internal/storage/sqlite"
)

var (
	outputJSON bool
	transport  string
	services   *bundle
)

// bundle holds one wired set of services for the selected transport.
type bundle struct {
	cfg       shared.Config
	tokens    *session.FileStore
	drafts    *sqlite.Drafts
	auth      domain.AuthService
	cities    domain.CityService
	stays     domain.StayService
	trips     domain.TripService
	companies domain.CompanyService
	agent     domain.AgentService
	catalog   *app.Catalog
	planner   *app.Planner
	assistant *app.Assistant
}

var rootCmd = &cobra.Command{
	Use:   "travelctl",
	Short: "Travel booking client for the stays backend",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := shared.Load()
		log.Logger = observability.NewLogger(cfg.AppEnv)
		observability.Serve()

		if transport != "" {
			cfg.Transport = transport
		}
		b, err := newBundle(cfg)
		if err != nil {
			return err
		}
		services = b
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if services != nil && services.drafts != nil {
			_ = services.drafts.Close()
		}
	},
	SilenceUsage: true,
}

func Execute() {
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(citiesCmd())
	rootCmd.AddCommand(staysCmd())
	rootCmd.AddCommand(tripsCmd())
	rootCmd.AddCommand(draftsCmd())
	rootCmd.AddCommand(companiesCmd())
	rootCmd.AddCommand(chatCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().StringVar(&transport, "transport", "", "Backend transport: rest or graphql")
}

func newBundle(cfg shared.Config) (*bundle, error) {
	tokens := session.NewFileStore(cfg.TokenPath)

	var cache domain.Cache = noCache{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	drafts, err := sqlite.Open(cfg.DraftsDB)
	if err != nil {
		return nil, fmt.Errorf("open drafts store: %w", err)
	}

	b := &bundle{cfg: cfg, tokens: tokens, drafts: drafts}
	switch cfg.Transport {
	case "graphql":
		var gqlCache domain.Cache
		if cfg.RedisAddr != "" {
			gqlCache = cache
		}
		c, err := graphql.New(cfg.GraphQLURL, tokens, gqlCache, cfg.CacheTTL, cfg.RateRPS)
		if err != nil {
			return nil, err
		}
		b.auth = graphql.NewAuthService(c, tokens)
		b.cities = graphql.NewCityService(c)
		b.stays = graphql.NewStayService(c)
		b.trips = graphql.NewTripService(c)
		b.companies = graphql.NewCompanyService(c)
		b.agent = graphql.NewAgentService(c)
	case "rest", "":
		c, err := rest.New(cfg.BackendURL, tokens, cfg.RateRPS)
		if err != nil {
			return nil, err
		}
		b.auth = rest.NewAuthService(c, tokens)
		b.cities = rest.NewCityService(c)
		b.stays = rest.NewStayService(c)
		b.trips = rest.NewTripService(c)
		b.companies = rest.NewCompanyService(c)
		b.agent = rest.NewAgentService(c)
	default:
		return nil, fmt.Errorf("unknown transport %q (want rest or graphql)", cfg.Transport)
	}

	b.catalog = app.NewCatalog(b.cities, b.stays, cache, cfg.CacheTTL)
	b.planner = app.NewPlanner(b.trips, drafts, b.catalog)
	b.assistant = app.NewAssistant(b.agent)
	return b, nil
}

// noCache disables caching when no redis address is configured.
type noCache struct{}

func (noCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noCache) Set(context.Context, string, any, int) error    { return nil }
func (noCache) Del(context.Context, string) error              { return nil }

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}
