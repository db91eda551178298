package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tripplanner/internal/adapters/observability"
	"tripplanner/internal/app"
	"tripplanner/internal/bootstrap"
	"tripplanner/internal/domain"
	"tripplanner/internal/shared"
)

type tripPlanner interface {
	Plan(ctx context.Context, form domain.SearchForm) domain.TripResult
}

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLoggerTo(os.Stderr, cfg.AppEnv, cfg.LogLevel)

	build := func(ctx context.Context) tripPlanner {
		return bootstrap.Planner(cfg, bootstrap.Catalog(ctx, cfg))
	}
	if err := newRootCmd(viper.New(), build).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper, build func(context.Context) tripPlanner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Plan a trip from the attraction dataset and live providers",
		Long: "planner builds an itinerary for a city: weather, hotels within budget, " +
			"nearby restaurants and a day-by-day attraction plan. Flags may also be set " +
			"as PLANNER_<FLAG> environment variables.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := formFrom(v)
			if err != nil {
				return err
			}
			res := build(cmd.Context()).Plan(cmd.Context(), form)
			if v.GetBool("json") {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printSummary(cmd.OutOrStdout(), form, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.String("city", "", "destination city")
	f.String("location", "", `"City, Country"; when set its first segment is the city`)
	f.String("type", app.DefaultAttractionType, "attraction type to match")
	f.String("budget", app.DefaultBudget, `total budget, e.g. "₹15,000" or "₹7,500-₹15,000"`)
	f.Int("days", 3, "trip length in days")
	f.Int("guests", app.DefaultGuests, "number of adults")
	f.Bool("json", false, "print the full result as JSON")

	v.SetEnvPrefix("PLANNER")
	v.AutomaticEnv()
	_ = v.BindPFlags(f)
	return cmd
}

func formFrom(v *viper.Viper) (domain.SearchForm, error) {
	city := strings.TrimSpace(v.GetString("city"))
	loc := strings.TrimSpace(v.GetString("location"))
	if loc != "" {
		city = strings.TrimSpace(strings.Split(loc, ",")[0])
	}
	if city == "" {
		return domain.SearchForm{}, fmt.Errorf("--city or --location is required")
	}
	days := v.GetInt("days")
	if days < 1 {
		return domain.SearchForm{}, fmt.Errorf("--days must be at least 1, got %d", days)
	}
	return domain.SearchForm{
		City:           city,
		Location:       loc,
		Days:           days,
		Guests:         v.GetInt("guests"),
		Budget:         v.GetString("budget"),
		AttractionType: v.GetString("type"),
	}, nil
}

func printSummary(w io.Writer, form domain.SearchForm, res domain.TripResult) {
	fmt.Fprintf(w, "Trip to %s: %d days, %d guests, budget %s\n", form.City, form.Days, form.Guests, form.Budget)
	fmt.Fprintf(w, "Weather forecasts: %d\n", len(res.Weather))
	fmt.Fprintf(w, "Hotels within budget: %d\n", len(res.Hotels))
	for _, h := range res.Hotels {
		fmt.Fprintf(w, "  %-40s rating %.1f  %.0f/night  total %.0f\n", h.Name, h.Rating, h.PricePerNight, h.TotalCost)
	}
	fmt.Fprintf(w, "Restaurants: %d\n", len(res.Restaurants))
	for _, r := range res.Restaurants {
		fmt.Fprintf(w, "  %-40s %s, %s, %s\n", r.Name, r.Cuisine, r.Rating, r.Price)
	}
	if res.Attractions != nil {
		fmt.Fprintf(w, "Attractions: %d\n", len(res.Attractions))
		for _, a := range res.Attractions {
			fmt.Fprintf(w, "  day %d  %s (fee %.0f)\n", a.Day, a.Name, a.EntranceFee)
		}
	}
}
