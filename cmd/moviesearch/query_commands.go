package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wook89/movie-search/internal/catalog"
)

func newQueryCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newSearchCommand(ctx),
		newAutocompleteCommand(ctx),
		newRankingsCommand(ctx),
		newDetailsCommand(ctx),
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var page int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search movies, shows and people",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.queryCatalog()
			if err != nil {
				return err
			}
			result, err := cat.Search(cmd.Context(), catalog.SearchQuery{Query: args[0], Language: flagOr(cmd, "lang", lang, cat.DefaultLanguage()), Page: page})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecords(result.Results, false))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Response language (defaults to tmdb.language)")
	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newAutocompleteCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "autocomplete PREFIX",
		Short: "Suggest titles for a typed prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.queryCatalog()
			if err != nil {
				return err
			}
			result, err := cat.Autocomplete(cmd.Context(), catalog.AutocompleteQuery{Prefix: args[0], Language: flagOr(cmd, "lang", lang, cat.DefaultLanguage()), Limit: limit})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSuggestions(result.Suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Response language (defaults to tmdb.language)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum suggestions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newRankingsCommand(ctx *commandContext) *cobra.Command {
	var query catalog.RankingsQuery
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Show popular, top rated or trending titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.queryCatalog()
			if err != nil {
				return err
			}
			query.Region = flagOr(cmd, "region", query.Region, cat.DefaultRegion())
			query.Language = flagOr(cmd, "lang", query.Language, cat.DefaultLanguage())
			result, err := cat.Rankings(cmd.Context(), query)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s)\n", result.Type, result.MediaType, result.Region)
			fmt.Fprintln(out, renderRecords(result.Results, true))
			return nil
		},
	}

	cmd.Flags().StringVar(&query.MediaType, "media-type", string(catalog.KindMovie), "movie or tv")
	cmd.Flags().StringVar(&query.ListType, "list-type", catalog.ListPopular, "popular, top_rated, trending, ...")
	cmd.Flags().StringVar(&query.Region, "region", "", "Region code (defaults to tmdb.region)")
	cmd.Flags().StringVar(&query.Language, "lang", "", "Response language (defaults to tmdb.language)")
	cmd.Flags().IntVar(&query.Limit, "limit", 10, "Number of ranked titles (1-20)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newDetailsCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "details MEDIA_TYPE ID",
		Short: "Show one movie, show or person",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[1]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: must be an integer", args[1])
			}
			cat, err := ctx.queryCatalog()
			if err != nil {
				return err
			}
			detail, err := cat.Details(cmd.Context(), catalog.DetailsQuery{MediaType: args[0], ID: id, Language: flagOr(cmd, "lang", lang, cat.DefaultLanguage())})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, detail)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderDetail(detail))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Response language (defaults to tmdb.language)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// flagOr returns the flag value when it was set on the command line, even if
// empty, and fallback otherwise.
func flagOr(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
