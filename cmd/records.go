package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alfareiza/4yousee/filter"
	"github.com/Alfareiza/4yousee/fouryousee"
)

var (
	listParams []string
	listWhere  string
	noConfirm  bool
)

var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List the records of a resource",
	Long: `List the records of a resource, optionally narrowed by server side
parameters (--param) and a local filter expression or named filter (--where).

Resources: users, groups, uploads, medias, categories, players, playlists,
templates, newsources, news, reports.`,
	Example: `  4yousee list players --where 'lastContactInMinutes > 60'
  4yousee list medias --param categoryId=3
  4yousee list players --where offline`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

var getCmd = &cobra.Command{
	Use:   "get <resource> <id>",
	Short: "Show a single record",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <resource> <id>",
	Short: "Delete a record after checking that it exists",
	Long: `Delete a media, upload, player or playlist. The record is looked up
first, so a missing id is reported instead of sent to the API.`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to the 4YouSee API",
	RunE:  runTest,
}

func init() {
	listCmd.Flags().StringArrayVarP(&listParams, "param", "p", nil, "server side filter as key=value (repeatable)")
	listCmd.Flags().StringVarP(&listWhere, "where", "w", "", "filter expression or name of a configured filter")

	deleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip the confirmation prompt")
}

// parseParams turns key=value pairs into a server side filter
func parseParams(pairs []string) (fouryousee.Filter, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(fouryousee.Filter, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = strings.TrimSpace(value)
	}
	return params, nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	res, err := fouryousee.ParseResource(args[0])
	if err != nil {
		return err
	}

	params, err := parseParams(listParams)
	if err != nil {
		return err
	}

	var q fouryousee.Query = fouryousee.All{}
	if params != nil {
		q = params
	}

	var where filter.CompiledFilter
	if listWhere != "" {
		where, err = filters.Select(listWhere)
		if err != nil {
			return err
		}
	}

	result, err := client.Get(ctx, res, q)
	if err != nil {
		return err
	}

	if result.Object != nil {
		return printJSON(os.Stdout, result.Object)
	}

	records := result.Records
	if where != nil {
		var evalErr error
		records, evalErr = filter.Apply(where, records)
		if evalErr != nil {
			logger.Warn().Err(evalErr).Str("filter", where.Expression()).Msg("Some records could not be evaluated")
		}
	}

	logger.Info().
		Str("resource", res.Label()).
		Int("total", len(result.Records)).
		Int("shown", len(records)).
		Msg("Listing complete")

	if records == nil {
		records = []fouryousee.Record{}
	}
	return printJSON(os.Stdout, records)
}

func runGet(cmd *cobra.Command, args []string) error {
	res, err := fouryousee.ParseResource(args[0])
	if err != nil {
		return err
	}

	result, err := client.Get(cmd.Context(), res, fouryousee.ByID(args[1]))
	if err != nil {
		return err
	}

	rec, ok := result.Single()
	if !ok {
		return &fouryousee.NotFoundError{Resource: res.Label(), ID: args[1]}
	}
	return printJSON(os.Stdout, rec)
}

type deleteFunc func(ctx context.Context, id string) (bool, error)

// deleters returns the delete operation of every resource that has one
func deleters(c *fouryousee.Client) map[fouryousee.Resource]deleteFunc {
	return map[fouryousee.Resource]deleteFunc{
		fouryousee.ResourceMedias:    c.DeleteMedia,
		fouryousee.ResourceUploads:   c.DeleteUpload,
		fouryousee.ResourcePlayers:   c.DeletePlayer,
		fouryousee.ResourcePlaylists: c.DeletePlaylist,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[1]

	res, err := fouryousee.ParseResource(args[0])
	if err != nil {
		return err
	}

	del, ok := deleters(client)[res]
	if !ok {
		return fmt.Errorf("%s records cannot be deleted", res.Label())
	}

	if cfg.Safety.DryRun {
		logger.Info().
			Str("resource", res.Label()).
			Str("id", id).
			Msg("[DRY RUN] Would delete record")
		return nil
	}

	if cfg.Safety.ConfirmDelete && !noConfirm {
		if !confirm(fmt.Sprintf("Delete %s %s?", res.Label(), id)) {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	deleted, err := del(ctx, id)
	if err != nil {
		var notFound *fouryousee.NotFoundError
		if errors.As(err, &notFound) {
			logger.Warn().Str("resource", res.Label()).Str("id", id).Msg("Record not found")
		}
		return err
	}

	logger.Info().
		Str("resource", res.Label()).
		Str("id", id).
		Bool("deleted", deleted).
		Msg("Record deleted")
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger.Info().Msg("Testing connection to 4YouSee...")
	if err := client.TestConnection(ctx); err != nil {
		logger.Error().Err(err).Msg("Connection test failed")
		return err
	}

	account := client.Account()
	logger.Info().
		Str("name", account.Name).
		Str("account", account.Account).
		Str("type", account.Type).
		Msg("Connection successful")

	groups, err := client.UserGroups(ctx)
	if err != nil {
		return err
	}
	logger.Info().Int("groups", len(groups)).Msg("User groups visible to this token")

	if names := filters.ListFilters(); len(names) > 0 {
		logger.Info().Strs("filters", names).Msg("Configured filters")
	}
	return nil
}
