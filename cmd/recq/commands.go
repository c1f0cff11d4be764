package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andreyvit/recq"
)

// parseArg reads a command-line value as JSON, falling back to a plain
// string, so that both `get 2` and `get abc` work.
func parseArg(s string) recq.Value {
	var v recq.Value
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return recq.Str(s)
	}
	return v
}

func parseQuery(s string) (recq.Query, error) {
	q, err := recq.JSON.DecodeQuery([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	return q, nil
}

func newFindCmd(a *app) *cobra.Command {
	var first bool
	cmd := &cobra.Command{
		Use:   "find QUERY",
		Short: "Print records matching a JSON query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuery(args[0])
			if err != nil {
				return err
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			if first {
				v, ok := recq.RetrieveFirst(c, q)
				if !ok {
					return a.writeValue(recq.NullValue)
				}
				return a.writeValue(v)
			}
			return a.writeValue(recq.ListOf(recq.RetrieveAll(c, q)...))
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "print only the first match")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID...",
		Short: "Print records by id, in the order given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			ids := make([]recq.Value, len(args))
			for i, s := range args {
				ids[i] = parseArg(s)
			}
			return a.writeValue(recq.ListOf(recq.RetrieveByIDs(c, ids)...))
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update ID PATCH",
		Short: "Merge a JSON patch into the record with the given id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := parseArg(args[0])
			patch, err := parseQuery(args[1])
			if err != nil {
				return err
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			if !recq.UpdateByID(c, id, recq.Record(patch)) {
				return fmt.Errorf("no record with id %v", id)
			}
			return a.writeCollection(c)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	var copyMode bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete the first element with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := parseArg(args[0])
			c, err := a.load()
			if err != nil {
				return err
			}
			if copyMode {
				return a.writeCollection(recq.DeleteByIDToNew(c, id))
			}
			recq.DeleteByID(&c, id)
			return a.writeCollection(c)
		},
	}
	cmd.Flags().BoolVar(&copyMode, "copy", false, "build a new collection without every record carrying the id")
	return cmd
}

func newDeleteWhereCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-where QUERY",
		Short: "Delete records whose top-level fields equal the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuery(args[0])
			if err != nil {
				return err
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			removed := recq.DeleteWhere(&c, q)
			fmt.Fprintf(cmd.ErrOrStderr(), "removed indexes: %v\n", removed)
			return a.writeCollection(c)
		},
	}
}

func newDeleteAtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-at INDEX...",
		Short: "Delete elements at the given positions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexes := make([]int, len(args))
			for i, s := range args {
				n, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("invalid index %q: %w", s, err)
				}
				indexes[i] = n
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			recq.DeleteAtIndexes(&c, indexes)
			return a.writeCollection(c)
		},
	}
}

func newIDsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ids [FIELD]",
		Short: "Print the ids of every record, or of the related records in FIELD",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return a.writeValue(recq.ListOf(recq.ExtractIDs(c)...))
			}
			ids := make([]recq.Value, len(c))
			for i, v := range c {
				ids[i] = recq.ExtractNestedID(v.Map(), args[0])
			}
			return a.writeValue(recq.ListOf(ids...))
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "List the collection one element per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			return a.writeRaw(a.output, []byte(recq.Dump(c)))
		},
	}
}
