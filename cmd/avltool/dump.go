package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ajwerner/avltree"
)

type dumpOptions struct {
	Build int
}

func newDumpCmd(config *baseConfiguration) *cobra.Command {
	opts := &dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump [key...]",
		Short: "Draw the tree holding the given keys",
		Long: `Inserts the given integer keys one at a time, mapping each to its position
in the argument list, or builds the tree of the keys 1..N from sorted input
with --build. Then draws the tree and lists its keys in order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), config.logger, opts, args)
		},
	}
	cmd.Flags().IntVar(&opts.Build, "build", 0, "build the tree of the keys 1..N instead of inserting arguments")
	return cmd
}

func runDump(w io.Writer, log zerolog.Logger, opts *dumpOptions, args []string) error {
	m := avltree.New[int, int](cmp.Compare[int])
	switch {
	case opts.Build < 0:
		return fmt.Errorf("invalid key count %d", opts.Build)
	case opts.Build > 0 && len(args) > 0:
		return errors.New("keys and --build are mutually exclusive")
	case opts.Build > 0:
		keys := make([]int, opts.Build)
		for i := range keys {
			keys[i] = i + 1
		}
		if err := m.Build(keys, nil); err != nil {
			return err
		}
	default:
		for i, a := range args {
			k, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("parsing key %q: %w", a, err)
			}
			if !m.Insert(k, i) {
				log.Warn().Int("key", k).Msg("duplicate key ignored")
			}
		}
	}
	log.Debug().Int("keys", m.Len()).Int("height", m.Height()).Msg("tree ready")

	if err := m.Print(w); err != nil {
		return err
	}
	var b strings.Builder
	for k := range m.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(k))
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}
